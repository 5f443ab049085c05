package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/avasek/userdeck/internal/database"
	"github.com/avasek/userdeck/internal/password"
	"github.com/avasek/userdeck/internal/storage"
)

// newTestService builds a service backed by an in-memory database and a
// temporary picture store.
func newTestService(t *testing.T) (*UserService, string) {
	t.Helper()

	db, err := database.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	root := filepath.Join(t.TempDir(), "static")
	store, err := storage.New(root)
	require.NoError(t, err)

	return New(db, password.NewHasher(bcrypt.MinCost), store), root
}

// newMockedService builds a service backed by the mock database, returning
// the mock for error injection and inspection.
func newMockedService(t *testing.T, db database.DB) (*UserService, string) {
	t.Helper()

	root := filepath.Join(t.TempDir(), "static")
	store, err := storage.New(root)
	require.NoError(t, err)

	return New(db, password.NewHasher(bcrypt.MinCost), store), root
}

func ptr(s string) *string {
	return &s
}
