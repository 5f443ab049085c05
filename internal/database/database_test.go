package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *Client {
	t.Helper()

	c, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, c.Close())
	})
	return c
}

func ptr(s string) *string {
	return &s
}
