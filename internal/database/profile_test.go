package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, db *Client, username string) uint {
	t.Helper()

	user := User{Username: ptr(username)}
	require.NoError(t, db.CreateUser(context.Background(), &user))
	return user.ID
}

func TestGetProfileByUserID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.GetProfileByUserID(context.Background(), 42)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateProfileSettings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, db, "alice")

	profile, err := db.UpdateProfileSettings(ctx, userID, true, "x")
	require.NoError(t, err)
	assert.True(t, profile.DarkTheme)
	assert.Equal(t, "x", profile.ActiveImage)

	// Read back through a fresh lookup
	got, err := db.GetProfileByUserID(ctx, userID)
	require.NoError(t, err)
	assert.True(t, got.DarkTheme)
	assert.Equal(t, "x", got.ActiveImage)
	assert.Empty(t, got.Images)
}

func TestUpdateProfileSettings_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.UpdateProfileSettings(context.Background(), 42, true, "x")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateProfileSettings_LeavesImagesUntouched(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, db, "bob")

	_, err := db.AppendProfileImage(ctx, userID, "static/1/a.png")
	require.NoError(t, err)

	profile, err := db.UpdateProfileSettings(ctx, userID, true, "static/1/a.png")
	require.NoError(t, err)
	assert.Equal(t, StringList{"static/1/a.png"}, profile.Images)
}

func TestAppendProfileImage_PreservesOrder(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, db, "carol")

	_, err := db.AppendProfileImage(ctx, userID, "static/1/a.png")
	require.NoError(t, err)

	profile, err := db.AppendProfileImage(ctx, userID, "static/1/b.png")
	require.NoError(t, err)
	assert.Equal(t, StringList{"static/1/a.png", "static/1/b.png"}, profile.Images)
}

func TestAppendProfileImage_DuplicatePathsAccumulate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	userID := createTestUser(t, db, "dave")

	_, err := db.AppendProfileImage(ctx, userID, "static/1/a.png")
	require.NoError(t, err)

	// No dedup: the same path appended twice yields two entries.
	profile, err := db.AppendProfileImage(ctx, userID, "static/1/a.png")
	require.NoError(t, err)
	assert.Equal(t, StringList{"static/1/a.png", "static/1/a.png"}, profile.Images)
}

func TestAppendProfileImage_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.AppendProfileImage(context.Background(), 42, "static/42/a.png")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
