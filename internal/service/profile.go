package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// GetProfileByUserID returns the profile of the given user.
func (s *UserService) GetProfileByUserID(ctx context.Context, userID uint) (ProfileView, error) {
	profile, err := s.db.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileView{}, fmt.Errorf("%w: profile for user %d", ErrNotFound, userID)
		}
		return ProfileView{}, fmt.Errorf("%w: failed to get profile for user %d: %w", ErrPersistence, userID, err)
	}
	return toProfileView(profile), nil
}

// UpdateProfile overwrites the theme preference and active image of the
// user's profile and returns the updated projection. The images list is
// left untouched in all cases.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (ProfileView, error) {
	profile, err := s.db.UpdateProfileSettings(ctx, userID, input.DarkTheme, input.ActiveImage)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileView{}, fmt.Errorf("%w: profile for user %d", ErrNotFound, userID)
		}
		return ProfileView{}, fmt.Errorf("%w: failed to update profile for user %d: %w", ErrPersistence, userID, err)
	}
	return toProfileView(profile), nil
}

// AddProfilePicture stores an uploaded picture for the user and records its
// path in the profile's gallery.
//
// The picture is written to <storageRoot>/<userID>/<filename> first,
// overwriting any file with the same name, and its recorded path is then
// appended to the gallery with a single atomic update. If the database step
// fails, the
// just-written file is deleted again so no orphan remains; the database
// error stays the primary failure and a failed compensation delete is only
// logged.
func (s *UserService) AddProfilePicture(ctx context.Context, userID uint, filename string, picture io.Reader) (ProfileView, error) {
	path, err := s.pictures.Save(userID, filename, picture)
	if err != nil {
		return ProfileView{}, fmt.Errorf("%w: failed to store picture: %w", ErrUpload, err)
	}

	profile, err := s.db.AppendProfileImage(ctx, userID, path)
	if err != nil {
		if rmErr := s.pictures.Remove(path); rmErr != nil {
			log.Warn("failed to remove picture after database failure", "path", path, "error", rmErr)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileView{}, fmt.Errorf("%w: profile for user %d: %w", ErrUpload, userID, ErrNotFound)
		}
		return ProfileView{}, fmt.Errorf("%w: failed to record picture for user %d: %w", ErrUpload, userID, err)
	}

	return toProfileView(profile), nil
}
