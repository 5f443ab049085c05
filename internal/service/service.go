// Package service implements the user and profile management operations on
// top of the database, the password hasher and the picture store.
package service

import (
	"github.com/avasek/userdeck/internal/database"
	"github.com/avasek/userdeck/internal/password"
	"github.com/avasek/userdeck/internal/storage"
)

// UserService bundles the user and profile operations. All collaborators are
// injected at construction time and owned by the process entry point.
type UserService struct {
	db       database.DB
	hasher   *password.Hasher
	pictures *storage.Store
}

// New creates a UserService.
func New(db database.DB, hasher *password.Hasher, pictures *storage.Store) *UserService {
	return &UserService{
		db:       db,
		hasher:   hasher,
		pictures: pictures,
	}
}

// CreateUserInput holds the fields for creating a user. Nil pointers mean
// the field is absent; in particular a nil or empty password means "no
// password set" and nothing is stored in the password hash column.
type CreateUserInput struct {
	Username    *string
	Email       *string
	Password    *string
	IsSuperuser bool
}

// UserIdentity is the projection returned when looking up a user.
type UserIdentity struct {
	Username *string
	Email    *string
}

// UpdateProfileInput holds the two profile preferences that can be
// overwritten. The images list is never touched by profile updates.
type UpdateProfileInput struct {
	DarkTheme   bool
	ActiveImage string
}

// ProfileView is the projection of a profile returned to callers.
type ProfileView struct {
	ID          uint
	UserID      uint
	DarkTheme   bool
	Images      []string
	ActiveImage string
}

func toProfileView(p *database.Profile) ProfileView {
	images := make([]string, len(p.Images))
	copy(images, p.Images)
	return ProfileView{
		ID:          p.ID,
		UserID:      p.UserID,
		DarkTheme:   p.DarkTheme,
		Images:      images,
		ActiveImage: p.ActiveImage,
	}
}
