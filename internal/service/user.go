package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/avasek/userdeck/internal/database"
)

// CreateUser creates a user account together with an empty profile.
// At least one of username and email must be present. A password is hashed
// only when one was actually supplied; otherwise the account has no
// password set.
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) error {
	username := trimmedOrNil(input.Username)
	email := trimmedOrNil(input.Email)
	if username == nil && email == nil {
		return fmt.Errorf("%w: username and email cannot both be empty", ErrValidation)
	}

	user := database.User{
		Username:    username,
		Email:       email,
		IsSuperuser: input.IsSuperuser,
		Profile:     database.Profile{},
	}

	if input.Password != nil && *input.Password != "" {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrHashing, err)
		}
		user.PasswordHash = &hash
	}

	if err := s.db.CreateUser(ctx, &user); err != nil {
		return fmt.Errorf("%w: failed to create user: %w", ErrPersistence, err)
	}
	return nil
}

// FindUserByID returns the username and email of the user with the given id.
func (s *UserService) FindUserByID(ctx context.Context, id uint) (UserIdentity, error) {
	user, err := s.db.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserIdentity{}, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return UserIdentity{}, fmt.Errorf("%w: failed to get user %d: %w", ErrPersistence, id, err)
	}
	return UserIdentity{
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// trimmedOrNil normalizes an optional string field: nil or empty both mean
// the field is absent.
func trimmedOrNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
