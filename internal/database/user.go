package database

import (
	"context"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// User represents a user account in the database.
// Username and email are both optional but unique; at least one of them is
// required, which the service layer enforces. PasswordHash is nil when no
// password has been set for the account.
type User struct {
	gorm.Model
	Username     *string `gorm:"uniqueIndex"`
	Email        *string `gorm:"uniqueIndex"`
	PasswordHash *string
	IsSuperuser  bool    `gorm:"default:false"`
	Profile      Profile `gorm:"constraint:OnDelete:CASCADE;"`
}

// CreateUser persists a new user together with its associated profile in a
// single transaction. The profile row is created explicitly because a fresh
// profile is all zero values and gorm would skip it as an association.
func (c *Client) CreateUser(ctx context.Context, user *User) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Profile").Create(user).Error; err != nil {
			return err
		}
		user.Profile.UserID = user.ID
		return tx.Create(&user.Profile).Error
	})
	if err != nil {
		log.Error("failed to create user", "error", err)
		return err
	}
	return nil
}

// GetUserByID returns the user with the given primary key.
func (c *Client) GetUserByID(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Error("failed to get user by ID", "error", err)
		}
		return nil, err
	}
	return &user, nil
}
