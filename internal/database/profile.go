package database

import (
	"context"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// Profile holds the per-user preferences and the uploaded picture gallery.
// Each user has exactly one profile, created empty alongside the user.
type Profile struct {
	gorm.Model
	UserID      uint       `gorm:"uniqueIndex;not null"`
	DarkTheme   bool       `gorm:"default:false"`
	Images      StringList `gorm:"type:text"`
	ActiveImage string
}

// GetProfileByUserID returns the unique profile for the given user.
// Zero rows and ambiguous matches both report gorm.ErrRecordNotFound; the
// unique index on user_id makes the ambiguous case unreachable in practice.
func (c *Client) GetProfileByUserID(ctx context.Context, userID uint) (*Profile, error) {
	var profiles []Profile
	if err := c.db.WithContext(ctx).Where("user_id = ?", userID).Limit(2).Find(&profiles).Error; err != nil {
		log.Error("failed to get profile by user ID", "error", err)
		return nil, err
	}
	if len(profiles) != 1 {
		if len(profiles) > 1 {
			log.Warn("multiple profiles found for user", "user_id", userID)
		}
		return nil, gorm.ErrRecordNotFound
	}
	return &profiles[0], nil
}

// UpdateProfileSettings overwrites the theme preference and active image of
// the user's profile. The images list is left untouched.
func (c *Client) UpdateProfileSettings(ctx context.Context, userID uint, darkTheme bool, activeImage string) (*Profile, error) {
	res := c.db.WithContext(ctx).
		Model(&Profile{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"dark_theme":   darkTheme,
			"active_image": activeImage,
		})
	if res.Error != nil {
		log.Error("failed to update profile settings", "error", res.Error)
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return c.GetProfileByUserID(ctx, userID)
}

// AppendProfileImage appends an image path to the profile's gallery with a
// single UPDATE statement. Concurrent appends for the same user cannot lose
// each other's entry because the list is never read back before writing.
func (c *Client) AppendProfileImage(ctx context.Context, userID uint, imagePath string) (*Profile, error) {
	res := c.db.WithContext(ctx).
		Model(&Profile{}).
		Where("user_id = ?", userID).
		Update("images", gorm.Expr("json_insert(images, '$[#]', ?)", imagePath))
	if res.Error != nil {
		log.Error("failed to append profile image", "error", res.Error)
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return c.GetProfileByUserID(ctx, userID)
}
