package models

import (
	"github.com/avasek/userdeck/internal/config"
	"github.com/avasek/userdeck/internal/gravatar"
	"github.com/avasek/userdeck/internal/service"
)

// ToUserResponse converts a service.UserIdentity to a UserResponse.
func ToUserResponse(identity service.UserIdentity) UserResponse {
	return UserResponse{
		Username: identity.Username,
		Email:    identity.Email,
	}
}

// ToProfileResponse converts a service.ProfileView to a ProfileResponse.
// When the profile has no active image, the avatar falls back to a Gravatar
// URL built from the given email.
func ToProfileResponse(profile service.ProfileView, email *string, cfg *config.GravatarConfig) ProfileResponse {
	resp := ProfileResponse{
		ID:          profile.ID,
		UserID:      profile.UserID,
		DarkTheme:   profile.DarkTheme,
		Images:      profile.Images,
		ActiveImage: profile.ActiveImage,
		AvatarURL:   profile.ActiveImage,
	}

	if resp.AvatarURL == "" && email != nil {
		resp.AvatarURL = gravatar.GenerateURL(*email, cfg)
	}

	return resp
}
