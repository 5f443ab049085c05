// Package models holds the request and response shapes of the HTTP API.
package models

// CreateUserRequest is the payload for creating a user. Username, email and
// password are all optional; the service rejects requests where username
// and email are both absent.
type CreateUserRequest struct {
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	IsSuperuser bool    `json:"is_superuser"`
}

// UserResponse is the projection returned when fetching a user.
type UserResponse struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}

// UpdateProfileRequest is the payload for overwriting the profile
// preferences. The image gallery cannot be modified through this request.
type UpdateProfileRequest struct {
	DarkTheme   bool   `json:"dark_theme"`
	ActiveImage string `json:"active_image"`
}

// ProfileResponse is the projection returned for profile reads and writes.
// AvatarURL is the active image when one is set, otherwise a Gravatar
// fallback derived from the user's email (if enabled).
type ProfileResponse struct {
	ID          uint     `json:"id"`
	UserID      uint     `json:"user_id"`
	DarkTheme   bool     `json:"dark_theme"`
	Images      []string `json:"images"`
	ActiveImage string   `json:"active_image"`
	AvatarURL   string   `json:"avatar_url,omitempty"`
}
