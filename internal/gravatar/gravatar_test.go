package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avasek/userdeck/internal/config"
)

func TestGenerateURL(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		config   *config.GravatarConfig
		expected string
	}{
		{
			name:     "disabled gravatar",
			email:    "test@example.com",
			config:   &config.GravatarConfig{Enabled: false},
			expected: "",
		},
		{
			name:     "nil config",
			email:    "test@example.com",
			config:   nil,
			expected: "",
		},
		{
			name:     "empty email",
			email:    "",
			config:   &config.GravatarConfig{Enabled: true},
			expected: "",
		},
		{
			name:  "basic enabled config",
			email: "test@example.com",
			config: &config.GravatarConfig{
				Enabled: true,
			},
			expected: "https://www.gravatar.com/avatar/973dfe463ec85785f5f95af5ba3906eedb2d931c24e69824a89ea65dba4e813b",
		},
		{
			name:  "config with default image",
			email: "test@example.com",
			config: &config.GravatarConfig{
				Enabled:      true,
				DefaultImage: "mp",
			},
			expected: "https://www.gravatar.com/avatar/973dfe463ec85785f5f95af5ba3906eedb2d931c24e69824a89ea65dba4e813b?d=mp",
		},
		{
			name:  "config with all options",
			email: "TEST@EXAMPLE.COM", // Test case normalization
			config: &config.GravatarConfig{
				Enabled:      true,
				DefaultImage: "identicon",
				Rating:       "pg",
				Size:         120,
			},
			expected: "https://www.gravatar.com/avatar/973dfe463ec85785f5f95af5ba3906eedb2d931c24e69824a89ea65dba4e813b?d=identicon&r=pg&s=120",
		},
		{
			name:  "invalid options are skipped",
			email: "test@example.com",
			config: &config.GravatarConfig{
				Enabled:      true,
				DefaultImage: "not-a-default",
				Rating:       "nc-17",
				Size:         9999,
			},
			expected: "https://www.gravatar.com/avatar/973dfe463ec85785f5f95af5ba3906eedb2d931c24e69824a89ea65dba4e813b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GenerateURL(tt.email, tt.config)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsValidDefaultImage(t *testing.T) {
	valid := []string{"404", "mp", "identicon", "monsterid", "wavatar", "retro", "robohash", "blank"}
	for _, img := range valid {
		assert.True(t, IsValidDefaultImage(img), "Expected %s to be valid", img)
	}

	invalid := []string{"", "invalid", "MP", "Identicon"}
	for _, img := range invalid {
		assert.False(t, IsValidDefaultImage(img), "Expected %s to be invalid", img)
	}
}

func TestIsValidRating(t *testing.T) {
	valid := []string{"g", "pg", "r", "x"}
	for _, rating := range valid {
		assert.True(t, IsValidRating(rating), "Expected %s to be valid", rating)
	}

	invalid := []string{"", "G", "nc-17", "pg-13"}
	for _, rating := range invalid {
		assert.False(t, IsValidRating(rating), "Expected %s to be invalid", rating)
	}
}

func TestIsValidSize(t *testing.T) {
	valid := []int{1, 80, 200, 2048}
	for _, size := range valid {
		assert.True(t, IsValidSize(size), "Expected %d to be valid", size)
	}

	invalid := []int{0, -1, 2049, 10000}
	for _, size := range invalid {
		assert.False(t, IsValidSize(size), "Expected %d to be invalid", size)
	}
}
