package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the configuration for the userdeck server and its dependencies.
type Config struct {
	// Listen is the address the userdeck server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// LogLevel is the log level used when no --log-level flag is given.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// ServerURL is the base URL of the userdeck server.
	ServerURL string `yaml:"server_url" mapstructure:"server_url"`
	// Database holds the database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
	// Storage holds the profile picture storage configuration.
	Storage *StorageConfig `yaml:"storage" mapstructure:"storage"`
	// Password holds the password hashing configuration.
	Password *PasswordConfig `yaml:"password" mapstructure:"password"`
	// Gravatar holds the configuration for Gravatar fallback avatars.
	Gravatar *GravatarConfig `yaml:"gravatar" mapstructure:"gravatar"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	// Path is the path to the sqlite database file.
	Path string `yaml:"path" mapstructure:"path"`
}

// StorageConfig holds the profile picture storage configuration.
type StorageConfig struct {
	// Root is the directory uploaded profile pictures are stored in.
	// Pictures live in one flat directory per user below this root.
	Root string `yaml:"root" mapstructure:"root"`
}

// PasswordConfig holds the password hashing configuration.
type PasswordConfig struct {
	// BcryptCost is the bcrypt cost factor used for new password hashes.
	BcryptCost int `yaml:"bcrypt_cost" mapstructure:"bcrypt_cost"`
}

// GravatarConfig holds the configuration for Gravatar fallback avatars.
type GravatarConfig struct {
	// Enabled indicates whether Gravatar fallback avatars are enabled.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// DefaultImage is the default image to use when no Gravatar is found.
	// Valid values: "404", "mp", "identicon", "monsterid", "wavatar", "retro", "robohash", "blank"
	DefaultImage string `yaml:"default_image" mapstructure:"default_image"`
	// Rating is the maximum rating for Gravatar images.
	// Valid values: "g", "pg", "r", "x"
	Rating string `yaml:"rating" mapstructure:"rating"`
	// Size is the size of the Gravatar image in pixels (1-2048).
	Size int `yaml:"size" mapstructure:"size"`
}

// Load reads the configuration from the specified path and returns a Config struct.
// If path is empty, it will use default search paths for config files.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Configure Viper
	v.SetConfigType("yaml")
	v.SetEnvPrefix("USERDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var configFileFound bool
	if path != "" {
		// Use specific config file
		v.SetConfigFile(path)
	} else {
		// Search for config in common locations
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.userdeck")
		v.AddConfigPath("/etc/userdeck")
	}

	// Read the config file
	if err := v.ReadInConfig(); err != nil {
		// If no config file is found, use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileFound = true
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Print info about config file usage
	if configFileFound {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
		log.Debug("Environment variables with USERDECK_ prefix will override config file values")
	}

	// Validate required configs
	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:3004")
	v.SetDefault("log_level", "info")
	v.SetDefault("server_url", "http://localhost:3004")

	v.SetDefault("database.path", "./data/userdeck.db")
	v.SetDefault("storage.root", "static")
	v.SetDefault("password.bcrypt_cost", 12)

	v.SetDefault("gravatar.enabled", false)
	v.SetDefault("gravatar.default_image", "mp")
	v.SetDefault("gravatar.rating", "g")
	v.SetDefault("gravatar.size", 200)
}

// validateConfig validates the required configuration values.
func validateConfig(c *Config) error {
	if c.Listen == "" {
		return fmt.Errorf("listen address must not be empty")
	}
	if c.Database == nil || c.Database.Path == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.Storage == nil || c.Storage.Root == "" {
		return fmt.Errorf("storage root must not be empty")
	}
	if c.Password != nil && c.Password.BcryptCost < 0 {
		return fmt.Errorf("bcrypt cost must not be negative")
	}
	return nil
}
