// Package config manages the camptrack configuration and login session,
// stored as YAML at ~/.camptrack/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// Config represents the application configuration. CurrentUser holds
// the session established by `camptrack login`; a zero value means
// nobody is logged in.
type Config struct {
	CurrentUser     string `yaml:"currentUser,omitempty"`
	CurrentUserID   int64  `yaml:"currentUserID,omitempty"`
	CurrentUserRole string `yaml:"currentUserRole,omitempty" validate:"omitempty,oneof=admin coordinator leader"`
	DataDir         string `yaml:"dataDir,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load reads the configuration. A missing file yields the zero config
// rather than an error so first runs work without setup.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration, creating ~/.camptrack if needed.
func Save(cfg *Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration struct.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// ClearSession removes the logged-in user from the configuration.
func ClearSession(cfg *Config) {
	cfg.CurrentUser = ""
	cfg.CurrentUserID = 0
	cfg.CurrentUserRole = ""
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".camptrack", configFileName), nil
}
