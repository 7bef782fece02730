package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Session struct {
		TTL           string `yaml:"ttl" env:"SESSION_TTL"`
		SweepInterval string `yaml:"sweep_interval" env:"SESSION_SWEEP_INTERVAL"`
		CookieName    string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
		Secure        bool   `yaml:"secure" env:"SESSION_SECURE"`
	} `yaml:"session"`

	Admin struct {
		Username string `yaml:"username" env:"ADMIN_USERNAME"`
		Email    string `yaml:"email" env:"ADMIN_EMAIL"`
		Password string `yaml:"password" env:"ADMIN_PASSWORD"`
		FullName string `yaml:"full_name" env:"ADMIN_FULL_NAME"`
	} `yaml:"admin"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Seed struct {
		DemoData bool `yaml:"demo_data" env:"SEED_DEMO_DATA"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars can carry everything.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Session.TTL = "168h"
	config.Session.SweepInterval = "1h"
	config.Session.CookieName = "givehope_session"
	config.Session.Secure = false

	config.Admin.Username = "admin"
	config.Admin.Email = "admin@givehope.org"
	config.Admin.FullName = "System Administrator"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Seed.DemoData = true
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	// The admin account is provisioned from config at startup; there is no
	// in-band fallback credential, so the password must be set.
	if config.Admin.Password == "" {
		return fmt.Errorf("admin password is required (ADMIN_PASSWORD)")
	}
	if config.Admin.Username == "" {
		return fmt.Errorf("admin username is required")
	}

	if _, err := time.ParseDuration(config.Session.TTL); err != nil {
		return fmt.Errorf("invalid session TTL format: %w", err)
	}
	if config.Session.SweepInterval != "" {
		if _, err := time.ParseDuration(config.Session.SweepInterval); err != nil {
			return fmt.Errorf("invalid session sweep interval format: %w", err)
		}
	}

	return nil
}

// SessionTTL returns the parsed session lifetime.
func (c *Config) SessionTTL() time.Duration {
	ttl, err := time.ParseDuration(c.Session.TTL)
	if err != nil {
		return 168 * time.Hour
	}
	return ttl
}

// SessionSweepInterval returns the parsed janitor interval; zero disables it.
func (c *Config) SessionSweepInterval() time.Duration {
	if c.Session.SweepInterval == "" {
		return 0
	}
	interval, err := time.ParseDuration(c.Session.SweepInterval)
	if err != nil {
		return 0
	}
	return interval
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "production"
}
