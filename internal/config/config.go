package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"backend/internal/validation"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds the application's configuration. It is loaded once at startup
// and passed by reference; nothing mutates it afterwards.
type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Storage struct {
		Backend string `yaml:"backend"`
	} `yaml:"storage"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	JWT struct {
		Secret     string `yaml:"secret"`
		TTLSeconds int64  `yaml:"ttl_seconds"`
	} `yaml:"jwt"`
	Password validation.PasswordPolicy `yaml:"password"`
}

// TokenTTL returns the configured token lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWT.TTLSeconds) * time.Second
}

// LoadConfig reads configuration from the specified YAML file. The JWT secret
// may be overridden through the JWT_SECRET environment variable so it can stay
// out of the file.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}

	file, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.JWT.Secret = secret
	}

	if config.Server.Port == "" {
		config.Server.Port = ":8080"
	}
	if config.Storage.Backend == "" {
		config.Storage.Backend = StorageMemory
	}
	if config.JWT.TTLSeconds <= 0 {
		config.JWT.TTLSeconds = 3600
	}
	if config.Password.MinLength <= 0 {
		config.Password = validation.DefaultPasswordPolicy
	}

	if config.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is not configured")
	}
	if config.Storage.Backend != StorageMemory && config.Storage.Backend != StoragePostgres {
		return nil, fmt.Errorf("unknown storage backend %q", config.Storage.Backend)
	}
	if config.Storage.Backend == StoragePostgres && config.Database.URL == "" {
		return nil, fmt.Errorf("database url is required for postgres storage")
	}

	return config, nil
}
