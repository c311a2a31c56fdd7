// Package config loads the annotator's optional YAML configuration.
package config

import (
	"fmt"
	"os"

	"github.com/qazaqnlp/qural/pkg/types"
	"gopkg.in/yaml.v3"
)

// Config holds everything the serve command needs to start.
type Config struct {
	// BindAddr is the host:port the web UI and MCP endpoint listen on.
	BindAddr string `yaml:"bind_addr"`

	// DatabasePath is the SQLite file holding users and annotations.
	DatabasePath string `yaml:"database_path"`

	// Debug raises log verbosity and enables gorm query logging.
	Debug bool `yaml:"debug"`

	// Seed is the account inserted when the users table is empty.
	Seed SeedConfig `yaml:"seed"`
}

// SeedConfig is the bootstrap admin account.
type SeedConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		BindAddr:     "localhost:8990",
		DatabasePath: "qural.db",
		Seed: SeedConfig{
			Username: types.DefaultAdminUser,
			Password: types.DefaultAdminPassword,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Seed.Username == "" {
		cfg.Seed.Username = types.DefaultAdminUser
	}
	if cfg.Seed.Password == "" {
		cfg.Seed.Password = types.DefaultAdminPassword
	}
	return cfg, nil
}
