package config

import (
	"os"

	"holdem-ledger-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the holdem ledger server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	Log            struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Room struct {
		// CleanupInterval is how often the janitor sweeps, in seconds
		CleanupInterval int `yaml:"cleanupInterval" envconfig:"cleanup_interval"`

		// EmptyRetention is how long an empty room is kept, in seconds
		EmptyRetention int `yaml:"emptyRetention" envconfig:"empty_retention"`
	} `yaml:"room"`
}

var config Config

// DefaultConfig returns the built-in configuration
func DefaultConfig() Config {
	var c Config
	c.PGDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"
	c.MigrationsPath = "./sql"
	c.Room.CleanupInterval = 60
	c.Room.EmptyRetention = 600
	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. Values come from the defaults, then the
// optional YAML config file, then the environment.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HLS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("hls", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
