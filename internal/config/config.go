package config

import (
	"os"

	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// Every field has a default, so the program runs without a config file or
// any environment variables set.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"production" yaml:"environment"`

	// Log contains diagnostic logging settings. Logs are always written to stderr.
	Log struct {
		// Level overrides the environment's default level (debug, info, warn, error)
		Level string `env:"LOG_LEVEL" env-default:"warn" yaml:"level"`
	} `yaml:"log"`

	// Metrics contains settings for the run counters
	Metrics struct {
		// Namespace is prefixed to every exported metric name
		Namespace string `env:"METRICS_NAMESPACE" env-default:"naturals" yaml:"namespace"`
		// TextfilePath is where metrics are written in Prometheus text format on exit.
		// Empty disables the export.
		TextfilePath string `env:"METRICS_TEXTFILE_PATH" env-default:"" yaml:"textfilePath"`
	} `yaml:"metrics"`
}

// Load fills a Config from the yaml file at configPath, with environment
// variables taking precedence. A missing file is not an error: the
// configuration then comes from the environment and defaults alone.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
				return nil, errors.Wrap(err, "could not read config")
			}

			return &cfg, nil
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "could not stat config")
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "could not read config from environment")
	}

	return &cfg, nil
}
