package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPath is read when CONFIG_PATH is unset and the file exists.
const defaultPath = "./config.yaml"

// Load builds the configuration from CONFIG_PATH (or ./config.yaml when
// present), environment variables and env-default tags, in rising order of
// precedence: defaults, YAML, ENV. The result is validated.
func Load() (*Config, error) {
	var cfg Config

	path, explicit := os.LookupEnv("CONFIG_PATH")
	if !explicit || path == "" {
		path, explicit = defaultPath, false
	}

	switch _, err := os.Stat(path); {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Describe lists every environment variable the configuration reads, with
// its default.
func Describe() (string, error) {
	var cfg Config
	return cleanenv.GetDescription(&cfg, nil)
}
