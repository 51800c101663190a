package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// RuntimeName identifies the container runtime CLI to shell out to.
type RuntimeName string

const (
	RuntimeDocker RuntimeName = "docker"
	RuntimePodman RuntimeName = "podman"

	// RuntimeAuto probes for docker, then podman, at startup.
	RuntimeAuto RuntimeName = "auto"
)

// DatabaseConfig controls the "Spin Up MySQL Container" action.
type DatabaseConfig struct {
	// Image is the repository name; the operator supplies the tag
	Image string `yaml:"image"`

	// ContainerName is passed to --name
	ContainerName string `yaml:"container_name"`

	// PasswordEnv is the environment variable that receives the root password
	PasswordEnv string `yaml:"password_env"`
}

// Config holds all configuration for tuxdock.
// It is read once at startup and never written back.
type Config struct {
	// Runtime is "docker", "podman" or "auto"
	Runtime RuntimeName `yaml:"runtime"`

	// Shell is the command started by run-interactive and exec
	Shell string `yaml:"shell"`

	// LogLevel controls log verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Database contains the database spin-up settings
	Database DatabaseConfig `yaml:"database"`

	// Spinner shows progress on stderr while listing or inspecting
	Spinner bool `yaml:"spinner"`
}

// DefaultPath returns the config file location used when no --config flag is given.
// $XDG_CONFIG_HOME is honored; otherwise ~/.config is used.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "tuxdock", "config.yaml")
}

// LoadConfig loads configuration from path.
// It applies defaults, then file values, then environment overrides,
// then validates. A missing file is not an error; an empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist):
			// use defaults
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate re-checks a config after callers applied flag overrides.
func (c *Config) Validate() error {
	return validateConfig(c)
}
