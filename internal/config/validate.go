package config

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ValidationError contains details about what failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config.%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// validateConfig checks all config values for validity.
// Returns nil if valid, or joined errors for all validation failures.
func validateConfig(cfg *Config) error {
	var errs []error

	switch cfg.Runtime {
	case RuntimeDocker, RuntimePodman, RuntimeAuto:
	default:
		errs = append(errs, &ValidationError{
			Field:   "runtime",
			Value:   cfg.Runtime,
			Message: "must be docker, podman or auto",
		})
	}

	if cfg.Shell == "" {
		errs = append(errs, &ValidationError{
			Field:   "shell",
			Value:   cfg.Shell,
			Message: "must not be empty",
		})
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: "must be one of: trace, debug, info, warn, error",
		})
	}

	if cfg.Database.Image == "" {
		errs = append(errs, &ValidationError{
			Field:   "database.image",
			Value:   cfg.Database.Image,
			Message: "must not be empty",
		})
	}
	if cfg.Database.ContainerName == "" {
		errs = append(errs, &ValidationError{
			Field:   "database.container_name",
			Value:   cfg.Database.ContainerName,
			Message: "must not be empty",
		})
	}
	if cfg.Database.PasswordEnv == "" {
		errs = append(errs, &ValidationError{
			Field:   "database.password_env",
			Value:   cfg.Database.PasswordEnv,
			Message: "must not be empty",
		})
	}

	return errors.Join(errs...)
}
