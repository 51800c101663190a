package config

const (
	DefaultRuntime           = RuntimeDocker
	DefaultShell             = "/bin/sh"
	DefaultLogLevel          = "warn"
	DefaultDatabaseImage     = "mysql"
	DefaultDatabaseContainer = "mysql-container"
	DefaultDatabasePassword  = "MYSQL_ROOT_PASSWORD"
	DefaultSpinner           = true
)

// DefaultDatabaseConfig returns the settings for the MySQL spin-up action.
func DefaultDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Image:         DefaultDatabaseImage,
		ContainerName: DefaultDatabaseContainer,
		PasswordEnv:   DefaultDatabasePassword,
	}
}

// DefaultConfig returns a Config with all default values applied.
func DefaultConfig() *Config {
	return &Config{
		Runtime:  DefaultRuntime,
		Shell:    DefaultShell,
		LogLevel: DefaultLogLevel,
		Database: DefaultDatabaseConfig(),
		Spinner:  DefaultSpinner,
	}
}
