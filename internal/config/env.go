package config

import "os"

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: "TUXDOCK_RUNTIME",
		apply: func(c *Config, v string) {
			c.Runtime = RuntimeName(v)
		},
	},
	{
		envVar: "TUXDOCK_SHELL",
		apply: func(c *Config, v string) {
			c.Shell = v
		},
	},
	{
		envVar: "TUXDOCK_LOG_LEVEL",
		apply: func(c *Config, v string) {
			c.LogLevel = v
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable values.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}
