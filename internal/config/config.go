// Package config defines the configuration for the await demo program.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete await-demo configuration
type Config struct {
	Demo    DemoConfig    `mapstructure:"demo"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DemoConfig controls the simulated fetches shown by the demo
type DemoConfig struct {
	// Greeting is the value the greeting fetch resolves to
	Greeting string `mapstructure:"greeting"`
	// GreetingDelayMs is how long the greeting fetch takes, in milliseconds
	GreetingDelayMs int `mapstructure:"greeting_delay_ms"`
	// ReportDelayMs is how long the report fetch takes, in milliseconds
	ReportDelayMs int `mapstructure:"report_delay_ms"`
	// FailReport makes the report fetch fail, to exercise the failure phase
	FailReport bool `mapstructure:"fail_report"`
}

// LoggingConfig controls the structured log output
type LoggingConfig struct {
	// Level is the minimum log level: DEBUG, INFO, WARN, or ERROR
	Level string `mapstructure:"level"`
	// File is the log file path; empty means stderr
	File string `mapstructure:"file"`
}

// SetDefaults registers default values for all configuration keys so they
// are available even without a config file.
func SetDefaults() {
	viper.SetDefault("demo.greeting", "hello from upstream")
	viper.SetDefault("demo.greeting_delay_ms", 600)
	viper.SetDefault("demo.report_delay_ms", 1800)
	viper.SetDefault("demo.fail_report", false)
	viper.SetDefault("logging.level", "INFO")
	viper.SetDefault("logging.file", "")
}

// Load unmarshals the current viper state into a validated Config.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for values that would make the demo
// misbehave.
func (c *Config) Validate() error {
	if c.Demo.GreetingDelayMs < 0 {
		return fmt.Errorf("demo.greeting_delay_ms must not be negative, got %d", c.Demo.GreetingDelayMs)
	}
	if c.Demo.ReportDelayMs < 0 {
		return fmt.Errorf("demo.report_delay_ms must not be negative, got %d", c.Demo.ReportDelayMs)
	}
	switch strings.ToUpper(c.Logging.Level) {
	case "DEBUG", "INFO", "WARN", "ERROR", "":
	default:
		return fmt.Errorf("logging.level must be one of DEBUG, INFO, WARN, ERROR, got %q", c.Logging.Level)
	}
	return nil
}
