package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Demo.Greeting == "" {
		t.Error("expected a default greeting")
	}
	if cfg.Demo.GreetingDelayMs != 600 {
		t.Errorf("GreetingDelayMs = %d, want 600", cfg.Demo.GreetingDelayMs)
	}
	if cfg.Demo.ReportDelayMs != 1800 {
		t.Errorf("ReportDelayMs = %d, want 1800", cfg.Demo.ReportDelayMs)
	}
	if cfg.Demo.FailReport {
		t.Error("FailReport should default to false")
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("Logging.Level = %q, want INFO", cfg.Logging.Level)
	}
}

func TestLoad_Overrides(t *testing.T) {
	viper.Reset()
	SetDefaults()
	viper.Set("demo.fail_report", true)
	viper.Set("demo.report_delay_ms", 50)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Demo.FailReport {
		t.Error("FailReport override not applied")
	}
	if cfg.Demo.ReportDelayMs != 50 {
		t.Errorf("ReportDelayMs = %d, want 50", cfg.Demo.ReportDelayMs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:    "negative greeting delay",
			mutate:  func(c *Config) { c.Demo.GreetingDelayMs = -1 },
			wantErr: "greeting_delay_ms",
		},
		{
			name:    "negative report delay",
			mutate:  func(c *Config) { c.Demo.ReportDelayMs = -10 },
			wantErr: "report_delay_ms",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "LOUD" },
			wantErr: "logging.level",
		},
		{
			name:   "lowercase log level accepted",
			mutate: func(c *Config) { c.Logging.Level = "debug" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Demo:    DemoConfig{Greeting: "hi", GreetingDelayMs: 100, ReportDelayMs: 100},
				Logging: LoggingConfig{Level: "INFO"},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}
