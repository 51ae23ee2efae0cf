// Package config provides configuration loading and validation for the
// CLI and server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config is the runtime configuration, loadable from a JSON file with
// environment-variable overrides. All fields are optional; missing
// values fall back to defaults.
type Config struct {
	// Server
	ListenAddr string `json:"listen_addr,omitempty" validate:"omitempty,hostname_port"`

	// Persistence. Empty means the bounded in-memory execution store.
	DatabaseURL      string `json:"database_url,omitempty" validate:"omitempty,url"`
	ExecutionHistory int    `json:"execution_history,omitempty" validate:"gte=0"`

	// Automation
	RulesFile            string `json:"rules_file,omitempty"`
	ActionTimeoutSeconds int    `json:"action_timeout_seconds,omitempty" validate:"gte=0"`

	// Matching
	MinScore float64 `json:"min_score,omitempty" validate:"gte=0,lte=100"`

	// Behavior
	LogLevel string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Verbose  bool   `json:"verbose,omitempty"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		ListenAddr:           ":8080",
		ExecutionHistory:     1000,
		ActionTimeoutSeconds: 5,
		MinScore:             50,
		LogLevel:             "info",
	}
}

// Load reads configuration from a JSON file. Returns an error if the
// file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays TALENT_* environment variables on the config.
// Environment values win over file values; godotenv loads .env before
// this runs.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("TALENT_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("TALENT_DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("TALENT_RULES_FILE"); v != "" {
		c.RulesFile = v
	}
	if v := os.Getenv("TALENT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks field values and, when a rules file is configured,
// that it exists. Invalid configuration is fatal at startup.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: field %s failed %q validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.RulesFile != "" {
		if _, err := os.Stat(c.RulesFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: rules file not found: %s", c.RulesFile)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. File values win over defaults; zero means unset.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RulesFile == "" {
		result.RulesFile = defaults.RulesFile
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.ExecutionHistory == 0 {
		result.ExecutionHistory = defaults.ExecutionHistory
	}
	if result.ActionTimeoutSeconds == 0 {
		result.ActionTimeoutSeconds = defaults.ActionTimeoutSeconds
	}
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}

	return result
}
