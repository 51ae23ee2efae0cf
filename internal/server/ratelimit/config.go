package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule is a per-endpoint rate limit. Paths ending in "/" match by
// prefix; a Limit of zero means unlimited.
type Rule struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Rules           []Rule
}

// DefaultConfig returns the built-in limiter configuration.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Rules:           defaultRules(),
	}
}

// LoadConfig builds limiter configuration from RATE_LIMIT_* environment
// variables, falling back to defaults.
func LoadConfig() *Config {
	if !envBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    envInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   envDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: envDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Rules:           defaultRules(),
	}
}

// defaultRules tiers the API: cohort-sized evaluations are strictest,
// single-pair evaluations moderate, reads lenient via the default.
func defaultRules() []Rule {
	return []Rule{
		{Path: "/match/rank", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/benchmark", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/pipeline/", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/score", Method: "POST", Limit: 300, Window: time.Minute, Burst: 50},
		{Path: "/match", Method: "POST", Limit: 300, Window: time.Minute, Burst: 50},
		{Path: "/recommendations", Method: "POST", Limit: 300, Window: time.Minute, Burst: 50},
	}
}

// matchRule resolves the rule for a path and method. Health checks are
// never limited; exact matches win over prefix matches.
func matchRule(path, method string, rules []Rule) *Rule {
	if path == "/health" && method == "GET" {
		return &Rule{Limit: 0}
	}

	for i := range rules {
		if rules[i].Path == path && rules[i].Method == method {
			return &rules[i]
		}
	}
	for i := range rules {
		rule := &rules[i]
		if rule.Method == method && strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) {
			return rule
		}
	}
	return nil
}

func envBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
