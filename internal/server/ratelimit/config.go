package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a group of
// endpoints. Session IDs sit in the middle of the path, so endpoints are
// matched by method plus path suffix rather than prefix.
type EndpointConfig struct {
	Method string        // HTTP method (GET, POST, etc.)
	Suffix string        // Endpoint path suffix ("" matches any path)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{
			Enabled: false,
		}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: simulated-processing operations (strictest limits)
		{Method: "POST", Suffix: "/profile/file", Limit: 30, Window: time.Minute, Burst: 5},
		{Method: "POST", Suffix: "/profile/linkedin", Limit: 30, Window: time.Minute, Burst: 5},
		{Method: "POST", Suffix: "/profile/text", Limit: 30, Window: time.Minute, Burst: 5},
		{Method: "POST", Suffix: "/analysis", Limit: 30, Window: time.Minute, Burst: 5},

		// Tier 2: session creation (moderate limits)
		{Method: "POST", Suffix: "/sessions", Limit: 60, Window: time.Minute, Burst: 10},

		// Tier 3: everything else - handled by default limit
		// Tier 4: health check (unlimited) - handled by special case in matcher
	}
}

// MatchEndpoint finds the first endpoint configuration matching the request.
// Returns nil if no specific configuration matches (caller uses the default).
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never limited
	if path == "/health" {
		return &EndpointConfig{Limit: 0}
	}

	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != "" && cfg.Method != method {
			continue
		}
		if cfg.Suffix == "" || strings.HasSuffix(path, cfg.Suffix) {
			return cfg
		}
	}
	return nil
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
