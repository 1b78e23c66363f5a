package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// envPrefix namespaces the rate limit variables next to the importer's own RESUME_IMPORT_* settings.
const envPrefix = "RESUME_IMPORT_RATE_LIMIT_"

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method (GET, POST, etc.)
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// LoadConfig reads RESUME_IMPORT_RATE_LIMIT_* variables. Unset or unparseable values keep their defaults.
//
//	ENABLED, DEFAULT_LIMIT, DEFAULT_WINDOW, CLEANUP_INTERVAL: scalar settings
//	ALLOW, DENY: comma-separated client IDs (see the server's client extraction)
func LoadConfig() *Config {
	if !envOr("ENABLED", true, strconv.ParseBool) {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    envOr("DEFAULT_LIMIT", 1000, strconv.Atoi),
		DefaultWindow:   envOr("DEFAULT_WINDOW", time.Minute, time.ParseDuration),
		CleanupInterval: envOr("CLEANUP_INTERVAL", 5*time.Minute, time.ParseDuration),
		Whitelist:       clientSet(os.Getenv(envPrefix + "ALLOW")),
		Blacklist:       clientSet(os.Getenv(envPrefix + "DENY")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Document imports run PDF/DOCX extraction (strictest limits)
		{Path: "/import", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		// Batches fan out to several extractions per request
		{Path: "/import/batch", Method: "POST", Limit: 10, Window: time.Minute, Burst: 2},
		// Pasted text only runs the segmenter
		{Path: "/import/text", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},

		// Read operations use the default limit; /health is unlimited (see MatchEndpoint)
	}
}

func envOr[T any](name string, def T, parse func(string) (T, error)) T {
	raw := os.Getenv(envPrefix + name)
	if raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		return def
	}
	return v
}

// clientSet splits a comma-separated list of client IDs.
func clientSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, id := range strings.Split(list, ",") {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = true
		}
	}
	return set
}
