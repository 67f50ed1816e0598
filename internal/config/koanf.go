// Mediabrowser - Media Catalog Navigation and Resolution Core
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediabrowser

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/mediabrowser/config.yaml",
	"/etc/mediabrowser/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8730,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Catalog: CatalogConfig{
			ContentCacheSize: 50,
			LeafCacheSize:    500,
			ContentCacheTTL:  0, // entries live until evicted or invalidated
			PreloadTabs:      true,
		},
		Upstream: UpstreamConfig{
			Timeout:   30 * time.Second,
			RateLimit: 20,
			Burst:     10,
		},
		Breaker: BreakerConfig{
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      30 * time.Second,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
		Favorites: FavoritesConfig{
			Enabled: false,
			Path:    "/data/favorites",
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any mapped setting
func LoadWithKoanf() (*Config, error) {
	return load(findConfigFile())
}

// LoadFile loads configuration from an explicit YAML file, still applying
// defaults below it and environment variables above it.
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables
	// HTTP_PORT -> server.port
	// UPSTREAM_BASE_URL -> upstream.base_url
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}
	if err := processMapFields(k); err != nil {
		return nil, fmt.Errorf("failed to process map fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// ConfigFile returns the file LoadWithKoanf would read, or "".
func ConfigFile() string {
	return findConfigFile()
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// mapConfigPaths defines which config paths should be parsed as comma-separated key=value pairs
var mapConfigPaths = []string{
	"upstream.headers",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := splitList(strVal)
		if len(parts) == 0 {
			continue
		}
		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// processMapFields converts "k=v,k2=v2" strings into maps for known map fields.
func processMapFields(k *koanf.Koanf) error {
	for _, path := range mapConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		m := make(map[string]interface{})
		for _, pair := range splitList(strVal) {
			key, value, found := strings.Cut(pair, "=")
			if !found || strings.TrimSpace(key) == "" {
				return fmt.Errorf("%s: malformed pair %q, want key=value", path, pair)
			}
			m[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}
		// Delete first so the string value does not shadow the map.
		k.Delete(path)
		if len(m) == 0 {
			continue
		}
		if err := k.Set(path, m); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	trimmed := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			trimmed = append(trimmed, p)
		}
	}
	return trimmed
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
var envMappings = map[string]string{
	// Server mappings
	"http_port":      "server.port",
	"http_host":      "server.host",
	"server_timeout": "server.timeout",
	"environment":    "server.environment",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Catalog cache mappings
	"content_cache_size": "catalog.content_cache_size",
	"leaf_cache_size":    "catalog.leaf_cache_size",
	"content_cache_ttl":  "catalog.content_cache_ttl",
	"preload_tabs":       "catalog.preload_tabs",

	// Upstream mappings
	"upstream_base_url":   "upstream.base_url",
	"upstream_headers":    "upstream.headers",
	"upstream_timeout":    "upstream.timeout",
	"upstream_rate_limit": "upstream.rate_limit",
	"upstream_burst":      "upstream.burst",

	// Circuit breaker mappings
	"breaker_max_requests":  "breaker.max_requests",
	"breaker_interval":      "breaker.interval",
	"breaker_timeout":       "breaker.timeout",
	"breaker_min_requests":  "breaker.min_requests",
	"breaker_failure_ratio": "breaker.failure_ratio",

	// Favorites mappings
	"favorites_enabled": "favorites.enabled",
	"favorites_path":    "favorites.path",

	// Security mappings
	"rate_limit_reqs":    "security.rate_limit_reqs",
	"rate_limit_window":  "security.rate_limit_window",
	"disable_rate_limit": "security.rate_limit_disabled",
	"cors_origins":       "security.cors_origins",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - CONTENT_CACHE_SIZE -> catalog.content_cache_size
//   - DISABLE_RATE_LIMIT -> security.rate_limit_disabled
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped keys are skipped so unrelated environment variables never
	// reach the configuration.
	return ""
}

// WatchConfigFile calls callback whenever the file at path changes.
// The caller is responsible for synchronizing access to reloaded values.
//
// Example usage:
//
//	err := WatchConfigFile(path, func() {
//	    newCfg, err := LoadFile(path)
//	    if err != nil {
//	        logging.Error().Err(err).Msg("Config reload failed")
//	        return
//	    }
//	    apply(newCfg)
//	})
func WatchConfigFile(path string, callback func()) (stop func() error, err error) {
	provider := file.Provider(path)
	if err := provider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	}); err != nil {
		return nil, err
	}
	return provider.Unwatch, nil
}
