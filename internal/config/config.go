package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Serving modes for the MCP server.
const (
	ModeStdio = "stdio"
	ModeHTTP  = "http"
)

type Config struct {
	// Server
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Mode        string `json:"mode"` // "stdio" or "http"
	Environment string `json:"environment"`
	LogLevel    string `json:"log_level"`

	// CORS
	CORSOrigins []string `json:"cors_origins"`

	// Auth
	APIKeyHeader string   `json:"api_key_header"`
	APIKeys      []string `json:"api_keys"`
	EnableAuth   bool     `json:"enable_auth"`

	// Rate Limiting
	RateLimitPerMinute int `json:"rate_limit_per_minute"`

	// National Weather Service
	NWSBaseURL   string `json:"nws_base_url"`
	NWSUserAgent string `json:"nws_user_agent"`

	// Logistics backend
	BackendBaseURL string `json:"backend_base_url"`
	BackendAPIKey  string `json:"backend_api_key"`

	// Outbound HTTP
	HTTPTimeoutSeconds int `json:"http_timeout_seconds"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Host:               DefaultHost,
		Port:               DefaultPort,
		Mode:               DefaultMode,
		Environment:        DefaultEnvironment,
		LogLevel:           DefaultLogLevel,
		CORSOrigins:        DefaultCORSOrigins,
		APIKeyHeader:       "X-API-Key",
		RateLimitPerMinute: DefaultRateLimitPerMinute,
		NWSBaseURL:         DefaultNWSBaseURL,
		NWSUserAgent:       DefaultNWSUserAgent,
		HTTPTimeoutSeconds: DefaultHTTPTimeoutSeconds,
	}

	// Load from JSON config file if specified
	if path := getEnv("FLETERA_CONFIG", ""); path != "" {
		if err := loadJSON(path, cfg); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// Environment overrides
	applyEnvOverrides(cfg)

	if cfg.Mode != ModeStdio && cfg.Mode != ModeHTTP {
		return nil, fmt.Errorf("invalid mode %q: must be %q or %q", cfg.Mode, ModeStdio, ModeHTTP)
	}

	return cfg, nil
}

func loadJSON(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if v := getEnv("FLETERA_HOST", ""); v != "" {
		cfg.Host = v
	}
	if v := getEnv("FLETERA_PORT", ""); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := getEnv("FLETERA_MODE", ""); v != "" {
		cfg.Mode = v
	}
	if v := getEnv("FLETERA_ENV", ""); v != "" {
		cfg.Environment = v
	}
	if v := getEnv("FLETERA_LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
	if v := getEnv("FLETERA_API_KEYS", ""); v != "" {
		cfg.APIKeys = strings.Split(v, ",")
	}
	if v := getEnv("FLETERA_CORS_ORIGINS", ""); v != "" {
		cfg.CORSOrigins = strings.Split(v, ",")
	}
	if v := getEnv("ENABLE_AUTH", ""); v != "" {
		cfg.EnableAuth = v == "true" || v == "1"
	}
	if v := getEnv("RATE_LIMIT_PER_MINUTE", ""); v != "" {
		if r, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitPerMinute = r
		}
	}
	if v := getEnv("NWS_BASE_URL", ""); v != "" {
		cfg.NWSBaseURL = v
	}
	if v := getEnv("NWS_USER_AGENT", ""); v != "" {
		cfg.NWSUserAgent = v
	}
	if v := getEnv("BACKEND_BASE_URL", ""); v != "" {
		cfg.BackendBaseURL = v
	}
	if v := getEnv("BACKEND_API_KEY", ""); v != "" {
		cfg.BackendAPIKey = v
	}
	if v := getEnv("HTTP_TIMEOUT_SECONDS", ""); v != "" {
		if t, err := strconv.Atoi(v); err == nil {
			cfg.HTTPTimeoutSeconds = t
		}
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
