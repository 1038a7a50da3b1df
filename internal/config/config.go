package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	defaults "stockquote-gateway/internal/infrastructure/config"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port            string
	ShutdownTimeout time.Duration
	MetricsAddr     string
	// Provider
	Provider string
	// Upstream
	UpstreamBaseURL   string
	UpstreamUserAgent string
	// UpstreamTimeout of zero leaves the transport without an overall
	// deadline; the request context still bounds the call.
	UpstreamTimeout time.Duration
	// UpstreamInsecureSkipVerify disables TLS certificate checks.
	UpstreamInsecureSkipVerify bool
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return def
	}
	return i
}

func boolDef(s string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return b
}

func msDef(key string, def time.Duration) time.Duration {
	return time.Duration(atoiDef(os.Getenv(key), int(def/time.Millisecond))) * time.Millisecond
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:                        getEnv("ENV", "local"),
		LogLevel:                   getEnv("LOG_LEVEL", "info"),
		Port:                       getEnv("PORT", defaults.DefaultHTTPPort),
		ShutdownTimeout:            msDef("SHUTDOWN_TIMEOUT_MS", defaults.DefaultShutdownTimeout),
		MetricsAddr:                getEnv("METRICS_ADDR", ""),
		Provider:                   strings.ToLower(getEnv("PROVIDER", defaults.DefaultProvider)),
		UpstreamBaseURL:            getEnv("UPSTREAM_BASE_URL", defaults.DefaultUpstreamBaseURL),
		UpstreamUserAgent:          getEnv("UPSTREAM_USER_AGENT", defaults.DefaultUpstreamAgent),
		UpstreamTimeout:            msDef("UPSTREAM_TIMEOUT_MS", 0),
		UpstreamInsecureSkipVerify: boolDef(os.Getenv("UPSTREAM_INSECURE_SKIP_VERIFY"), false),
	}
}
