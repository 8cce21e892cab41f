package server

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// DefaultConfig returns sensible defaults. PORT, LOG_LEVEL, and
// SHUTDOWN_TIMEOUT_SECONDS environment variables override their respective
// fields when set.
func DefaultConfig() *Config {
	cfg := &Config{
		Name:            "craftbenchd",
		Version:         "dev",
		Address:         "",
		Port:            8080,
		RateLimit:       100, // 100 req/s
		RateLimitBurst:  200, // burst of 200
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		LogLevel:        slog.LevelInfo,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		var port int
		if _, err := fmt.Sscanf(portStr, "%d", &port); err == nil {
			cfg.Port = port
		}
	}

	if logLevelStr := os.Getenv("LOG_LEVEL"); logLevelStr != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(logLevelStr)); err == nil {
			cfg.LogLevel = level
		}
	}

	// Allow customization of shutdown timeout to match orchestrator eviction
	// grace periods.
	if shutdownStr := os.Getenv("SHUTDOWN_TIMEOUT_SECONDS"); shutdownStr != "" {
		var seconds int
		if _, err := fmt.Sscanf(shutdownStr, "%d", &seconds); err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		}
	}

	return cfg
}
