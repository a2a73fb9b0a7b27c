package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds all configurable MCP server limits.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Input size limits.
	MaxTextSize int64
	MaxCSVSize  int64

	// Rendering limits.
	MaxCSVRows int
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from STRTOOLS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxTextSize: envInt64("STRTOOLS_MAX_TEXT_SIZE", 1<<20),
		MaxCSVSize:  envInt64("STRTOOLS_MAX_CSV_SIZE", 4<<20),
		MaxCSVRows:  envInt("STRTOOLS_MAX_CSV_ROWS", 10000),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
