package mergemcp

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds configurable MCP server defaults, loaded once at
// startup from OPENAPI_MERGE_MCP_* environment variables.
type serverConfig struct {
	// HTTPTimeout bounds URL-sourced input fetches.
	HTTPTimeout time.Duration
	// MaxInlineSize caps the size of inline "content" spec input, in bytes.
	MaxInlineSize int64
}

var cfg = loadConfig()

func loadConfig() *serverConfig {
	return &serverConfig{
		HTTPTimeout:   envDuration("OPENAPI_MERGE_MCP_HTTP_TIMEOUT", 30*time.Second),
		MaxInlineSize: envInt64("OPENAPI_MERGE_MCP_MAX_INLINE_SIZE", 5*1024*1024),
	}
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
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
