package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultAddr          = ":3000"
	DefaultHubBufferSize = 256
)

// Config holds all configuration for the relay.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string
	// LogFormat selects the slog handler: "text" or "json".
	LogFormat string
	// HubBufferSize is the per-subscriber outbound frame buffer. When a
	// client lags beyond this many frames, its oldest frames are dropped.
	HubBufferSize int
}

// New loads configuration from environment variables, reading a .env file
// first if one exists.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Addr:          os.Getenv("ADDR"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
		HubBufferSize: DefaultHubBufferSize,
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if raw := os.Getenv("HUB_BUFFER_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 1 {
			log.Printf("Ignoring invalid HUB_BUFFER_SIZE %q", raw)
		} else {
			cfg.HubBufferSize = size
		}
	}

	return cfg
}
