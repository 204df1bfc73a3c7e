package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr    string
	GinMode string
}

const (
	defaultAddr    = ":8080"
	defaultGinMode = "release"
)

// Load reads an optional .env file, then environment variables. Every setting
// has a default; the server needs no required configuration.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:    defaultAddr,
		GinMode: defaultGinMode,
	}
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	} else if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.GinMode = v
	}
	return cfg
}
