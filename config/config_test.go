package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("PORT", "")
	t.Setenv("GIN_MODE", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "release", cfg.GinMode)
}

func TestLoadAddrFromEnv(t *testing.T) {
	t.Setenv("ADDR", "127.0.0.1:9090")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr)
}

func TestLoadPortFallback(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("PORT", "3000")

	cfg := Load()

	assert.Equal(t, ":3000", cfg.Addr)
}

func TestLoadGinMode(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")

	cfg := Load()

	assert.Equal(t, "debug", cfg.GinMode)
}
