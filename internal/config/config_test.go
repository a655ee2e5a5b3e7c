package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("HUB_BUFFER_SIZE", "")

	cfg := New()
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, DefaultHubBufferSize, cfg.HubBufferSize)
}

func TestNew_ReadsEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":8080")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("HUB_BUFFER_SIZE", "64")

	cfg := New()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 64, cfg.HubBufferSize)
}

func TestNew_RejectsInvalidBufferSize(t *testing.T) {
	t.Setenv("HUB_BUFFER_SIZE", "not-a-number")

	cfg := New()
	assert.Equal(t, DefaultHubBufferSize, cfg.HubBufferSize)

	t.Setenv("HUB_BUFFER_SIZE", "0")
	cfg = New()
	assert.Equal(t, DefaultHubBufferSize, cfg.HubBufferSize)
}
