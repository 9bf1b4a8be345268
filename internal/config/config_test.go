package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "logging:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, int64(5000), cfg.Probe.ConnectTimeoutMs)
	assert.Equal(t, int64(5000), cfg.Probe.CallTimeoutMs)
	assert.Equal(t, uint(2), cfg.Probe.MaxRetries)
	assert.Equal(t, 16, cfg.Probe.MaxConcurrent)
	assert.Equal(t, 5, cfg.Cache.TTLMinutes)
	assert.Equal(t, 10, cfg.Cache.CleanupIntervalMinutes)
	assert.Equal(t, "https://chainid.network/chains.json", cfg.Chainlist.URL)
	assert.False(t, cfg.Health.WarmOnStart)
}

func TestLoadKeepsExplicitValues(t *testing.T) {
	overlays := t.TempDir()
	cfg, err := Load(writeConfig(t, `
server:
  port: ":9090"
registry:
  overlayDir: `+overlays+`
probe:
  maxRetries: 5
  rateLimitPerSecond: 1.5
  maxConcurrent: 4
cache:
  ttlMinutes: 1
health:
  warmOnStart: true
`))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, overlays, cfg.Registry.OverlayDir)
	assert.Equal(t, uint(5), cfg.Probe.MaxRetries)
	assert.InDelta(t, 1.5, cfg.Probe.RateLimitPerSecond, 1e-9)
	assert.Equal(t, 4, cfg.Probe.MaxConcurrent)
	assert.Equal(t, 1, cfg.Cache.TTLMinutes)
	assert.True(t, cfg.Health.WarmOnStart)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "server: [unclosed"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "registry:\n  overlayDir: /definitely/not/here\n"))
	assert.ErrorContains(t, err, "registry.overlayDir")

	_, err = Load(writeConfig(t, "registry:\n  disableBuiltins: true\n"))
	assert.ErrorContains(t, err, "disableBuiltins")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 2, cfg.Probe.Burst)
}
