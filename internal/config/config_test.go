package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoad_ProductionDefaults(t *testing.T) {
	t.Setenv("FENIX_MODE", "")
	t.Setenv("FENIX_TOKEN_FILE", "/tmp/fenix-token.json")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, ModeProduction, cfg.Mode)
	assert.Equal(t, "https://fenix-pbad.onrender.com/api", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.IsDevelopment())
}

func TestConfigLoad_DevelopmentUsesProxy(t *testing.T) {
	t.Setenv("FENIX_MODE", "development")
	t.Setenv("FENIX_DEV_ORIGIN", "http://localhost:9000/")
	t.Setenv("FENIX_TOKEN_FILE", "/tmp/fenix-token.json")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/api", cfg.BaseURL)
	assert.True(t, cfg.IsDevelopment())

	cc := cfg.ClientConfig()
	assert.Equal(t, cfg.BaseURL, cc.BaseURL)
	assert.Equal(t, cfg.Timeout, cc.Timeout)
}

func TestConfigLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FENIX_MODE", "PRODUCTION")
	t.Setenv("FENIX_PROD_URL", "https://api.example.com/api/")
	t.Setenv("FENIX_TIMEOUT", "5s")
	t.Setenv("FENIX_DEBUG", "true")
	t.Setenv("FENIX_TOKEN_FILE", "/tmp/fenix-token.json")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/api", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/fenix-token.json", cfg.TokenFile)
}

func TestResolveDefaults_Rejects(t *testing.T) {
	bad := &Config{Mode: "staging", Timeout: time.Second}
	assert.Error(t, bad.ResolveDefaults())

	zero := &Config{Mode: ModeProduction, ProdURL: "https://x"}
	assert.Error(t, zero.ResolveDefaults())
}

func TestResolveDefaults_TokenFileUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg := &Config{Mode: ModeProduction, ProdURL: "https://x", Timeout: time.Second}
	require.NoError(t, cfg.ResolveDefaults())
	assert.Equal(t, filepath.Join(home, ".fenix", "token.json"), cfg.TokenFile)
}

func TestConfigLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("FENIX_TIMEOUT", "soon")
	_, err := New()
	assert.Error(t, err)
}
