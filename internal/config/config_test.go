package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// clearEnv blanks every variable Config reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"WORDWISE_DB", "WORDWISE_CATALOG", "WORDWISE_LOG_FILE",
		"WORDWISE_LOG_LEVEL", "WORDWISE_MAX_GROUPS", "WORDWISE_SKIP_DB",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.MaxGroups)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
	assert.Empty(t, cfg.DBPath)
	assert.Empty(t, cfg.LogFile)
	assert.False(t, cfg.SkipDB)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORDWISE_DB", "/tmp/w.db")
	t.Setenv("WORDWISE_CATALOG", "/tmp/cat.yaml")
	t.Setenv("WORDWISE_LOG_FILE", "/tmp/w.log")
	t.Setenv("WORDWISE_LOG_LEVEL", "debug")
	t.Setenv("WORDWISE_MAX_GROUPS", "6")
	t.Setenv("WORDWISE_SKIP_DB", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, Config{
		DBPath:      "/tmp/w.db",
		CatalogPath: "/tmp/cat.yaml",
		LogFile:     "/tmp/w.log",
		LogLevel:    zapcore.DebugLevel,
		MaxGroups:   6,
		SkipDB:      true,
	}, cfg)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WORDWISE_MAX_GROUPS=2\nWORDWISE_LOG_LEVEL=warn\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("WORDWISE_MAX_GROUPS")
		os.Unsetenv("WORDWISE_LOG_LEVEL")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.MaxGroups)
	assert.Equal(t, zapcore.WarnLevel, cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"non-numeric max groups", "WORDWISE_MAX_GROUPS", "lots"},
		{"zero max groups", "WORDWISE_MAX_GROUPS", "0"},
		{"bad level", "WORDWISE_LOG_LEVEL", "loud"},
		{"bad bool", "WORDWISE_SKIP_DB", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	err := Config{MaxGroups: 0}.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.NoError(t, Config{MaxGroups: 1}.Validate())
}
