package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("test", flag.ContinueOnError)
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CONFIG", "SERVER_ADDRESS", "DATABASE_DSN", "LOG_LEVEL", "RETENTION", "CLEANUP_INTERVAL"} {
		t.Setenv(k, "")
	}
}

func TestParseArgs_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	opts, err := ParseArgs(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", opts.Port)
	assert.Empty(t, opts.DatabaseDSN)
	assert.Equal(t, "info", opts.LogLevel)
	assert.Equal(t, 30*24*time.Hour, opts.Retention.Duration)
	assert.Equal(t, time.Hour, opts.CleanupInterval.Duration)
}

func TestParseArgs_Flags(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	opts, err := ParseArgs(newFlagSet(), []string{"-a", ":9090", "-d", "postgres://x", "-l", "debug", "-retention", "2h"})
	require.NoError(t, err)
	assert.Equal(t, ":9090", opts.Port)
	assert.Equal(t, "postgres://x", opts.DatabaseDSN)
	assert.Equal(t, "debug", opts.LogLevel)
	assert.Equal(t, 2*time.Hour, opts.Retention.Duration)
}

func TestParseArgs_ConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"address": ":7000",
		"database_dsn": "postgres://file",
		"retention": "48h",
		"cleanup_interval": "10m"
	}`), 0o600))

	opts, err := ParseArgs(newFlagSet(), []string{"-c", path, "-a", ":7001"})
	require.NoError(t, err)
	assert.Equal(t, ":7001", opts.Port, "explicit flag wins over file")
	assert.Equal(t, "postgres://file", opts.DatabaseDSN)
	assert.Equal(t, "info", opts.LogLevel, "missing key keeps default")
	assert.Equal(t, 48*time.Hour, opts.Retention.Duration)
	assert.Equal(t, 10*time.Minute, opts.CleanupInterval.Duration)
}

func TestParseArgs_BadConfigFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"retention": "forever"}`), 0o600))

	_, err := ParseArgs(newFlagSet(), []string{"-config", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error while parsing config file")
}

func TestParseArgs_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_ADDRESS", ":6000")
	t.Setenv("DATABASE_DSN", "postgres://env")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("RETENTION", "1h")
	t.Setenv("CLEANUP_INTERVAL", "5m")

	opts, err := ParseArgs(newFlagSet(), []string{"-a", ":5000", "-cleanup", "30m"})
	require.NoError(t, err)
	assert.Equal(t, ":6000", opts.Port)
	assert.Equal(t, "postgres://env", opts.DatabaseDSN)
	assert.Equal(t, "warn", opts.LogLevel)
	assert.Equal(t, time.Hour, opts.Retention.Duration)
	assert.Equal(t, 5*time.Minute, opts.CleanupInterval.Duration)
}

func TestParseArgs_InvalidCleanupInterval(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	t.Setenv("CLEANUP_INTERVAL", "often")
	_, err := ParseArgs(newFlagSet(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid CLEANUP_INTERVAL")

	t.Setenv("CLEANUP_INTERVAL", "0s")
	_, err = ParseArgs(newFlagSet(), nil)
	assert.Error(t, err)
}

func TestParseArgs_InvalidRetention(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("RETENTION", "soon")

	_, err := ParseArgs(newFlagSet(), nil)
	assert.Error(t, err)

	t.Setenv("RETENTION", "-1h")
	_, err = ParseArgs(newFlagSet(), nil)
	assert.Error(t, err)
}

func TestDuration_JSON(t *testing.T) {
	b, err := Duration{90 * time.Minute}.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1h30m0s"`, string(b))

	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"15s"`)))
	assert.Equal(t, 15*time.Second, d.Duration)
	assert.Error(t, d.UnmarshalJSON([]byte(`15`)))
}
