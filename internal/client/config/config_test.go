package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, DriverSQLite, c.StorageDriver)
	assert.Equal(t, "wellkeeper.db", filepath.Base(c.SQLitePath))
	assert.Equal(t, "us-east-1", c.S3Region)
	assert.Equal(t, "wellkeeper/", c.S3Prefix)
	assert.Equal(t, 20*time.Second, c.ReflectionTimeout)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoadConfig_NoArgsGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	assert.Equal(t, &want, cfg)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"storage_driver":     "postgres",
		"postgres_dsn":       "postgres://json",
		"reflection_timeout": "5s",
		"log_level":          "debug",
	})

	cfg, err := LoadConfig([]string{"-c", path, "-p", "postgres://flag", "-t", "7"})
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, "postgres://flag", cfg.PostgresDSN)
	assert.Equal(t, 7*time.Second, cfg.ReflectionTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}
