package config

import (
	"os"
	"path/filepath"
	"time"
)

// Storage drivers accepted by Config.StorageDriver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
	DriverMemory   = "memory"
)

// Config holds runtime settings for the wellkeeper CLI.
//
// Storage fields are only read by the selected driver. Reflection fields
// configure the OpenAI-compatible endpoint used for AI reflections; an
// empty API key leaves the client to pick it up from OPENAI_API_KEY.
type Config struct {
	StorageDriver string
	SQLitePath    string
	PostgresDSN   string

	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
	S3Prefix       string

	ReflectionEndpoint string
	ReflectionModel    string
	ReflectionAPIKey   string
	ReflectionTimeout  time.Duration

	LogLevel string
}

// defaultSQLitePath places the database under the user config directory,
// falling back to the working directory.
func defaultSQLitePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "wellkeeper.db"
	}
	return filepath.Join(dir, "wellkeeper", "wellkeeper.db")
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageDriver = DriverSQLite
	c.SQLitePath = defaultSQLitePath()
	c.S3Region = "us-east-1"
	c.S3Prefix = "wellkeeper/"
	c.ReflectionModel = "gpt-4o-mini"
	c.ReflectionTimeout = 20 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones. args excludes the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
