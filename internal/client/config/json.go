package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/wellkeeper/internal/flagx"
	"github.com/dmitrijs2005/wellkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "empty" so a partial file only
// overrides what it names.
type JsonConfig struct {
	StorageDriver *string `json:"storage_driver"`
	SQLitePath    *string `json:"sqlite_path"`
	PostgresDSN   *string `json:"postgres_dsn"`

	S3Bucket       *string `json:"s3_bucket"`
	S3Region       *string `json:"s3_region"`
	S3BaseEndpoint *string `json:"s3_base_endpoint"`
	S3AccessKey    *string `json:"s3_access_key"`
	S3SecretKey    *string `json:"s3_secret_key"`
	S3Prefix       *string `json:"s3_prefix"`

	ReflectionEndpoint *string         `json:"reflection_endpoint"`
	ReflectionModel    *string         `json:"reflection_model"`
	ReflectionAPIKey   *string         `json:"reflection_api_key"`
	ReflectionTimeout  *timex.Duration `json:"reflection_timeout"`

	LogLevel *string `json:"log_level"`
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// parseJson overlays cfg with values from the JSON file named by -c or
// -config in args. Without either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setIf(&cfg.StorageDriver, jc.StorageDriver)
	setIf(&cfg.SQLitePath, jc.SQLitePath)
	setIf(&cfg.PostgresDSN, jc.PostgresDSN)
	setIf(&cfg.S3Bucket, jc.S3Bucket)
	setIf(&cfg.S3Region, jc.S3Region)
	setIf(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setIf(&cfg.S3AccessKey, jc.S3AccessKey)
	setIf(&cfg.S3SecretKey, jc.S3SecretKey)
	setIf(&cfg.S3Prefix, jc.S3Prefix)
	setIf(&cfg.ReflectionEndpoint, jc.ReflectionEndpoint)
	setIf(&cfg.ReflectionModel, jc.ReflectionModel)
	setIf(&cfg.ReflectionAPIKey, jc.ReflectionAPIKey)
	setIf(&cfg.LogLevel, jc.LogLevel)
	if jc.ReflectionTimeout != nil {
		cfg.ReflectionTimeout = jc.ReflectionTimeout.Duration
	}
	return nil
}
