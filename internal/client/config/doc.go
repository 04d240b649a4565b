// Package config loads runtime configuration for the wellkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
// Every key is optional. Intervals use timex.Duration, so they can be
// strings like "20s" or integer nanoseconds:
//
//	{
//	  "storage_driver": "s3",
//	  "s3_bucket": "wellkeeper",
//	  "s3_base_endpoint": "http://127.0.0.1:9000",
//	  "s3_access_key": "minioadmin",
//	  "s3_secret_key": "minioadmin",
//	  "reflection_endpoint": "https://api.deepseek.com/v1",
//	  "reflection_model": "deepseek-chat",
//	  "reflection_timeout": "20s",
//	  "log_level": "debug"
//	}
//
// The package does not read environment variables directly.
package config
