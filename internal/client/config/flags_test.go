package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		expected  *Config
		expectErr bool
	}{
		{
			name: "all flags",
			args: []string{"-d", "s3", "-f", "/tmp/x.db", "-p", "dsn", "-b", "bucket", "-r", "http://llm", "-m", "m1", "-k", "key", "-t", "3", "-l", "debug"},
			expected: &Config{
				StorageDriver:      "s3",
				SQLitePath:         "/tmp/x.db",
				PostgresDSN:        "dsn",
				S3Bucket:           "bucket",
				ReflectionEndpoint: "http://llm",
				ReflectionModel:    "m1",
				ReflectionAPIKey:   "key",
				ReflectionTimeout:  3 * time.Second,
				LogLevel:           "debug",
			},
		},
		{
			name:     "foreign flags are ignored",
			args:     []string{"-config", "x.json", "-z", "1", "-d=memory"},
			expected: &Config{StorageDriver: "memory"},
		},
		{
			name:      "bad timeout",
			args:      []string{"-t", "abc"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := parseFlags(cfg, tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}
