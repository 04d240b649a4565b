package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/wellkeeper/internal/flagx"
)

var ownFlags = []string{"-d", "-f", "-p", "-b", "-r", "-m", "-k", "-t", "-l"}

// parseFlags populates selected Config fields from command-line flags.
//
//	-d string   storage driver: sqlite, postgres, s3 or memory
//	-f string   SQLite database file
//	-p string   PostgreSQL DSN
//	-b string   S3 bucket
//	-r string   reflection endpoint base URL
//	-m string   reflection model
//	-k string   reflection API key
//	-t int      reflection timeout in seconds
//	-l string   log level
//
// Args are filtered with flagx.FilterArgs first so flags owned by other
// stages (-c, -config) do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, ownFlags)

	fs := flag.NewFlagSet("wellkeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.StorageDriver, "d", cfg.StorageDriver, "storage driver (sqlite, postgres, s3, memory)")
	fs.StringVar(&cfg.SQLitePath, "f", cfg.SQLitePath, "sqlite database file")
	fs.StringVar(&cfg.PostgresDSN, "p", cfg.PostgresDSN, "postgres DSN")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "s3 bucket")
	fs.StringVar(&cfg.ReflectionEndpoint, "r", cfg.ReflectionEndpoint, "reflection endpoint base URL")
	fs.StringVar(&cfg.ReflectionModel, "m", cfg.ReflectionModel, "reflection model")
	fs.StringVar(&cfg.ReflectionAPIKey, "k", cfg.ReflectionAPIKey, "reflection API key")
	timeout := fs.Int("t", int(cfg.ReflectionTimeout.Seconds()), "reflection timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.ReflectionTimeout = time.Duration(*timeout) * time.Second
	return nil
}
