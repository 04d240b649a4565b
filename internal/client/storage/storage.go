// Package storage opens the key/value backend named by the configuration
// and prepares it for use: SQL backends are migrated, S3 gets a client
// built from static credentials.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/wellkeeper/internal/client/config"
	"github.com/dmitrijs2005/wellkeeper/internal/client/migrations"
	"github.com/dmitrijs2005/wellkeeper/internal/client/repositories/kv"
	"github.com/dmitrijs2005/wellkeeper/internal/common"
	"github.com/dmitrijs2005/wellkeeper/internal/dbx"
	"github.com/dmitrijs2005/wellkeeper/internal/filex"
	"github.com/dmitrijs2005/wellkeeper/internal/logging"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

var (
	sqlOpen = sql.Open

	runMigrations = migrations.Up

	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) kv.S3API {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// Store is an opened backend. Close releases the underlying connection,
// if the backend holds one.
type Store struct {
	KV     kv.Repository
	Driver string
	close  func() error
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open selects and initialises the backend for cfg.StorageDriver.
func Open(ctx context.Context, cfg *config.Config, log logging.Logger) (*Store, error) {
	log = log.With("driver", cfg.StorageDriver)

	switch cfg.StorageDriver {
	case config.DriverSQLite:
		if _, err := filex.EnsureParentDir(cfg.SQLitePath); err != nil {
			return nil, err
		}
		db, err := openSQL(ctx, "sqlite", cfg.SQLitePath, dbx.DialectSQLite)
		if err != nil {
			return nil, err
		}
		log.Debug(ctx, "storage opened", "path", cfg.SQLitePath)
		return &Store{KV: kv.NewSQLiteRepository(db), Driver: cfg.StorageDriver, close: db.Close}, nil

	case config.DriverPostgres:
		db, err := openSQL(ctx, "pgx", cfg.PostgresDSN, dbx.DialectPostgres)
		if err != nil {
			return nil, err
		}
		log.Debug(ctx, "storage opened")
		return &Store{KV: kv.NewPostgresRepository(db), Driver: cfg.StorageDriver, close: db.Close}, nil

	case config.DriverS3:
		client, err := newS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Debug(ctx, "storage opened", "bucket", cfg.S3Bucket, "prefix", cfg.S3Prefix)
		return &Store{KV: kv.NewS3Repository(client, cfg.S3Bucket, cfg.S3Prefix), Driver: cfg.StorageDriver}, nil

	case config.DriverMemory:
		log.Debug(ctx, "storage opened")
		return &Store{KV: kv.NewMemoryRepository(), Driver: cfg.StorageDriver}, nil

	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnknownDriver, cfg.StorageDriver)
	}
}

func openSQL(ctx context.Context, driver, dsn string, d dbx.Dialect) (*sql.DB, error) {
	db, err := sqlOpen(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if d == dbx.DialectSQLite {
		// one writer; also keeps ":memory:" on a single connection
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}
	if err := runMigrations(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func newS3Client(ctx context.Context, cfg *config.Config) (kv.S3API, error) {
	if cfg.S3Bucket == "" {
		return nil, errors.New("s3 storage needs a bucket")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.S3Region)}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	}), nil
}
