// Package storage arma el kv.Store según la configuración.
package storage

import (
	"context"
	"fmt"

	"pet-adoption/internal/adapters/storage/memory"
	pg "pet-adoption/internal/adapters/storage/postgres"
	"pet-adoption/internal/adapters/storage/remote"
	s3store "pet-adoption/internal/adapters/storage/s3"
	"pet-adoption/internal/adapters/storage/sqlite"
	"pet-adoption/internal/config"
	"pet-adoption/internal/platform/httpclient"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/kv"
)

// Backend es el store abierto más su función de cierre (no-op si no hay nada que cerrar).
type Backend struct {
	Store  kv.Store
	Driver string
	Close  func() error
}

func noClose() error { return nil }

// Open abre el backend elegido en cfg.Driver. Para sqlite/postgres también corre migraciones.
func Open(ctx context.Context, cfg config.StorageConfig, log logger.Logger) (Backend, error) {
	if log == nil {
		log = logger.Nop()
	}
	fields := map[string]any{"driver": cfg.Driver}

	switch cfg.Driver {
	case config.DriverMemory, "":
		log.Warn("using in-memory storage, data is lost on restart", fields)
		return Backend{Store: memory.NewKVStore(), Driver: config.DriverMemory, Close: noClose}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return Backend{}, fmt.Errorf("open sqlite storage: %w", err)
		}
		fields["path"] = cfg.SQLitePath
		log.Info("storage ready", fields)
		return Backend{Store: sqlite.NewKVStore(db), Driver: cfg.Driver, Close: db.Close}, nil

	case config.DriverPostgres:
		db, err := pg.Open(cfg.DSN)
		if err != nil {
			return Backend{}, fmt.Errorf("open postgres storage: %w", err)
		}
		if err := pg.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return Backend{}, fmt.Errorf("migrate postgres storage: %w", err)
		}
		log.Info("storage ready", fields)
		return Backend{Store: pg.NewKVStore(db), Driver: cfg.Driver, Close: db.Close}, nil

	case config.DriverRemote:
		headers := map[string]string{}
		if cfg.Remote.APIKey != "" {
			headers["X-Api-Key"] = cfg.Remote.APIKey
		}
		client, err := httpclient.New(httpclient.Options{
			BaseURL: cfg.Remote.URL,
			Timeout: cfg.Remote.Timeout,
			Headers: headers,
		})
		if err != nil {
			return Backend{}, fmt.Errorf("remote storage client: %w", err)
		}
		fields["url"] = cfg.Remote.URL
		log.Info("storage ready", fields)
		return Backend{Store: remote.NewKVStore(client), Driver: cfg.Driver, Close: noClose}, nil

	case config.DriverS3:
		store, err := s3store.New(ctx, s3Config(cfg.S3))
		if err != nil {
			return Backend{}, fmt.Errorf("open s3 storage: %w", err)
		}
		fields["bucket"] = cfg.S3.Bucket
		log.Info("storage ready", fields)
		return Backend{Store: store, Driver: cfg.Driver, Close: noClose}, nil
	}

	return Backend{}, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

func s3Config(c config.S3Config) s3store.Config {
	return s3store.Config{
		Bucket:          c.Bucket,
		Region:          c.Region,
		Endpoint:        c.Endpoint,
		Prefix:          c.Prefix,
		AccessKeyID:     c.AccessKeyID,
		SecretAccessKey: c.SecretAccessKey,
		PathStyle:       c.PathStyle,
	}
}
