// Package store opens the configured backend and returns repositories on it.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"foodadmin/internal/config"
	"foodadmin/internal/db"
	"foodadmin/internal/repository"
	"foodadmin/internal/repository/mongorepo"
)

// Open connects to the backend named by cfg.StoreDriver and prepares its
// schema. The returned close function releases the connection.
func Open(ctx context.Context, cfg *config.Config) (*repository.Repositories, func() error, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, database, err := db.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() error { return client.Disconnect(context.Background()) }
		if cfg.ResetDB {
			slog.Warn("RESET_DB set, dropping database", "database", cfg.MongoDB)
			if err := database.Drop(ctx); err != nil {
				_ = closeFn()
				return nil, nil, fmt.Errorf("drop database: %w", err)
			}
		}
		if err := mongorepo.EnsureIndexes(ctx, database); err != nil {
			_ = closeFn()
			return nil, nil, err
		}
		slog.Info("store ready", "driver", cfg.StoreDriver, "database", cfg.MongoDB)
		return mongorepo.NewRepositories(database), closeFn, nil

	case config.DriverMySQL, config.DriverSQLite:
		var (
			gormDB *gorm.DB
			err    error
		)
		if cfg.StoreDriver == config.DriverMySQL {
			gormDB, err = db.NewMySQL(cfg.MySQLDSN)
		} else {
			gormDB, err = db.NewSQLite(cfg.SQLitePath)
		}
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() error {
			sqlDB, err := gormDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		if cfg.ResetDB {
			slog.Warn("RESET_DB set, dropping all tables")
			if err := db.Reset(gormDB); err != nil {
				_ = closeFn()
				return nil, nil, err
			}
		}
		if err := db.Migrate(gormDB); err != nil {
			_ = closeFn()
			return nil, nil, err
		}
		slog.Info("store ready", "driver", cfg.StoreDriver)
		return repository.NewGormRepositories(gormDB), closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}
