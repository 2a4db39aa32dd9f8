// Package persistence implements the domain repositories on gorm.
package persistence

import (
	"fmt"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/config"
	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/logger"
)

// Options tunes the database connection.
type Options struct {
	LogLevel      string
	EnableTracing bool
}

// Open connects to postgres with the zap-backed gorm logger and
// optional otel instrumentation.
func Open(cfg config.DatabaseConfig, zapLogger *zap.Logger, opts Options) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.NewGormLogger(zapLogger, logger.MapGormLogLevel(opts.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql db: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if opts.EnableTracing {
		if err := db.Use(otelgorm.NewPlugin()); err != nil {
			return nil, fmt.Errorf("install otel gorm plugin: %w", err)
		}
	}

	return db, nil
}

// applyLimits translates filter pagination onto a query.
func applyLimits(tx *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if offset > 0 {
		tx = tx.Offset(offset)
	}
	return tx
}
