package orm

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"watchwise/internal/errors"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// BindLifecycle pings the pool on start and closes it on stop.
// name labels log lines, e.g. "postgres".
func BindLifecycle(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger, name string, timeout time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, timeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", name)
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logPoolStats(ctx, logger, name, sqlDB.Stats())

			return sqlDB.Close()
		},
	})

	return nil
}

func logPoolStats(ctx context.Context, logger *slog.Logger, name string, stats sql.DBStats) {
	if logger == nil {
		return
	}

	attrs := []slog.Attr{
		slog.String("driver", name),
		slog.Int("maxOpenConns", stats.MaxOpenConnections),
		slog.Int("openConns", stats.OpenConnections),
		slog.Int("inUseConns", stats.InUse),
		slog.Int("idleConns", stats.Idle),
		slog.Int64("waitCountTotal", stats.WaitCount),
		slog.Duration("waitDurationTotal", stats.WaitDuration),
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "Database pool closing", attrs...)
}
