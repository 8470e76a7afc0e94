// Package postgres opens the production GORM connection to PostgreSQL.
package postgres

import (
	"log/slog"

	"watchwise/config"
	"watchwise/internal/domain/lifecycle"
	"watchwise/internal/errors"
	"watchwise/internal/infra/persistence/orm"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client and ties its pool to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Flushes use explicit transactions via the transaction manager.
		SkipDefaultTransaction: true,
		Logger:                 orm.NewSlogLogger(params.Logger, orm.SlogLoggerOptions{
			Driver:        config.DriverPostgres,
			Debug:         params.Config.Env.Debug,
			SlowThreshold: params.Config.Database.SlowThreshold,
		}),
	})

	if err := orm.BindLifecycle(params.Lifecycle, db, params.Logger, config.DriverPostgres, lifecycle.DefaultTimeout); err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return db, nil
}
