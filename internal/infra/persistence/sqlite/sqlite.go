// Package sqlite opens a GORM connection to a local SQLite database for development seeding.
package sqlite

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"watchwise/config"
	"watchwise/internal/domain/lifecycle"
	"watchwise/internal/errors"
	"watchwise/internal/infra/persistence/orm"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const memoryPath = ":memory:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the database at database.sqlite.path, creating parent directories as needed.
func New(params Params) (*gorm.DB, error) {
	path := params.Config.Database.SQLite.Path
	if path == "" {
		return nil, errors.New("database.sqlite.path is required for the sqlite driver")
	}

	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, errors.Wrapf(err, "create directory for %s", path)
		}
	}

	db, err := Open(path, orm.NewSlogLogger(params.Logger, orm.SlogLoggerOptions{
		Driver:        config.DriverSQLite,
		Debug:         params.Config.Env.Debug,
		SlowThreshold: params.Config.Database.SlowThreshold,
	}))
	if err != nil {
		return nil, err
	}

	if err := orm.BindLifecycle(params.Lifecycle, db, params.Logger, config.DriverSQLite, lifecycle.DefaultTimeout); err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	return db, nil
}

// Open connects to dsn with foreign keys enabled and a single connection.
// Driver errors are left untranslated so constraint names reach the caller.
// A nil gormLogger silences GORM.
func Open(dsn string, gormLogger logger.Interface) (*gorm.DB, error) {
	if gormLogger == nil {
		gormLogger = logger.Discard
	}

	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}

	db, err := gorm.Open(sqlite.Open(dsn+separator+"_foreign_keys=on"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormLogger,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite database %s", dsn)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	// SQLite allows one writer; a single connection also keeps :memory: databases shared.
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
