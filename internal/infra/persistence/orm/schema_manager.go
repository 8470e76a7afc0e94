package orm

import (
	"context"
	"log/slog"

	domainerrors "watchwise/internal/domain/errors"
	"watchwise/internal/domain/repository"
	"watchwise/internal/errors"
	"watchwise/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// fixtureModels lists the tables the seeder migrates and purges.
var fixtureModels = []any{
	&model.UserModel{},
}

type gormSchemaManager struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewSchemaManager is the constructor for gormSchemaManager.
func NewSchemaManager(db *gorm.DB, logger *slog.Logger) repository.SchemaManager {
	return &gormSchemaManager{db: db, logger: logger}
}

// Migrate runs GORM AutoMigrate for every fixture model.
func (m *gormSchemaManager) Migrate(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(fixtureModels...); err != nil {
		return errors.WithMessage(domainerrors.ErrSchemaMigrationFailed.WrapMessage("auto migrate"), err.Error())
	}

	m.logger.InfoContext(ctx, "Schema migrated", slog.Int("models", len(fixtureModels)))

	return nil
}

// Purge deletes all fixture rows in one transaction.
func (m *gormSchemaManager) Purge(ctx context.Context) error {
	err := NewTransactionManager(m.db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewUserRepository().DeleteAll(ctx)
	})
	if err != nil {
		return errors.Wrap(err, "purge fixtures")
	}

	m.logger.InfoContext(ctx, "Purged existing fixture data")

	return nil
}
