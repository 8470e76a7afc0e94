// Package orm implements the domain persistence contracts on top of GORM.
// It is dialect-agnostic; connections come from the postgres and sqlite packages.
package orm

import (
	"context"
	"fmt"

	domainerrors "watchwise/internal/domain/errors"
	"watchwise/internal/domain/repository"
	"watchwise/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction is also a *gorm.DB
}

// NewUserRepository creates a new user repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(domainerrors.ErrTransactionFailed.WrapMessage(tx.Error.Error()), "begin")
	}

	// Roll back on panic, then let it continue unwinding.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	err := fn(&gormRepositoryFactory{tx: tx})
	if err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Keep the original error as the cause; the rollback failure is context.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(domainerrors.ErrTransactionFailed.WrapMessage(err.Error()), "commit")
	}

	return nil
}
