package orm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"watchwise/internal/domain/entity"
	domainerrors "watchwise/internal/domain/errors"
	"watchwise/internal/domain/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// gormUnitOfWork buffers new users and inserts them in one transaction on Flush.
type gormUnitOfWork struct {
	txManager repository.TransactionManager
	validate  *validator.Validate
	logger    *slog.Logger

	pending []*entity.User
	tracked map[*entity.User]struct{}
}

// NewUnitOfWork is the constructor for gormUnitOfWork.
func NewUnitOfWork(txManager repository.TransactionManager, logger *slog.Logger) repository.UnitOfWork {
	return &gormUnitOfWork{
		txManager: txManager,
		validate:  validator.New(),
		logger:    logger,
		tracked:   make(map[*entity.User]struct{}),
	}
}

// Persist queues the user. Persisting the same pointer twice is a no-op.
func (u *gormUnitOfWork) Persist(user *entity.User) {
	if user == nil {
		return
	}
	if _, ok := u.tracked[user]; ok {
		return
	}

	u.tracked[user] = struct{}{}
	u.pending = append(u.pending, user)
}

// Flush validates and inserts every queued user inside a single transaction.
func (u *gormUnitOfWork) Flush(ctx context.Context) error {
	if len(u.pending) == 0 {
		return nil
	}

	if err := u.validatePending(); err != nil {
		return err
	}

	pending := u.pending
	snapshot := snapshotGenerated(pending)
	start := time.Now()

	err := u.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewUserRepository().CreateBatch(ctx, pending)
	})
	if err != nil {
		// Nothing was committed, so generated fields must not leak out.
		restoreGenerated(pending, snapshot)

		return err
	}

	if u.logger != nil {
		u.logger.DebugContext(ctx, "Unit of work flushed",
			slog.Int("users", len(pending)),
			slog.Duration("elapsed", time.Since(start)),
		)
	}

	u.pending = nil
	u.tracked = make(map[*entity.User]struct{})

	return nil
}

func (u *gormUnitOfWork) validatePending() error {
	for i, user := range u.pending {
		if err := u.validate.Struct(fromUserDomain(user)); err != nil {
			return domainerrors.ErrInvalidUser.WrapMessage(fmt.Sprintf("pending user %d (%s): %v", i, user.Email, err))
		}
	}

	return nil
}

type generatedFields struct {
	id        uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func snapshotGenerated(users []*entity.User) []generatedFields {
	snapshot := make([]generatedFields, len(users))
	for i, user := range users {
		snapshot[i] = generatedFields{id: user.ID, createdAt: user.CreatedAt, updatedAt: user.UpdatedAt}
	}

	return snapshot
}

func restoreGenerated(users []*entity.User, snapshot []generatedFields) {
	for i, user := range users {
		user.ID = snapshot[i].id
		user.CreatedAt = snapshot[i].createdAt
		user.UpdatedAt = snapshot[i].updatedAt
	}
}
