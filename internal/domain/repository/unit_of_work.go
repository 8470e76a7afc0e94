package repository

import (
	"context"

	"watchwise/internal/domain/entity"
)

// UnitOfWork tracks new entities in memory and writes them in one batch.
// Implementations are not safe for concurrent use.
type UnitOfWork interface {
	// Persist queues the user for insertion. No I/O happens until Flush.
	Persist(user *entity.User)

	// Flush commits every queued entity atomically. A successful flush clears
	// the queue; a failed flush commits nothing and leaves the queue intact.
	Flush(ctx context.Context) error
}

// SchemaManager owns the lifecycle of the tables the fixtures write to.
type SchemaManager interface {
	// Migrate creates or upgrades the schema.
	Migrate(ctx context.Context) error

	// Purge permanently deletes all fixture-managed rows.
	Purge(ctx context.Context) error
}
