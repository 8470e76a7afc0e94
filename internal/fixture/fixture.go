// Package fixture contains the data sets loaded into a fresh database
// to give development and test environments a known baseline.
package fixture

import (
	"context"

	"watchwise/internal/domain/repository"
)

// Fixture is one named data set.
type Fixture interface {
	// Name identifies the fixture in logs and load reports.
	Name() string

	// Order ranks fixtures; lower values load first, ties load by name.
	Order() int

	// Load queues the fixture's entities on uow and flushes them.
	Load(ctx context.Context, uow repository.UnitOfWork) error
}
