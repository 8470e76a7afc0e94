// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// LoadFixturesInput controls a fixture run.
type LoadFixturesInput struct {
	// Append keeps existing rows; otherwise fixture tables are purged first.
	Append bool

	// Migrate creates or upgrades the schema before anything else.
	Migrate bool
}

// --- Output DTOs ---

// LoadFixturesOutput reports what was loaded.
type LoadFixturesOutput struct {
	Loaded  []string // Fixture names in load order.
	Elapsed time.Duration
}

// FixtureUsecase loads every registered fixture into the database.
type FixtureUsecase interface {
	LoadFixtures(ctx context.Context, input LoadFixturesInput) (*LoadFixturesOutput, error)
}
