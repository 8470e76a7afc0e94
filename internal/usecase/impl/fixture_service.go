// Package impl contains the application-specific business rules implementations.
package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	"watchwise/internal/domain/repository"
	"watchwise/internal/errors"
	"watchwise/internal/fixture"
	"watchwise/internal/usecase"

	"go.uber.org/fx"
)

// FixtureServiceParams collects the fixtures registered in the "fixtures" group.
type FixtureServiceParams struct {
	fx.In

	Fixtures   []fixture.Fixture `group:"fixtures"`
	UnitOfWork repository.UnitOfWork
	Schema     repository.SchemaManager
	Logger     *slog.Logger
}

// fixtureService implements the FixtureUsecase interface.
type fixtureService struct {
	fixtures []fixture.Fixture
	uow      repository.UnitOfWork
	schema   repository.SchemaManager
	logger   *slog.Logger
}

// NewFixtureService is the constructor for fixtureService.
func NewFixtureService(params FixtureServiceParams) usecase.FixtureUsecase {
	return &fixtureService{
		fixtures: sortFixtures(params.Fixtures),
		uow:      params.UnitOfWork,
		schema:   params.Schema,
		logger:   params.Logger,
	}
}

// LoadFixtures migrates and purges as requested, then loads fixtures one by one.
// The first failing fixture stops the run.
func (srv *fixtureService) LoadFixtures(ctx context.Context, input usecase.LoadFixturesInput) (*usecase.LoadFixturesOutput, error) {
	start := time.Now()

	if input.Migrate {
		srv.logger.InfoContext(ctx, "Migrating schema")
		if err := srv.schema.Migrate(ctx); err != nil {
			return nil, errors.Wrap(err, "migrate schema")
		}
	}

	if !input.Append {
		srv.logger.InfoContext(ctx, "Purging database")
		if err := srv.schema.Purge(ctx); err != nil {
			return nil, errors.Wrap(err, "purge database")
		}
	}

	loaded := make([]string, 0, len(srv.fixtures))
	for _, f := range srv.fixtures {
		name := f.Name()
		srv.logger.InfoContext(ctx, "Loading fixture", slog.String("fixture", name))

		if err := f.Load(ctx, srv.uow); err != nil {
			return nil, errors.Wrapf(err, "load fixture %q", name)
		}

		loaded = append(loaded, name)
	}

	output := &usecase.LoadFixturesOutput{
		Loaded:  loaded,
		Elapsed: time.Since(start),
	}
	srv.logger.InfoContext(ctx, "Fixtures loaded",
		slog.Any("fixtures", output.Loaded),
		slog.Duration("elapsed", output.Elapsed),
	)

	return output, nil
}

// sortFixtures orders by Order() then Name() without touching the caller's slice.
func sortFixtures(fixtures []fixture.Fixture) []fixture.Fixture {
	sorted := slices.Clone(fixtures)
	slices.SortStableFunc(sorted, func(a, b fixture.Fixture) int {
		return cmp.Or(
			cmp.Compare(a.Order(), b.Order()),
			cmp.Compare(a.Name(), b.Name()),
		)
	})

	return sorted
}
