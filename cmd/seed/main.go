// Command seed loads the development fixtures (ten demo users) into the database.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"watchwise/config"
	"watchwise/internal/domain/lifecycle"
	"watchwise/internal/errors"
	"watchwise/internal/fixture"
	"watchwise/internal/infra/auth"
	"watchwise/internal/infra/faker"
	logs "watchwise/internal/infra/log"
	"watchwise/internal/infra/persistence/orm"
	"watchwise/internal/infra/persistence/postgres"
	"watchwise/internal/infra/persistence/sqlite"
	"watchwise/internal/usecase"
	"watchwise/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// seedFlags are command-line overrides for the seed section of the config.
type seedFlags struct {
	appendSet  bool
	append     bool
	migrateSet bool
	migrate    bool
}

func main() {
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (seedFlags, error) {
	var flags seedFlags

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.BoolVar(&flags.append, "append", false, "keep existing rows instead of purging them")
	fs.BoolVar(&flags.migrate, "migrate", false, "run schema migrations before loading")
	if err := fs.Parse(args); err != nil {
		return flags, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "append":
			flags.appendSet = true
		case "migrate":
			flags.migrateSet = true
		}
	})

	return flags, nil
}

func run(flags seedFlags) error {
	var (
		cfg      *config.Config
		logger   *slog.Logger
		fixtures usecase.FixtureUsecase
	)

	app := fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectFixtures(),
		injectUsecase(),
		fx.WithLogger(logs.NewFxLogger),
		fx.Populate(&cfg, &logger, &fixtures),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build application")
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start application")
	}

	_, loadErr := fixtures.LoadFixtures(context.Background(), loadInput(cfg, flags))
	if loadErr != nil {
		logger.Error("Failed to load fixtures", slog.Any("error", loadErr))
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		logger.Error("Failed to stop gracefully", slog.Any("error", err))
	}

	return loadErr
}

func loadInput(cfg *config.Config, flags seedFlags) usecase.LoadFixturesInput {
	input := usecase.LoadFixturesInput{
		Append:  cfg.Seed.Append,
		Migrate: cfg.Seed.Migrate,
	}
	if flags.appendSet {
		input.Append = flags.append
	}
	if flags.migrateSet {
		input.Migrate = flags.migrate
	}

	return input
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		newDatabase,
		func() io.Writer { return os.Stdout },
	)
}

// newDatabase opens the connection for the configured driver.
func newDatabase(pgParams postgres.Params, sqliteParams sqlite.Params) (*gorm.DB, error) {
	switch driver := pgParams.Config.Database.Driver; driver {
	case config.DriverPostgres:
		return postgres.New(pgParams)
	case config.DriverSQLite:
		return sqlite.New(sqliteParams)
	default:
		return nil, errors.Errorf("unsupported database driver %q", driver)
	}
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			orm.NewTransactionManager,
			orm.NewUnitOfWork,
			orm.NewSchemaManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			faker.NewEmailGenerator,
		),
	)
}

func injectFixtures() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				fixture.NewUserFixture,
				fx.ResultTags(`group:"fixtures"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewFixtureService,
		),
	)
}
