package fixture

import (
	"context"
	"fmt"
	"io"
	"os"

	"watchwise/internal/domain/entity"
	"watchwise/internal/domain/repository"
	"watchwise/internal/domain/service"

	"go.uber.org/fx"
)

const (
	howManyUsers    = 10
	creationMessage = "Creating"
	fixturePassword = "password"
)

// UserFixtureParams defines the dependencies of UserFixture.
type UserFixtureParams struct {
	fx.In

	Hasher service.PasswordHasher
	Emails service.EmailGenerator

	// Output receives the progress line; defaults to stdout.
	Output io.Writer `optional:"true"`
}

// UserFixture creates ten users with fake emails that all share the password "password".
type UserFixture struct {
	hasher service.PasswordHasher
	emails service.EmailGenerator
	out    io.Writer
}

// NewUserFixture is the constructor for UserFixture.
func NewUserFixture(params UserFixtureParams) Fixture {
	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	return &UserFixture{
		hasher: params.Hasher,
		emails: params.Emails,
		out:    out,
	}
}

func (f *UserFixture) Name() string {
	return "users"
}

func (f *UserFixture) Order() int {
	return 0
}

// Load queues every user before a single flush. Errors are returned as-is;
// a hashing failure aborts before anything is printed or flushed.
func (f *UserFixture) Load(ctx context.Context, uow repository.UnitOfWork) error {
	for range howManyUsers {
		user := &entity.User{}
		user.Email = f.emails.Email()

		password, err := f.hasher.Hash(user, fixturePassword)
		if err != nil {
			return err
		}
		user.Password = password

		uow.Persist(user)
	}

	fmt.Fprintf(f.out, "%s %d users\n", creationMessage, howManyUsers)

	return uow.Flush(ctx)
}
