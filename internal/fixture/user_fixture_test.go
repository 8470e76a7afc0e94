package fixture

import (
	"bytes"
	"context"
	"testing"

	"watchwise/internal/domain/entity"
	"watchwise/internal/infra/auth"
	"watchwise/internal/infra/faker"
	mockRepo "watchwise/internal/mocks/repository"
	mockSvc "watchwise/internal/mocks/service"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserFixture_Metadata(t *testing.T) {
	f := NewUserFixture(UserFixtureParams{})

	assert.Equal(t, "users", f.Name())
	assert.Equal(t, 0, f.Order())
}

func TestUserFixture_Load_PersistsTenHashedUsersThenFlushesOnce(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	uow := mockRepo.NewMockUnitOfWork(t)
	var out bytes.Buffer

	var persisted []*entity.User
	uow.EXPECT().Persist(mock.AnythingOfType("*entity.User")).
		Run(func(user *entity.User) {
			persisted = append(persisted, user)
		}).
		Times(howManyUsers)
	uow.EXPECT().Flush(ctx).
		Run(func(context.Context) {
			// Flush must come strictly after every registration and after the progress line.
			assert.Len(t, persisted, howManyUsers)
			assert.Equal(t, "Creating 10 users\n", out.String())
		}).
		Return(nil).
		Once()

	f := NewUserFixture(UserFixtureParams{
		Hasher: hasher,
		Emails: faker.NewEmailGeneratorWithSeed(0),
		Output: &out,
	})

	require.NoError(t, f.Load(ctx, uow))

	validate := validator.New()
	require.Len(t, persisted, howManyUsers)
	for _, user := range persisted {
		assert.NoError(t, validate.Var(user.Email, "required,email"), "invalid email %q", user.Email)
		assert.NotEqual(t, fixturePassword, user.Password)
		assert.True(t, hasher.Check(user, fixturePassword))
	}
}

func TestUserFixture_Load_HashesTheUnpersistedSubject(t *testing.T) {
	ctx := context.Background()
	hasher := mockSvc.NewMockPasswordHasher(t)
	emails := mockSvc.NewMockEmailGenerator(t)
	uow := mockRepo.NewMockUnitOfWork(t)

	emails.EXPECT().Email().Return("jane@example.com").Times(howManyUsers)
	hasher.EXPECT().
		Hash(mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "jane@example.com" && !user.IsPersisted() && user.Password == ""
		}), "password").
		Return("$2a$04$hashed", nil).
		Times(howManyUsers)
	uow.EXPECT().Persist(mock.MatchedBy(func(user *entity.User) bool {
		return user.Password == "$2a$04$hashed"
	})).Times(howManyUsers)
	uow.EXPECT().Flush(ctx).Return(nil).Once()

	f := NewUserFixture(UserFixtureParams{Hasher: hasher, Emails: emails, Output: &bytes.Buffer{}})

	require.NoError(t, f.Load(ctx, uow))
}

func TestUserFixture_Load_HashFailureStopsBeforeFlush(t *testing.T) {
	ctx := context.Background()
	hasher := mockSvc.NewMockPasswordHasher(t)
	emails := mockSvc.NewMockEmailGenerator(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	var out bytes.Buffer
	hashErr := errors.New("hasher unavailable")

	calls := 0
	emails.EXPECT().Email().Return("jane@example.com").Times(3)
	hasher.EXPECT().Hash(mock.Anything, "password").
		RunAndReturn(func(*entity.User, string) (string, error) {
			calls++
			if calls == 3 {
				return "", hashErr
			}

			return "hashed", nil
		}).
		Times(3)
	uow.EXPECT().Persist(mock.Anything).Times(2)

	f := NewUserFixture(UserFixtureParams{Hasher: hasher, Emails: emails, Output: &out})

	err := f.Load(ctx, uow)
	require.Error(t, err)
	assert.Same(t, hashErr, err)
	assert.Empty(t, out.String())
	uow.AssertNotCalled(t, "Flush", mock.Anything)
}

func TestUserFixture_Load_FlushErrorIsReturnedUnchanged(t *testing.T) {
	ctx := context.Background()
	uow := mockRepo.NewMockUnitOfWork(t)
	flushErr := errors.New("duplicate key value violates unique constraint")

	uow.EXPECT().Persist(mock.Anything).Times(howManyUsers)
	uow.EXPECT().Flush(ctx).Return(flushErr).Once()

	var out bytes.Buffer
	f := NewUserFixture(UserFixtureParams{
		Hasher: auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Emails: faker.NewEmailGeneratorWithSeed(1),
		Output: &out,
	})

	err := f.Load(ctx, uow)
	assert.Same(t, flushErr, err)
	assert.Equal(t, "Creating 10 users\n", out.String())
}
