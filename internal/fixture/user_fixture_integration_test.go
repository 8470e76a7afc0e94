package fixture

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"watchwise/internal/infra/auth"
	"watchwise/internal/infra/faker"
	"watchwise/internal/infra/persistence/orm"
	"watchwise/internal/infra/persistence/sqlite"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserFixture_Load_WritesToDatabase(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()), nil)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, orm.NewSchemaManager(db, logger).Migrate(ctx))

	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost)
	uow := orm.NewUnitOfWork(orm.NewTransactionManager(db), logger)
	var out bytes.Buffer

	f := NewUserFixture(UserFixtureParams{
		Hasher: hasher,
		Emails: faker.NewEmailGeneratorWithSeed(2024),
		Output: &out,
	})
	require.NoError(t, f.Load(ctx, uow))

	users := orm.NewUserRepository(db)
	count, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, howManyUsers, count)
	assert.Equal(t, "Creating 10 users\n", out.String())
}
