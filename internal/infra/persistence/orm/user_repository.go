package orm

import (
	"context"

	"watchwise/internal/domain/entity"
	"watchwise/internal/domain/repository"
	"watchwise/internal/errors"
	"watchwise/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// createBatchSize caps the rows per INSERT so large fixtures stay under driver parameter limits.
const createBatchSize = 100

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		return translateWriteError(err, "failed to create user")
	}

	copyGenerated(user, userM)

	return nil
}

// CreateBatch inserts all users in batches of createBatchSize.
// Callers that need all-or-nothing semantics run it inside a transaction.
func (repo *userRepository) CreateBatch(ctx context.Context, users []*entity.User) error {
	if len(users) == 0 {
		return nil
	}

	models := make([]*model.UserModel, 0, len(users))
	for _, user := range users {
		models = append(models, fromUserDomain(user))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(models, createBatchSize).Error; err != nil {
		return translateWriteError(err, "failed to create users")
	}

	for i, user := range users {
		copyGenerated(user, models[i])
	}

	return nil
}

// Count returns the number of live users.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// DeleteAll hard-deletes every user, soft-deleted rows included.
func (repo *userRepository) DeleteAll(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&model.UserModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete users")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Password:  data.Password,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:       data.ID,
		Email:    data.Email,
		Password: data.Password,
	}
}

// copyGenerated writes database-assigned fields back onto the entity.
func copyGenerated(user *entity.User, userM *model.UserModel) {
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
}
