package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"masked-aadhaar.backend/internal/domain/entities"
	domainerrors "masked-aadhaar.backend/internal/domain/errors"
	"masked-aadhaar.backend/internal/infrastructure/models"
)

// UserRepository implements confirmed-user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a confirmed user row. A unique-constraint violation on vid,
// email or hashed_aadhaar is reported as ErrAlreadyExists.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		Name:           user.Name,
		DOB:            user.DOB,
		Gender:         string(user.Gender),
		VID:            user.VID,
		HashedAadhaar:  user.HashedAadhaar,
		LastFour:       user.LastFour,
		Email:          user.Email,
		HashedPassword: user.HashedPassword,
		RegisteredAt:   user.RegisteredAt,
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}

	user.ID = m.ID
	return nil
}

// GetByEmail gets a confirmed user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// ExistsByIdentity reports whether the hashed aadhaar or email is already
// claimed by a confirmed user
func (r *UserRepository) ExistsByIdentity(ctx context.Context, hashedAadhaar, email string) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.User{}).
		Where("hashed_aadhaar = ? OR email = ?", hashedAadhaar, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns all confirmed users, newest registration first
func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	var userModels []models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("registered_at DESC").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.toEntity(&userModels[i]))
	}
	return users, nil
}

// Count returns the number of confirmed users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:             m.ID,
		Name:           m.Name,
		DOB:            m.DOB,
		Gender:         entities.Gender(m.Gender),
		VID:            m.VID,
		HashedAadhaar:  m.HashedAadhaar,
		LastFour:       m.LastFour,
		Email:          m.Email,
		HashedPassword: m.HashedPassword,
		RegisteredAt:   m.RegisteredAt,
	}
}
