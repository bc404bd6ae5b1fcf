package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumecoach/backend/internal/models"
)

type UserRepository interface {
	FindByID(id uuid.UUID) (*models.User, error)
	FindOrCreate(id uuid.UUID, email string) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByID implements UserRepository.
func (r *userRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &user, nil
}

// FindOrCreate implements UserRepository. Identities are created the first
// time a verified token subject is seen.
func (r *userRepository) FindOrCreate(id uuid.UUID, email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user = models.User{ID: id, Email: email}
	if err := r.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}
