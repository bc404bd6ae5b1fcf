package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumecoach/backend/internal/models"
)

var ErrNotFound = errors.New("record not found")

type ResumeRepository interface {
	Create(resume *models.Resume) error
	FindByID(id, userID uuid.UUID) (*models.Resume, error)
	FindByUser(userID uuid.UUID) ([]models.Resume, error)
	Update(id, userID uuid.UUID, updates map[string]interface{}) (*models.Resume, error)
	Delete(id, userID uuid.UUID) error
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(resume *models.Resume) error {
	if err := r.db.Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}

	return nil
}

// FindByID implements ResumeRepository.
func (r *resumeRepository) FindByID(id, userID uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("resume %s: %w", id, ErrNotFound)
		}

		return nil, fmt.Errorf("failed to find resume: %w", err)
	}

	return &resume, nil
}

// FindByUser implements ResumeRepository.
func (r *resumeRepository) FindByUser(userID uuid.UUID) ([]models.Resume, error) {
	var resumes []models.Resume
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&resumes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	return resumes, nil
}

// Update implements ResumeRepository.
func (r *resumeRepository) Update(id, userID uuid.UUID, updates map[string]interface{}) (*models.Resume, error) {
	result := r.db.Model(&models.Resume{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to update resume: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("resume %s: %w", id, ErrNotFound)
	}

	return r.FindByID(id, userID)
}

// Delete implements ResumeRepository.
func (r *resumeRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Resume{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete resume: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("resume %s: %w", id, ErrNotFound)
	}

	return nil
}
