package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumecoach/backend/internal/models"
)

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id uuid.UUID) (*models.Job, error)
	FindAll() ([]models.Job, error)
	Update(id uuid.UUID, updates map[string]interface{}) (*models.Job, error)
	Delete(id uuid.UUID) error
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create implements JobRepository.
func (r *jobRepository) Create(job *models.Job) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	return nil
}

// FindByID implements JobRepository.
func (r *jobRepository) FindByID(id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
		}

		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	return &job, nil
}

// FindAll implements JobRepository.
func (r *jobRepository) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	if err := r.db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

// Update implements JobRepository.
func (r *jobRepository) Update(id uuid.UUID, updates map[string]interface{}) (*models.Job, error) {
	result := r.db.Model(&models.Job{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return nil, fmt.Errorf("failed to update job: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("job %s: %w", id, ErrNotFound)
	}

	return r.FindByID(id)
}

// Delete implements JobRepository.
func (r *jobRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete job: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("job %s: %w", id, ErrNotFound)
	}

	return nil
}
