package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resumecoach/backend/internal/models"
)

type ScoreRepository interface {
	Create(score *models.Score) error
	FindByID(id, userID uuid.UUID) (*models.Score, error)
	FindByUser(userID uuid.UUID) ([]models.ScoreHistoryEntry, error)
	Delete(id, userID uuid.UUID) error
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

// Create implements ScoreRepository.
func (r *scoreRepository) Create(score *models.Score) error {
	if err := r.db.Create(score).Error; err != nil {
		return fmt.Errorf("failed to create score: %w", err)
	}

	return nil
}

// FindByID implements ScoreRepository.
func (r *scoreRepository) FindByID(id, userID uuid.UUID) (*models.Score, error) {
	var score models.Score
	err := r.db.
		Preload("Resume").
		Preload("Job").
		Where("id = ? AND user_id = ?", id, userID).
		First(&score).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("score %s: %w", id, ErrNotFound)
		}

		return nil, fmt.Errorf("failed to find score: %w", err)
	}

	return &score, nil
}

// FindByUser implements ScoreRepository.
func (r *scoreRepository) FindByUser(userID uuid.UUID) ([]models.ScoreHistoryEntry, error) {
	var scores []models.Score
	err := r.db.
		Preload("Resume").
		Preload("Job").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&scores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}

	entries := make([]models.ScoreHistoryEntry, 0, len(scores))
	for _, score := range scores {
		entries = append(entries, models.ScoreHistoryEntry{
			Score:       score,
			ResumeTitle: score.Resume.Title,
			JobTitle:    score.Job.Title,
			JobCompany:  score.Job.Company,
		})
	}

	return entries, nil
}

// Delete implements ScoreRepository.
func (r *scoreRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Score{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete score: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("score %s: %w", id, ErrNotFound)
	}

	return nil
}
