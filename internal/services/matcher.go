package services

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"resumecoach/backend/internal/models"
	"resumecoach/backend/internal/repositories"
)

type MatchRequest struct {
	ResumeText     string
	JobDescription string

	// When all three identifiers are present, the result is also persisted
	// as a Score entity.
	ResumeID *uuid.UUID
	JobID    *uuid.UUID
	UserID   *uuid.UUID
}

// MatchResult is the scorer's answer, enriched with the persisted score id
// when a Score entity was stored.
type MatchResult struct {
	models.PredictMatchResponse
	ScoreID *uuid.UUID `json:"score_id,omitempty"`
}

type MatchService interface {
	Match(ctx context.Context, req MatchRequest) (*MatchResult, error)
}

type matchService struct {
	scorer    ScoringService
	scoreRepo repositories.ScoreRepository
}

func NewMatchService(scorer ScoringService, scoreRepo repositories.ScoreRepository) MatchService {
	return &matchService{
		scorer:    scorer,
		scoreRepo: scoreRepo,
	}
}

// Match implements MatchService. The scoring call always precedes the
// persistence attempt; a scoring failure is fatal and nothing is persisted,
// while a persistence failure is logged and the caller still gets the result.
func (m *matchService) Match(ctx context.Context, req MatchRequest) (*MatchResult, error) {
	prediction, err := m.scorer.PredictMatch(ctx, models.PredictMatchRequest{
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		return nil, err
	}

	result := &MatchResult{PredictMatchResponse: *prediction}

	if req.ResumeID == nil || req.JobID == nil || req.UserID == nil {
		return result, nil
	}

	score := &models.Score{
		ID:              uuid.New(),
		UserID:          *req.UserID,
		ResumeID:        *req.ResumeID,
		JobID:           *req.JobID,
		MatchScore:      prediction.MatchScore,
		Confidence:      prediction.Confidence,
		KeywordsMatched: datatypes.NewJSONSlice(prediction.KeywordsMatched),
		Recommendation:  prediction.Recommendation,
	}

	if err := m.scoreRepo.Create(score); err != nil {
		// Best effort: the score is the operation's value, the record is a
		// side effect.
		log.Printf("⚠️  Failed to save score to database: %v", err)
		return result, nil
	}

	log.Printf("✅ Score %s saved to database", score.ID)
	result.ScoreID = &score.ID
	return result, nil
}
