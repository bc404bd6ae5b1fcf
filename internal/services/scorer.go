package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"resumecoach/backend/internal/models"
)

// ScoringService is the client for the external ML scoring collaborator. The
// service is opaque: requests go out, typed responses come back, and every
// call is bounded by the client timeout.
type ScoringService interface {
	PredictMatch(ctx context.Context, req models.PredictMatchRequest) (*models.PredictMatchResponse, error)
	OptimizeATS(ctx context.Context, req models.ATSOptimizeRequest) (*models.ATSOptimizeResponse, error)
	GenerateQuestions(ctx context.Context, req models.GenerateQuestionsRequest) (*models.GenerateQuestionsResponse, error)
	EvaluateAnswer(ctx context.Context, req models.EvaluateAnswerRequest) (*models.EvaluateAnswerResponse, error)
	CalculateInterviewScore(ctx context.Context, req models.InterviewScoreRequest) (*models.InterviewScoreResponse, error)
	Health(ctx context.Context) (map[string]interface{}, error)
}

type scoringService struct {
	baseURL       string
	client        *http.Client
	healthTimeout time.Duration
}

func NewScoringService(baseURL string, timeout, healthTimeout time.Duration) ScoringService {
	return &scoringService{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		healthTimeout: healthTimeout,
	}
}

// PredictMatch implements ScoringService.
func (s *scoringService) PredictMatch(ctx context.Context, req models.PredictMatchRequest) (*models.PredictMatchResponse, error) {
	var resp models.PredictMatchResponse
	if err := s.postJSON(ctx, "/predict-match", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OptimizeATS implements ScoringService.
func (s *scoringService) OptimizeATS(ctx context.Context, req models.ATSOptimizeRequest) (*models.ATSOptimizeResponse, error) {
	var resp models.ATSOptimizeResponse
	if err := s.postJSON(ctx, "/optimize-ats", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GenerateQuestions implements ScoringService.
func (s *scoringService) GenerateQuestions(ctx context.Context, req models.GenerateQuestionsRequest) (*models.GenerateQuestionsResponse, error) {
	var resp models.GenerateQuestionsResponse
	if err := s.postJSON(ctx, "/interview/generate-questions", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EvaluateAnswer implements ScoringService.
func (s *scoringService) EvaluateAnswer(ctx context.Context, req models.EvaluateAnswerRequest) (*models.EvaluateAnswerResponse, error) {
	var resp models.EvaluateAnswerResponse
	if err := s.postJSON(ctx, "/interview/evaluate-answer", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CalculateInterviewScore implements ScoringService.
func (s *scoringService) CalculateInterviewScore(ctx context.Context, req models.InterviewScoreRequest) (*models.InterviewScoreResponse, error) {
	var resp models.InterviewScoreResponse
	if err := s.postJSON(ctx, "/interview/calculate-score", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health implements ScoringService. Health checks use a shorter deadline than
// scoring calls.
func (s *scoringService) Health(ctx context.Context) (map[string]interface{}, error) {
	if s.healthTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.healthTimeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build health request: %w", err)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScoringUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScoringUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ScoringServiceError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var health map[string]interface{}
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}

	return health, nil
}

// postJSON sends one JSON request and decodes the response. Transport errors
// and timeouts become ScoringUnavailable; non-2xx answers become
// ScoringServiceError with the upstream status and body.
func (s *scoringService) postJSON(ctx context.Context, path string, payload interface{}, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request for %s: %w", path, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScoringUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScoringUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &ScoringServiceError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}
