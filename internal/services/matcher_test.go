package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumecoach/backend/internal/models"
)

type fakeScoreRepo struct {
	created   []*models.Score
	createErr error
}

func (f *fakeScoreRepo) Create(score *models.Score) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, score)
	return nil
}

func (f *fakeScoreRepo) FindByID(id, userID uuid.UUID) (*models.Score, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeScoreRepo) FindByUser(userID uuid.UUID) ([]models.ScoreHistoryEntry, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeScoreRepo) Delete(id, userID uuid.UUID) error {
	return errors.New("not implemented")
}

func newPredictServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/predict-match" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"match_score": 78.45,
			"confidence": 0.92,
			"keywords_matched": ["python", "django"],
			"recommendation": "Strong Match"
		}`))
	}))
}

func fullMatchRequest() MatchRequest {
	resumeID := uuid.New()
	jobID := uuid.New()
	userID := uuid.New()
	return MatchRequest{
		ResumeText:     "Python developer with Django experience",
		JobDescription: "Looking for a Python developer",
		ResumeID:       &resumeID,
		JobID:          &jobID,
		UserID:         &userID,
	}
}

func TestMatchSuccessPersistsScore(t *testing.T) {
	server := newPredictServer(t)
	defer server.Close()

	repo := &fakeScoreRepo{}
	matcher := NewMatchService(NewScoringService(server.URL, 10*time.Second, time.Second), repo)

	req := fullMatchRequest()
	result, err := matcher.Match(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 78.45, result.MatchScore)
	assert.Equal(t, 0.92, result.Confidence)
	assert.Equal(t, []string{"python", "django"}, result.KeywordsMatched)
	assert.Equal(t, "Strong Match", result.Recommendation)
	require.NotNil(t, result.ScoreID)

	require.Len(t, repo.created, 1)
	score := repo.created[0]
	assert.Equal(t, *req.UserID, score.UserID)
	assert.Equal(t, *req.ResumeID, score.ResumeID)
	assert.Equal(t, *req.JobID, score.JobID)
	assert.Equal(t, 78.45, score.MatchScore)
	assert.Equal(t, *result.ScoreID, score.ID)
}

func TestMatchWithoutIdentifiersSkipsPersistence(t *testing.T) {
	server := newPredictServer(t)
	defer server.Close()

	repo := &fakeScoreRepo{}
	matcher := NewMatchService(NewScoringService(server.URL, 10*time.Second, time.Second), repo)

	result, err := matcher.Match(context.Background(), MatchRequest{
		ResumeText:     "resume text here",
		JobDescription: "job description here",
	})
	require.NoError(t, err)

	assert.Nil(t, result.ScoreID)
	assert.Empty(t, repo.created)
}

func TestMatchPartialIdentifiersSkipsPersistence(t *testing.T) {
	server := newPredictServer(t)
	defer server.Close()

	repo := &fakeScoreRepo{}
	matcher := NewMatchService(NewScoringService(server.URL, 10*time.Second, time.Second), repo)

	req := fullMatchRequest()
	req.JobID = nil

	result, err := matcher.Match(context.Background(), req)
	require.NoError(t, err)

	assert.Nil(t, result.ScoreID)
	assert.Empty(t, repo.created)
}

func TestMatchStoreFailureStillReturnsResult(t *testing.T) {
	server := newPredictServer(t)
	defer server.Close()

	repo := &fakeScoreRepo{createErr: errors.New("disk full")}
	matcher := NewMatchService(NewScoringService(server.URL, 10*time.Second, time.Second), repo)

	result, err := matcher.Match(context.Background(), fullMatchRequest())

	// Persistence is best effort; the result is still the caller's.
	require.NoError(t, err)
	assert.Equal(t, 78.45, result.MatchScore)
	assert.Equal(t, "Strong Match", result.Recommendation)
	assert.Nil(t, result.ScoreID)
}

func TestMatchServiceErrorSkipsPersistence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": "resume_text too short"}`))
	}))
	defer server.Close()

	repo := &fakeScoreRepo{}
	matcher := NewMatchService(NewScoringService(server.URL, 10*time.Second, time.Second), repo)

	_, err := matcher.Match(context.Background(), fullMatchRequest())
	require.Error(t, err)

	var svcErr *ScoringServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusUnprocessableEntity, svcErr.StatusCode)
	assert.Contains(t, svcErr.Body, "resume_text too short")

	assert.Empty(t, repo.created, "no score persisted after a scoring failure")
}

func TestMatchUnavailableSkipsPersistence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	repo := &fakeScoreRepo{}
	matcher := NewMatchService(NewScoringService(server.URL, 10*time.Second, time.Second), repo)

	_, err := matcher.Match(context.Background(), fullMatchRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScoringUnavailable)
	assert.Empty(t, repo.created)
}

func TestMatchTimeoutSkipsPersistence(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer slow.Close()

	repo := &fakeScoreRepo{}
	matcher := NewMatchService(NewScoringService(slow.URL, 20*time.Millisecond, time.Second), repo)

	_, err := matcher.Match(context.Background(), fullMatchRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScoringUnavailable)
	assert.Empty(t, repo.created)
}
