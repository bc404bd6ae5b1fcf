package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumecoach/backend/internal/models"
)

type recordedRequest struct {
	path    string
	payload map[string]interface{}
}

// newScoringServer answers every POST with the given JSON body and records
// what it received.
func newScoringServer(t *testing.T, responseBody string, recorded *recordedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.path = r.URL.Path
		if r.Body != nil {
			var payload map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&payload); err == nil {
				recorded.payload = payload
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(responseBody))
	}))
}

func TestPredictMatchRequestShape(t *testing.T) {
	var recorded recordedRequest
	server := newScoringServer(t, `{
		"match_score": 64.2,
		"confidence": 0.81,
		"keywords_matched": ["go", "postgresql"],
		"recommendation": "Good Match"
	}`, &recorded)
	defer server.Close()

	scorer := NewScoringService(server.URL, 10*time.Second, time.Second)
	resp, err := scorer.PredictMatch(context.Background(), models.PredictMatchRequest{
		ResumeText:     "Go developer",
		JobDescription: "Backend role",
	})
	require.NoError(t, err)

	assert.Equal(t, "/predict-match", recorded.path)
	assert.Equal(t, "Go developer", recorded.payload["resume_text"])
	assert.Equal(t, "Backend role", recorded.payload["job_description"])

	assert.Equal(t, 64.2, resp.MatchScore)
	assert.Equal(t, 0.81, resp.Confidence)
	assert.Equal(t, []string{"go", "postgresql"}, resp.KeywordsMatched)
	assert.Equal(t, "Good Match", resp.Recommendation)
}

func TestOptimizeATSRequestShape(t *testing.T) {
	var recorded recordedRequest
	server := newScoringServer(t, `{
		"optimized_sections": {"summary": "Rewritten summary"},
		"suggestions": ["Add metrics"],
		"ats_score": 72.0
	}`, &recorded)
	defer server.Close()

	scorer := NewScoringService(server.URL, 10*time.Second, time.Second)
	resp, err := scorer.OptimizeATS(context.Background(), models.ATSOptimizeRequest{
		ResumeText:     "resume body",
		JobDescription: "job body",
	})
	require.NoError(t, err)

	assert.Equal(t, "/optimize-ats", recorded.path)
	assert.Equal(t, "resume body", recorded.payload["resume_text"])
	assert.Equal(t, 72.0, resp.ATSScore)
	assert.Equal(t, []string{"Add metrics"}, resp.Suggestions)
}

func TestInterviewEndpointPaths(t *testing.T) {
	var recorded recordedRequest
	server := newScoringServer(t, `{}`, &recorded)
	defer server.Close()

	scorer := NewScoringService(server.URL, 10*time.Second, time.Second)
	ctx := context.Background()

	_, err := scorer.GenerateQuestions(ctx, models.GenerateQuestionsRequest{JobDescription: "role"})
	require.NoError(t, err)
	assert.Equal(t, "/interview/generate-questions", recorded.path)

	_, err = scorer.EvaluateAnswer(ctx, models.EvaluateAnswerRequest{Question: "q", Answer: "a"})
	require.NoError(t, err)
	assert.Equal(t, "/interview/evaluate-answer", recorded.path)

	_, err = scorer.CalculateInterviewScore(ctx, models.InterviewScoreRequest{})
	require.NoError(t, err)
	assert.Equal(t, "/interview/calculate-score", recorded.path)
}

func TestScoringServiceErrorCarriesUpstreamDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "model not loaded"}`))
	}))
	defer server.Close()

	scorer := NewScoringService(server.URL, 10*time.Second, time.Second)
	_, err := scorer.PredictMatch(context.Background(), models.PredictMatchRequest{})
	require.Error(t, err)

	var svcErr *ScoringServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
	assert.Contains(t, svcErr.Body, "model not loaded")
	assert.NotErrorIs(t, err, ErrScoringUnavailable)
}

func TestScoringUnavailableOnConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	scorer := NewScoringService(server.URL, 10*time.Second, time.Second)
	_, err := scorer.PredictMatch(context.Background(), models.PredictMatchRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScoringUnavailable)
}

func TestScoringUnavailableOnTimeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer slow.Close()

	scorer := NewScoringService(slow.URL, 20*time.Millisecond, time.Second)
	_, err := scorer.PredictMatch(context.Background(), models.PredictMatchRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScoringUnavailable)
}

func TestHealthOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "healthy", "model_loaded": true}`))
	}))
	defer server.Close()

	scorer := NewScoringService(server.URL, 10*time.Second, time.Second)
	health, err := scorer.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, true, health["model_loaded"])
}

func TestHealthHonorsShortTimeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer slow.Close()

	scorer := NewScoringService(slow.URL, 10*time.Second, 20*time.Millisecond)
	_, err := scorer.Health(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScoringUnavailable)
}
