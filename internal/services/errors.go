package services

import (
	"errors"
	"fmt"
)

// Error taxonomy for the ingestion and match pipelines. Handlers map these to
// HTTP statuses with errors.Is / errors.As; orchestrators surface the
// underlying messages verbatim.
var (
	// Extraction.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrCorruptDocument   = errors.New("corrupt document")
	ErrExtraction        = errors.New("extraction failed")

	// Persistence.
	ErrPersistence = errors.New("persistence failed")

	// Scoring collaborator.
	ErrScoringUnavailable = errors.New("scoring service unavailable")

	// Identity.
	ErrNoToken      = errors.New("no authorization token provided")
	ErrInvalidToken = errors.New("invalid or expired token")

	// Upload pipeline lifecycle.
	ErrUploadInProgress = errors.New("upload already in progress")
	ErrFileTooLarge     = errors.New("file exceeds maximum size")
)

// ScoringServiceError is a non-2xx answer from the scoring service. The
// upstream status and body are kept for diagnostics.
type ScoringServiceError struct {
	StatusCode int
	Body       string
}

func (e *ScoringServiceError) Error() string {
	return fmt.Sprintf("scoring service returned status %d: %s", e.StatusCode, e.Body)
}
