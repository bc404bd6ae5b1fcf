package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"resumecoach/backend/internal/models"
	"resumecoach/backend/internal/repositories"
)

type UploadStage string

const (
	StageIdle             UploadStage = "idle"
	StageParsing          UploadStage = "parsing"
	StageExtractingSkills UploadStage = "extracting_skills"
	StagePreparing        UploadStage = "preparing"
	StageUploading        UploadStage = "uploading"
	StageDone             UploadStage = "done"
	StageFailed           UploadStage = "failed"
)

// UploadProgress is a snapshot of one pipeline run. Percent never decreases
// within a run; failed is terminal and freezes the percent it was reached at.
type UploadProgress struct {
	Stage   UploadStage `json:"stage"`
	Percent int         `json:"percent"`
	Error   string      `json:"error,omitempty"`
}

// UploadService drives one resume through extract → normalize → skills →
// persist. An instance carries the progress of at most one run at a time;
// callers must not start a second run while one is in flight.
type UploadService interface {
	Run(ctx context.Context, doc RawDocument, title string, userID uuid.UUID) (*models.Resume, error)
	Progress() UploadProgress
	Reset() error
	OnProgress(fn func(UploadProgress))
}

type uploadService struct {
	extractor   ExtractorService
	resumeRepo  repositories.ResumeRepository
	maxFileSize int64

	mu         sync.Mutex
	progress   UploadProgress
	onProgress func(UploadProgress)
}

func NewUploadService(
	extractor ExtractorService,
	resumeRepo repositories.ResumeRepository,
	maxFileSize int64,
) UploadService {
	return &uploadService{
		extractor:   extractor,
		resumeRepo:  resumeRepo,
		maxFileSize: maxFileSize,
		progress:    UploadProgress{Stage: StageIdle, Percent: 0},
	}
}

// OnProgress implements UploadService.
func (u *uploadService) OnProgress(fn func(UploadProgress)) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.onProgress = fn
}

// Progress implements UploadService.
func (u *uploadService) Progress() UploadProgress {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.progress
}

// Reset implements UploadService. It is only valid once a run has reached a
// terminal stage; it has no effect on an in-flight run.
func (u *uploadService) Reset() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.progress.Stage != StageDone && u.progress.Stage != StageFailed {
		return fmt.Errorf("cannot reset while stage is %q", u.progress.Stage)
	}

	u.progress = UploadProgress{Stage: StageIdle, Percent: 0}
	return nil
}

// Run implements UploadService.
func (u *uploadService) Run(ctx context.Context, doc RawDocument, title string, userID uuid.UUID) (*models.Resume, error) {
	u.mu.Lock()
	stage := u.progress.Stage
	if stage != StageIdle && stage != StageDone && stage != StageFailed {
		u.mu.Unlock()
		return nil, ErrUploadInProgress
	}
	u.mu.Unlock()

	u.setProgress(StageIdle, 0)

	// Input contract: reject before extraction is attempted, so a rejected
	// file fails with percent still at 0.
	if u.maxFileSize > 0 && int64(len(doc.Data)) > u.maxFileSize {
		return nil, u.fail(fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, len(doc.Data), u.maxFileSize))
	}
	if doc.Format != FormatPDF && doc.Format != FormatDOCX {
		return nil, u.fail(fmt.Errorf("%w: %q", ErrUnsupportedFormat, doc.Format))
	}

	u.setProgress(StageParsing, 10)
	fragments, err := u.extractor.Extract(doc)
	if err != nil {
		return nil, u.fail(err)
	}

	u.setProgress(StageExtractingSkills, 30)
	content := Normalize(fragments)
	skills := ExtractSkills(content)

	u.setProgress(StagePreparing, 50)
	if title == "" {
		title = TitleFromFilename(doc.Filename)
	}

	resume := &models.Resume{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    title,
		Content:  content,
		Filename: doc.Filename,
		Skills:   datatypes.NewJSONSlice(skills),
	}
	u.setProgress(StagePreparing, 70)

	u.setProgress(StageUploading, 70)
	if err := u.resumeRepo.Create(resume); err != nil {
		return nil, u.fail(fmt.Errorf("%w: %v", ErrPersistence, err))
	}

	u.setProgress(StageDone, 100)
	return resume, nil
}

func (u *uploadService) setProgress(stage UploadStage, percent int) {
	u.mu.Lock()
	u.progress = UploadProgress{Stage: stage, Percent: percent}
	snapshot := u.progress
	fn := u.onProgress
	u.mu.Unlock()

	if fn != nil {
		fn(snapshot)
	}
}

// fail moves the run to the terminal failed stage, freezing the percent.
func (u *uploadService) fail(err error) error {
	u.mu.Lock()
	u.progress.Stage = StageFailed
	u.progress.Error = err.Error()
	snapshot := u.progress
	fn := u.onProgress
	u.mu.Unlock()

	log.Printf("❌ Upload pipeline failed: %v", err)
	if fn != nil {
		fn(snapshot)
	}
	return err
}
