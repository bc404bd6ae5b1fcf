package handlers

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"resumecoach/backend/internal/models"
	"resumecoach/backend/internal/repositories"
	"resumecoach/backend/internal/services"
)

type UploadHandler struct {
	extractor   services.ExtractorService
	resumeRepo  repositories.ResumeRepository
	maxFileSize int64
}

func NewUploadHandler(
	extractor services.ExtractorService,
	resumeRepo repositories.ResumeRepository,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		extractor:   extractor,
		resumeRepo:  resumeRepo,
		maxFileSize: maxFileSize,
	}
}

// HandleUpload handles POST /resumes/upload. A fresh pipeline instance is
// created per request; an upload service carries at most one run.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	identity := CurrentIdentity(c)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	format, ok := services.FormatForFile(fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only PDF and DOCX files are allowed",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to open uploaded file",
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	uploader := services.NewUploadService(h.extractor, h.resumeRepo, h.maxFileSize)
	doc := services.RawDocument{
		Data:     data,
		Format:   format,
		Filename: fileHeader.Filename,
	}

	resume, err := uploader.Run(c.UserContext(), doc, c.FormValue("title"), identity.SubjectID)
	if err != nil {
		progress := uploader.Progress()
		return c.Status(uploadErrorStatus(err)).JSON(fiber.Map{
			"error":   err.Error(),
			"stage":   progress.Stage,
			"percent": progress.Percent,
		})
	}

	progress := uploader.Progress()
	return c.Status(fiber.StatusCreated).JSON(models.UploadResponse{
		Resume:   resume,
		Stage:    string(progress.Stage),
		Percent:  progress.Percent,
		Skills:   []string(resume.Skills),
		Filename: resume.Filename,
	})
}

func uploadErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrUnsupportedFormat), errors.Is(err, services.ErrFileTooLarge):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrCorruptDocument), errors.Is(err, services.ErrExtraction):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
