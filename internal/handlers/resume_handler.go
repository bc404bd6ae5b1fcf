package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"resumecoach/backend/internal/models"
	"resumecoach/backend/internal/repositories"
)

type ResumeHandler struct {
	resumeRepo repositories.ResumeRepository
}

func NewResumeHandler(resumeRepo repositories.ResumeRepository) *ResumeHandler {
	return &ResumeHandler{resumeRepo: resumeRepo}
}

// HandleList handles GET /resumes
func (h *ResumeHandler) HandleList(c *fiber.Ctx) error {
	identity := CurrentIdentity(c)

	resumes, err := h.resumeRepo.FindByUser(identity.SubjectID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch resumes",
		})
	}

	return c.JSON(fiber.Map{
		"resumes": resumes,
		"count":   len(resumes),
	})
}

// HandleGet handles GET /resumes/:id
func (h *ResumeHandler) HandleGet(c *fiber.Ctx) error {
	identity := CurrentIdentity(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	resume, err := h.resumeRepo.FindByID(id, identity.SubjectID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch resume",
		})
	}

	return c.JSON(fiber.Map{"resume": resume})
}

// HandleCreate handles POST /resumes
func (h *ResumeHandler) HandleCreate(c *fiber.Ctx) error {
	identity := CurrentIdentity(c)

	var req models.CreateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Title == "" || req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and content are required",
		})
	}

	resume := models.Resume{
		ID:         uuid.New(),
		UserID:     identity.SubjectID,
		Title:      req.Title,
		Content:    req.Content,
		Skills:     datatypes.NewJSONSlice(req.Skills),
		Experience: datatypes.NewJSONSlice(req.Experience),
		Education:  datatypes.NewJSONSlice(req.Education),
	}

	if err := h.resumeRepo.Create(&resume); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create resume",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Resume created successfully",
		"resume":  resume,
	})
}

// HandleUpdate handles PUT /resumes/:id
func (h *ResumeHandler) HandleUpdate(c *fiber.Ctx) error {
	identity := CurrentIdentity(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	var req models.UpdateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.Skills != nil {
		updates["skills"] = datatypes.NewJSONSlice(*req.Skills)
	}
	if req.Experience != nil {
		updates["experience"] = datatypes.NewJSONSlice(*req.Experience)
	}
	if req.Education != nil {
		updates["education"] = datatypes.NewJSONSlice(*req.Education)
	}

	resume, err := h.resumeRepo.Update(id, identity.SubjectID, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update resume",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Resume updated successfully",
		"resume":  resume,
	})
}

// HandleDelete handles DELETE /resumes/:id
func (h *ResumeHandler) HandleDelete(c *fiber.Ctx) error {
	identity := CurrentIdentity(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume ID format",
		})
	}

	if err := h.resumeRepo.Delete(id, identity.SubjectID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete resume",
		})
	}

	return c.JSON(fiber.Map{"message": "Resume deleted successfully"})
}
