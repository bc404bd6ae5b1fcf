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

type JobHandler struct {
	jobRepo repositories.JobRepository
}

func NewJobHandler(jobRepo repositories.JobRepository) *JobHandler {
	return &JobHandler{jobRepo: jobRepo}
}

// HandleList handles GET /jobs
func (h *JobHandler) HandleList(c *fiber.Ctx) error {
	jobs, err := h.jobRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch jobs",
		})
	}

	return c.JSON(fiber.Map{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// HandleGet handles GET /jobs/:id
func (h *JobHandler) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	job, err := h.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Job not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch job",
		})
	}

	return c.JSON(fiber.Map{"job": job})
}

// HandleCreate handles POST /jobs
func (h *JobHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Title == "" || req.Description == "" || req.Company == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title, description, and company are required",
		})
	}

	job := models.Job{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Company:      req.Company,
		Location:     req.Location,
		Salary:       req.Salary,
		Requirements: datatypes.NewJSONSlice(req.Requirements),
		Skills:       datatypes.NewJSONSlice(req.Skills),
	}
	if job.Location == "" {
		job.Location = "Remote"
	}
	if job.Salary == "" {
		job.Salary = "Competitive"
	}

	if err := h.jobRepo.Create(&job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create job",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Job created successfully",
		"job":     job,
	})
}

// HandleUpdate handles PUT /jobs/:id
func (h *JobHandler) HandleUpdate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	var req models.UpdateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Company != nil {
		updates["company"] = *req.Company
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Salary != nil {
		updates["salary"] = *req.Salary
	}
	if req.Requirements != nil {
		updates["requirements"] = datatypes.NewJSONSlice(*req.Requirements)
	}
	if req.Skills != nil {
		updates["skills"] = datatypes.NewJSONSlice(*req.Skills)
	}

	job, err := h.jobRepo.Update(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Job not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update job",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Job updated successfully",
		"job":     job,
	})
}

// HandleDelete handles DELETE /jobs/:id
func (h *JobHandler) HandleDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	if err := h.jobRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Job not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete job",
		})
	}

	return c.JSON(fiber.Map{"message": "Job deleted successfully"})
}
