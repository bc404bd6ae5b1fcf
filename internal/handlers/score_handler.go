package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumecoach/backend/internal/models"
	"resumecoach/backend/internal/repositories"
	"resumecoach/backend/internal/services"
)

type ScoreHandler struct {
	matchService services.MatchService
	scorer       services.ScoringService
	scoreRepo    repositories.ScoreRepository
}

func NewScoreHandler(
	matchService services.MatchService,
	scorer services.ScoringService,
	scoreRepo repositories.ScoreRepository,
) *ScoreHandler {
	return &ScoreHandler{
		matchService: matchService,
		scorer:       scorer,
		scoreRepo:    scoreRepo,
	}
}

// HandleScore handles POST /score
func (h *ScoreHandler) HandleScore(c *fiber.Ctx) error {
	identity := CurrentIdentity(c)

	var req models.ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeText == "" || req.JobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Both resume_text and job_description are required",
		})
	}

	matchReq := services.MatchRequest{
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		UserID:         &identity.SubjectID,
	}

	if req.ResumeID != "" {
		resumeID, err := uuid.Parse(req.ResumeID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid resume_id format",
			})
		}
		matchReq.ResumeID = &resumeID
	}

	if req.JobID != "" {
		jobID, err := uuid.Parse(req.JobID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid job_id format",
			})
		}
		matchReq.JobID = &jobID
	}

	result, err := h.matchService.Match(c.UserContext(), matchReq)
	if err != nil {
		return scoringErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"score":   result,
	})
}

// HandleHistory handles GET /score/history
func (h *ScoreHandler) HandleHistory(c *fiber.Ctx) error {
	identity := CurrentIdentity(c)

	scores, err := h.scoreRepo.FindByUser(identity.SubjectID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch score history",
		})
	}

	return c.JSON(fiber.Map{
		"scores": scores,
		"count":  len(scores),
	})
}

// HandleGet handles GET /score/:id
func (h *ScoreHandler) HandleGet(c *fiber.Ctx) error {
	identity := CurrentIdentity(c)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid score ID format",
		})
	}

	score, err := h.scoreRepo.FindByID(id, identity.SubjectID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Score not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch score",
		})
	}

	return c.JSON(fiber.Map{"score": score})
}

// HandleMLHealth handles GET /score/ml/health
func (h *ScoreHandler) HandleMLHealth(c *fiber.Ctx) error {
	health, err := h.scorer.Health(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"ml_service": "unavailable",
			"error":      err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"ml_service": "available",
		"health":     health,
	})
}

// HandleOptimizeATS handles POST /ats/optimize
func (h *ScoreHandler) HandleOptimizeATS(c *fiber.Ctx) error {
	var req models.ATSOptimizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeText == "" || req.JobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Both resume_text and job_description are required",
		})
	}

	analysis, err := h.scorer.OptimizeATS(c.UserContext(), req)
	if err != nil {
		return scoringErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"analysis": analysis,
	})
}

// scoringErrorResponse maps scorer failures: unreachable service → 503,
// upstream rejection → the upstream status and body.
func scoringErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrScoringUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "ML service unavailable",
			"message": err.Error(),
		})
	}

	var svcErr *services.ScoringServiceError
	if errors.As(err, &svcErr) {
		return c.Status(svcErr.StatusCode).JSON(fiber.Map{
			"error":   "ML service error",
			"message": svcErr.Body,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Failed to get match score",
		"message": err.Error(),
	})
}
