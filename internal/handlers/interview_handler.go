package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumecoach/backend/internal/models"
	"resumecoach/backend/internal/services"
)

type InterviewHandler struct {
	scorer services.ScoringService
}

func NewInterviewHandler(scorer services.ScoringService) *InterviewHandler {
	return &InterviewHandler{scorer: scorer}
}

// HandleGenerateQuestions handles POST /interview/questions
func (h *InterviewHandler) HandleGenerateQuestions(c *fiber.Ctx) error {
	var req models.GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description is required",
		})
	}

	questions, err := h.scorer.GenerateQuestions(c.UserContext(), req)
	if err != nil {
		return scoringErrorResponse(c, err)
	}

	return c.JSON(questions)
}

// HandleEvaluateAnswer handles POST /interview/evaluate
func (h *InterviewHandler) HandleEvaluateAnswer(c *fiber.Ctx) error {
	var req models.EvaluateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Question == "" || req.Answer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Both question and answer are required",
		})
	}

	evaluation, err := h.scorer.EvaluateAnswer(c.UserContext(), req)
	if err != nil {
		return scoringErrorResponse(c, err)
	}

	return c.JSON(evaluation)
}

// HandleCalculateScore handles POST /interview/score
func (h *InterviewHandler) HandleCalculateScore(c *fiber.Ctx) error {
	var req models.InterviewScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if len(req.Evaluations) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "evaluations must not be empty",
		})
	}

	score, err := h.scorer.CalculateInterviewScore(c.UserContext(), req)
	if err != nil {
		return scoringErrorResponse(c, err)
	}

	return c.JSON(score)
}
