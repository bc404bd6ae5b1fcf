package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumecoach/backend/internal/repositories"
)

type AuthHandler struct {
	userRepo repositories.UserRepository
}

func NewAuthHandler(userRepo repositories.UserRepository) *AuthHandler {
	return &AuthHandler{userRepo: userRepo}
}

// HandleMe handles GET /auth/me. The identity row is created on first
// sighting of a verified subject.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	identity := CurrentIdentity(c)

	user, err := h.userRepo.FindOrCreate(identity.SubjectID, identity.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve identity",
		})
	}

	return c.JSON(fiber.Map{"user": user})
}
