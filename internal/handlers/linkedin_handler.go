package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-reviewer/internal/models"
	"alfredoptarigan/resume-reviewer/internal/services"
)

type LinkedInHandler struct {
	service services.ResumeService
}

func NewLinkedInHandler(service services.ResumeService) *LinkedInHandler {
	return &LinkedInHandler{service: service}
}

// HandleOptimize handles POST /linkedin.
func (h *LinkedInHandler) HandleOptimize(c *fiber.Ctx) error {
	var req models.LinkedInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	return respondOutcome(c, h.service.OptimizeLinkedIn(c.UserContext(), req.ResumeContent, req.CurrentProfile))
}
