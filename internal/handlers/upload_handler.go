package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-reviewer/internal/models"
	"alfredoptarigan/resume-reviewer/internal/services"
)

type UploadHandler struct {
	intake  services.FileIntake
	service services.ResumeService
}

func NewUploadHandler(intake services.FileIntake, service services.ResumeService) *UploadHandler {
	return &UploadHandler{
		intake:  intake,
		service: service,
	}
}

// HandleUploadResume handles POST /upload-resume. The acknowledgement is
// passed back to the caller untouched.
func (h *UploadHandler) HandleUploadResume(c *fiber.Ctx) error {
	file, err := formFile(c, h.intake)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "failed to read uploaded file",
			Kind:  models.OutcomeValidationFailure,
		})
	}

	return respondOutcome(c, h.service.UploadResume(c.UserContext(), file))
}
