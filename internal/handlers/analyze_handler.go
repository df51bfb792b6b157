package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"alfredoptarigan/resume-reviewer/internal/models"
	"alfredoptarigan/resume-reviewer/internal/services"
)

type AnalyzeHandler struct {
	intake  services.FileIntake
	service services.ResumeService
}

func NewAnalyzeHandler(intake services.FileIntake, service services.ResumeService) *AnalyzeHandler {
	return &AnalyzeHandler{
		intake:  intake,
		service: service,
	}
}

// HandleAnalyze handles POST /analyze with multipart fields file and
// job_description.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	file, err := formFile(c, h.intake)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "failed to read uploaded file",
			Kind:  models.OutcomeValidationFailure,
		})
	}

	jobDescription := utils.CopyString(c.FormValue("job_description"))

	return respondOutcome(c, h.service.AnalyzeFile(c.UserContext(), file, jobDescription))
}

// HandleAnalyzeText handles POST /analyze/text with a JSON body of
// resume_content and job_description.
func (h *AnalyzeHandler) HandleAnalyzeText(c *fiber.Ctx) error {
	var req models.AnalyzeTextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	return respondOutcome(c, h.service.AnalyzeText(c.UserContext(), req.ResumeContent, req.JobDescription))
}
