package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-reviewer/internal/models"
	"alfredoptarigan/resume-reviewer/internal/services"
)

// formFile reads the "file" part of a multipart request. A request without
// one yields nil, which the validator rejects as "nothing selected". Any
// FormFile error, including a body that is not multipart, is treated the
// same way on purpose.
func formFile(c *fiber.Ctx, intake services.FileIntake) (*models.SelectedFile, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader == nil || fileHeader.Filename == "" {
		return nil, nil
	}

	return intake.FromUpload(fileHeader)
}
