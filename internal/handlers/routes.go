package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Workspace *WorkspaceHandler
	Analyze   *AnalyzeHandler
	LinkedIn  *LinkedInHandler
	Upload    *UploadHandler
}

func RegisterRoutes(app *fiber.App, h Handlers) {
	app.Get("/", h.Workspace.HandleIndex)
	app.Post("/submit", h.Workspace.HandleFormSubmit)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Get("/workspace", h.Workspace.HandleGetWorkspace)
	api.Post("/workspace/file", h.Workspace.HandleSelectFile)
	api.Put("/workspace/job-description", h.Workspace.HandleSetJobDescription)
	api.Post("/workspace/analyze", h.Workspace.HandleSubmit)

	api.Post("/analyze", h.Analyze.HandleAnalyze)
	api.Post("/analyze/text", h.Analyze.HandleAnalyzeText)
	api.Post("/linkedin", h.LinkedIn.HandleOptimize)
	api.Post("/upload-resume", h.Upload.HandleUploadResume)
}
