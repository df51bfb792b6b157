package handlers

import (
	"bytes"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"alfredoptarigan/resume-reviewer/internal/models"
	"alfredoptarigan/resume-reviewer/internal/services"
	"alfredoptarigan/resume-reviewer/internal/web"
)

const workspaceCookie = "workspace_id"

// WorkspaceHandler serves the upload page and the per-session state
// behind it.
type WorkspaceHandler struct {
	store       services.WorkspaceStore
	intake      services.FileIntake
	validator   services.FileValidator
	service     services.ResumeService
	maxFileSize int64
}

func NewWorkspaceHandler(
	store services.WorkspaceStore,
	intake services.FileIntake,
	validator services.FileValidator,
	service services.ResumeService,
	maxFileSize int64,
) *WorkspaceHandler {
	return &WorkspaceHandler{
		store:       store,
		intake:      intake,
		validator:   validator,
		service:     service,
		maxFileSize: maxFileSize,
	}
}

// HandleIndex handles GET /
func (h *WorkspaceHandler) HandleIndex(c *fiber.Ctx) error {
	ws := h.workspace(c)

	var buf bytes.Buffer
	if err := web.RenderIndex(&buf, web.IndexView{
		Workspace:   ws.Snapshot(),
		MaxFileSize: services.FormatSize(h.maxFileSize),
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render page")
	}

	c.Type("html")
	return c.Send(buf.Bytes())
}

// HandleFormSubmit handles POST /submit from the upload page: select the
// file if one was sent, store the job description, submit, then redirect
// back to the page.
func (h *WorkspaceHandler) HandleFormSubmit(c *fiber.Ctx) error {
	ws := h.workspace(c)
	ws.SetJobDescription(utils.CopyString(c.FormValue("job_description")))

	file, err := formFile(c, h.intake)
	if err != nil {
		ws.RecordError("Failed to read the selected file")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	if file != nil {
		candidate, err := h.validator.Validate(file)
		if err != nil {
			ws.RecordError(err.Error())
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		ws.SelectFile(candidate)
	}

	if _, err := ws.Submit(c.UserContext(), h.service); err != nil {
		ws.RecordError(err.Error())
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

// HandleGetWorkspace handles GET /workspace
func (h *WorkspaceHandler) HandleGetWorkspace(c *fiber.Ctx) error {
	return c.JSON(h.workspace(c).Snapshot())
}

// HandleSelectFile handles POST /workspace/file. A rejected file leaves
// the previous selection in place.
func (h *WorkspaceHandler) HandleSelectFile(c *fiber.Ctx) error {
	ws := h.workspace(c)

	file, err := formFile(c, h.intake)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "failed to read uploaded file",
			Kind:  models.OutcomeValidationFailure,
		})
	}

	candidate, err := h.validator.Validate(file)
	if err != nil {
		ws.RecordError(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: err.Error(),
			Kind:  models.OutcomeValidationFailure,
		})
	}

	ws.SelectFile(candidate)
	log.Printf("📎 Workspace %s selected %s\n", ws.ID(), candidate.FileName)

	return c.JSON(ws.Snapshot())
}

// HandleSetJobDescription handles PUT /workspace/job-description
func (h *WorkspaceHandler) HandleSetJobDescription(c *fiber.Ctx) error {
	var req models.JobDescriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	ws := h.workspace(c)
	ws.SetJobDescription(req.JobDescription)

	return c.JSON(ws.Snapshot())
}

// HandleSubmit handles POST /workspace/analyze
func (h *WorkspaceHandler) HandleSubmit(c *fiber.Ctx) error {
	ws := h.workspace(c)

	outcome, err := ws.Submit(c.UserContext(), h.service)
	if errors.Is(err, services.ErrWorkspaceBusy) {
		return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse{
			Error: err.Error(),
		})
	}

	return respondOutcome(c, outcome)
}

// workspace resolves the caller's workspace from its cookie, creating one
// when the cookie is missing or stale.
func (h *WorkspaceHandler) workspace(c *fiber.Ctx) *services.Workspace {
	ws := h.store.GetOrCreate(c.Cookies(workspaceCookie))

	c.Cookie(&fiber.Cookie{
		Name:     workspaceCookie,
		Value:    ws.ID().String(),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return ws
}
