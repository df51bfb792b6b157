package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-reviewer/internal/models"
)

// respondOutcome maps an outcome onto the HTTP response: validation
// failures are the caller's fault, transport failures are the upstream's.
func respondOutcome[T any](c *fiber.Ctx, outcome models.Outcome[T]) error {
	switch outcome.Kind {
	case models.OutcomeSuccess:
		return c.JSON(outcome.Value)
	case models.OutcomeValidationFailure:
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: outcome.Message,
			Kind:  outcome.Kind,
		})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse{
			Error: outcome.Message,
			Kind:  models.OutcomeTransportFailure,
		})
	}
}

// ErrorHandler renders errors that escaped a handler.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
