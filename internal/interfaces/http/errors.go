package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/picking-scanner-api/internal/application/dto"
	"github.com/jhoicas/picking-scanner-api/internal/domain"
)

// writeError traduce errores de dominio a respuesta HTTP; el resto es 500.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrPickingNotFound), errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrPickingLocked):
		status, code = fiber.StatusConflict, "PICKING_LOCKED"
	case errors.Is(err, domain.ErrNothingScanned):
		status, code = fiber.StatusUnprocessableEntity, "NOTHING_SCANNED"
	case errors.Is(err, domain.ErrOverage):
		status, code = fiber.StatusUnprocessableEntity, "OVERAGE"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}
