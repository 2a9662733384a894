package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/picking-scanner-api/internal/application/dto"
)

type settingsService interface {
	Get(ctx context.Context) (*dto.ScannerSettingsResponse, error)
	Update(ctx context.Context, in dto.UpdateScannerSettingsRequest) (*dto.ScannerSettingsResponse, error)
}

// SettingsHandler parámetros globales del escáner.
type SettingsHandler struct {
	uc settingsService
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc settingsService) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Parámetros del escáner
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ScannerSettingsResponse
// @Router       /api/settings/scanner [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar parámetros del escáner (solo admin)
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateScannerSettingsRequest  true  "Campos a cambiar"
// @Success      200   {object}  dto.ScannerSettingsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/settings/scanner [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateScannerSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
