package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/picking-scanner-api/internal/application/dto"
	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
	"github.com/jhoicas/picking-scanner-api/pkg/logger"
)

// scanner contrato del caso de uso de escaneo (lo implementa *picking.ScanUseCase).
type scanner interface {
	ProcessBarcodeScan(ctx context.Context, companyID, pickingID, barcode string) (entity.ScanResult, error)
	UpdateFromBarcode(ctx context.Context, companyID, pickingID, barcode string) (entity.ScanResult, error)
}

// pickingService contrato de las operaciones de pantalla (lo implementa *picking.PickingUseCase).
type pickingService interface {
	OpenScannerAction(ctx context.Context, companyID, pickingID string) (*dto.ScannerActionResponse, error)
	SetScannerMode(ctx context.Context, companyID, pickingID, mode string) error
	Validate(ctx context.Context, companyID, pickingID string) (*dto.PickingSummaryResponse, error)
	GetSummary(ctx context.Context, companyID, pickingID string) (*dto.PickingSummaryResponse, error)
}

// PickingHandler maneja las peticiones HTTP del escáner de pickings (protegido).
type PickingHandler struct {
	scan     scanner
	pickings pickingService
	log      *logger.Logger
}

// NewPickingHandler construye el handler.
func NewPickingHandler(scan scanner, pickings pickingService, log *logger.Logger) *PickingHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &PickingHandler{scan: scan, pickings: pickings, log: log.Component("http")}
}

// pickingParam valida company_id del token y el id de la ruta. ok=false si ya respondió.
func pickingParam(c *fiber.Ctx) (companyID, pickingID string, ok bool, err error) {
	companyID = GetCompanyID(c)
	if companyID == "" {
		return "", "", false, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	pickingID = c.Params("id")
	if _, perr := uuid.Parse(pickingID); perr != nil {
		return "", "", false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de picking inválido"})
	}
	return companyID, pickingID, true, nil
}

func (h *PickingHandler) respondScan(c *fiber.Ctx, res entity.ScanResult, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	out := dto.ToScanResponse(res)
	if out.Error != nil {
		return c.Status(fiber.StatusNotFound).JSON(out)
	}
	return c.JSON(out)
}

// Scan godoc
// @Summary      Procesar escaneo sobre un picking
// @Description  Clasifica el código (ubicación, lote/serie GS1 o producto) y actualiza las líneas. Los rechazos de negocio llegan como warning con HTTP 200.
// @Tags         pickings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string           true  "ID del picking"
// @Param        body  body  dto.ScanRequest  true  "Código escaneado"
// @Success      200   {object}  dto.ScanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ScanResponse
// @Router       /api/pickings/{id}/scan [post]
func (h *PickingHandler) Scan(c *fiber.Ctx) error {
	companyID, pickingID, ok, err := pickingParam(c)
	if !ok {
		return err
	}
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := h.scan.ProcessBarcodeScan(c.UserContext(), companyID, pickingID, in.Barcode)
	return h.respondScan(c, res, err)
}

// ScanMoveLine godoc
// @Summary      Procesar escaneo desde la vista de líneas
// @Tags         pickings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MoveLineScanRequest  true  "Picking y código escaneado"
// @Success      200   {object}  dto.ScanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ScanResponse
// @Router       /api/move-lines/scan [post]
func (h *PickingHandler) ScanMoveLine(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.MoveLineScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if _, err := uuid.Parse(in.PickingID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "picking_id inválido"})
	}
	res, err := h.scan.UpdateFromBarcode(c.UserContext(), companyID, in.PickingID, in.Barcode)
	return h.respondScan(c, res, err)
}

// ScannerAction godoc
// @Summary      Acción para abrir el escáner
// @Tags         pickings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del picking"
// @Success      200  {object}  dto.ScannerActionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pickings/{id}/scanner-action [get]
func (h *PickingHandler) ScannerAction(c *fiber.Ctx) error {
	companyID, pickingID, ok, err := pickingParam(c)
	if !ok {
		return err
	}
	out, err := h.pickings.OpenScannerAction(c.UserContext(), companyID, pickingID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen del picking para el escáner
// @Tags         pickings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del picking"
// @Success      200  {object}  dto.PickingSummaryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pickings/{id}/summary [get]
func (h *PickingHandler) Summary(c *fiber.Ctx) error {
	companyID, pickingID, ok, err := pickingParam(c)
	if !ok {
		return err
	}
	out, err := h.pickings.GetSummary(c.UserContext(), companyID, pickingID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetScannerMode godoc
// @Summary      Cambiar modo del escáner
// @Tags         pickings
// @Security     Bearer
// @Accept       json
// @Param        id    path  string                  true  "ID del picking"
// @Param        body  body  dto.ScannerModeRequest  true  "product | location"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pickings/{id}/scanner-mode [put]
func (h *PickingHandler) SetScannerMode(c *fiber.Ctx) error {
	companyID, pickingID, ok, err := pickingParam(c)
	if !ok {
		return err
	}
	var in dto.ScannerModeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.pickings.SetScannerMode(c.UserContext(), companyID, pickingID, in.Mode); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Validate godoc
// @Summary      Validar picking
// @Tags         pickings
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del picking"
// @Success      200  {object}  dto.PickingSummaryResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/pickings/{id}/validate [post]
func (h *PickingHandler) Validate(c *fiber.Ctx) error {
	companyID, pickingID, ok, err := pickingParam(c)
	if !ok {
		return err
	}
	out, err := h.pickings.Validate(c.UserContext(), companyID, pickingID)
	if err != nil {
		return writeError(c, err)
	}
	h.log.Info().Str("picking_id", pickingID).Str("user_id", GetUserID(c)).Msg("picking validado")
	return c.JSON(out)
}
