package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/picking-scanner-api/internal/application/picking"
	"github.com/jhoicas/picking-scanner-api/internal/application/usecase"
	"github.com/jhoicas/picking-scanner-api/pkg/jwt"
	"github.com/jhoicas/picking-scanner-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ScanUC     *picking.ScanUseCase
	PickingUC  *picking.PickingUseCase
	SettingsUC *usecase.SettingsUseCase
	JWTSecret  string
	Logger     *logger.Logger
}

// Router registra las rutas de la API. Todas requieren Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	operators := RequireRole(jwt.RoleAdmin, jwt.RoleBodeguero)

	pickingHandler := NewPickingHandler(deps.ScanUC, deps.PickingUC, deps.Logger)
	pickings := api.Group("/pickings", operators)
	pickings.Get("/:id/scanner-action", pickingHandler.ScannerAction)
	pickings.Get("/:id/summary", pickingHandler.Summary)
	pickings.Post("/:id/scan", pickingHandler.Scan)
	pickings.Put("/:id/scanner-mode", pickingHandler.SetScannerMode)
	pickings.Post("/:id/validate", pickingHandler.Validate)

	api.Post("/move-lines/scan", operators, pickingHandler.ScanMoveLine)

	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings := api.Group("/settings/scanner")
	settings.Get("/", operators, settingsHandler.Get)
	settings.Put("/", RequireRole(jwt.RoleAdmin), settingsHandler.Update)
}
