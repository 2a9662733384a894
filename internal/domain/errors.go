package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los rechazos de un escaneo no son errores: viajan como entity.ScanWarning.
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrPickingNotFound = errors.New("picking no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrPickingLocked   = errors.New("el picking está terminado o cancelado")
	ErrNothingScanned  = errors.New("no hay cantidades escaneadas en el picking")
	ErrOverage         = errors.New("cantidad escaneada supera la planificada")
)
