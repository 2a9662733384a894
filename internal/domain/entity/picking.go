package entity

import "time"

// Estados del ciclo de vida de un picking (y de sus movimientos).
const (
	PickingStateDraft     = "draft"
	PickingStateWaiting   = "waiting"
	PickingStateConfirmed = "confirmed"
	PickingStateAssigned  = "assigned"
	PickingStateDone      = "done"
	PickingStateCancel    = "cancel"
)

// Código del tipo de operación del picking.
const (
	PickingTypeIncoming = "incoming"
	PickingTypeOutgoing = "outgoing"
	PickingTypeInternal = "internal"
)

// Modo del escáner en pantalla.
const (
	ScannerModeProduct  = "product"
	ScannerModeLocation = "location"
)

// Picking representa un documento de traslado/envío que agrupa movimientos planificados (Move)
// y cantidades registradas (MoveLine). Solo se modifica mientras no esté done/cancel.
type Picking struct {
	ID                string
	CompanyID         string
	Name              string
	State             string
	PickingTypeCode   string // incoming, outgoing, internal
	LocationID        string // ubicación origen por defecto
	LocationDestID    string // ubicación destino por defecto
	ScannerMode       string // product, location
	ScannerLocationID string // última ubicación escaneada ("" = ninguna)
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsTerminal informa si el picking ya no admite cambios.
func (p *Picking) IsTerminal() bool {
	return p.State == PickingStateDone || p.State == PickingStateCancel
}

// IsValidatable estados desde los que la pantalla del escáner ofrece validar.
func (p *Picking) IsValidatable() bool {
	switch p.State {
	case PickingStateAssigned, PickingStateConfirmed, PickingStateWaiting:
		return true
	}
	return false
}

// ValidScannerMode informa si el modo es uno de los soportados.
func ValidScannerMode(mode string) bool {
	return mode == ScannerModeProduct || mode == ScannerModeLocation
}
