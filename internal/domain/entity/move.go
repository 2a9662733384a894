package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Move movimiento planificado de un producto dentro de un picking.
type Move struct {
	ID             string
	CompanyID      string
	PickingID      string
	ProductID      string
	Name           string
	ProductUomQty  decimal.Decimal // cantidad planificada
	UnitMeasure    string
	LocationID     string
	LocationDestID string
	State          string // mismos valores que el picking
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsOpen informa si el movimiento todavía acepta cantidades.
func (m *Move) IsOpen() bool {
	return m.State != PickingStateDone && m.State != PickingStateCancel
}
