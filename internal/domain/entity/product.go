package entity

import "time"

// Seguimiento de producto.
const (
	TrackingNone   = "none"
	TrackingLot    = "lot"
	TrackingSerial = "serial"
)

// Product producto almacenable identificado por código de barras (EAN/GTIN).
type Product struct {
	ID          string
	CompanyID   string // "" = compartido entre empresas
	Name        string
	DefaultCode string // referencia interna / SKU
	Barcode     string
	UnitMeasure string
	Tracking    string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayName nombre con la referencia interna delante, si existe.
func (p *Product) DisplayName() string {
	if p.DefaultCode != "" {
		return "[" + p.DefaultCode + "] " + p.Name
	}
	return p.Name
}
