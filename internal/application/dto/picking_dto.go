package dto

import "github.com/shopspring/decimal"

// ScannerActionResponse acción de cliente que abre la pantalla del escáner para un picking.
type ScannerActionResponse struct {
	Type    string         `json:"type"`
	Tag     string         `json:"tag"`
	Target  string         `json:"target"`
	Context map[string]any `json:"context"`
}

// ScannerModeRequest body para PUT /api/pickings/{id}/scanner-mode.
type ScannerModeRequest struct {
	Mode string `json:"mode"` // product | location
}

// MoveLineSummary línea registrada tal como la muestra el escáner.
type MoveLineSummary struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitMeasure  string          `json:"uom"`
	Lot          string          `json:"lot,omitempty"`
	LocationFrom string          `json:"location_from"`
	LocationTo   string          `json:"location_to"`
}

// PickingSummaryResponse estado del picking para la pantalla del escáner.
type PickingSummaryResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	State           string            `json:"state"`
	PickingType     string            `json:"picking_type"`
	ScannerMode     string            `json:"scanner_mode"`
	ScannedLocation string            `json:"scanned_location,omitempty"`
	MoveLines       []MoveLineSummary `json:"move_lines"`
	ScannedCount    decimal.Decimal   `json:"scanned_count"`
	TotalCount      decimal.Decimal   `json:"total_count"`
	ProgressPercent int               `json:"progress_percent"`
	CanValidate     bool              `json:"can_validate"`
}
