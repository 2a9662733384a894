package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MoveLine cantidad registrada contra un Move, opcionalmente etiquetada con un lote/serie.
// Por cada par (move, lote) existe como mucho una línea activa: los escaneos siguientes la incrementan.
type MoveLine struct {
	ID             string
	MoveID         string
	PickingID      string
	ProductID      string
	LotID          string // "" = sin lote
	Quantity       decimal.Decimal
	UnitMeasure    string
	LocationID     string
	LocationDestID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
