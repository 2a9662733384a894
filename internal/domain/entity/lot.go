package entity

import "time"

// Lot identidad de lote o número de serie de un producto. Este servicio nunca los crea.
type Lot struct {
	ID             string
	CompanyID      string // "" = visible para todas las empresas
	ProductID      string
	Name           string
	ExpirationDate *time.Time
	CreatedAt      time.Time
}
