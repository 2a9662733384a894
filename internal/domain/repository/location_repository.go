package repository

import (
	"context"

	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
)

// LocationRepository consulta ubicaciones de stock.
type LocationRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	// GetByBarcode busca por código exacto entre las ubicaciones visibles para la empresa.
	GetByBarcode(ctx context.Context, companyID, barcode string) (*entity.Location, error)
}
