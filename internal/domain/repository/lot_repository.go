package repository

import (
	"context"

	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
)

// LotRepository consulta lotes/series existentes (visibles para la empresa o sin empresa).
type LotRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Lot, error)
	// FindByName busca por nombre exacto; productID vacío no filtra por producto.
	FindByName(ctx context.Context, companyID, name, productID string) (*entity.Lot, error)
}
