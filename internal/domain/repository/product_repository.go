package repository

import (
	"context"

	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
)

// ProductRepository define el puerto de consulta de productos (DIP).
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// FindByBarcode devuelve los productos (activos o archivados) visibles para la empresa con ese código.
	FindByBarcode(ctx context.Context, companyID, barcode string) ([]*entity.Product, error)
}
