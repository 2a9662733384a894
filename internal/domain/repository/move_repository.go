package repository

import (
	"context"

	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
)

// MoveRepository define el puerto de persistencia para movimientos planificados.
type MoveRepository interface {
	ListByPicking(ctx context.Context, pickingID string) ([]*entity.Move, error)
	// FindOpenByProduct devuelve el primer movimiento no done/cancel del producto en el picking (nil si no hay).
	FindOpenByProduct(ctx context.Context, pickingID, productID string) (*entity.Move, error)
	Create(ctx context.Context, move *entity.Move) error
	// CloseOpen pasa a state todos los movimientos abiertos del picking.
	CloseOpen(ctx context.Context, pickingID, state string) error
}
