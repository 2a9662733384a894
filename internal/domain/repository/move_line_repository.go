package repository

import (
	"context"

	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
)

// MoveLineRepository define el puerto de persistencia para las líneas de cantidad registrada.
type MoveLineRepository interface {
	ListByPicking(ctx context.Context, pickingID string) ([]*entity.MoveLine, error)
	// FindByMoveAndLot devuelve la primera línea del movimiento con ese lote; lotID vacío busca líneas sin lote.
	FindByMoveAndLot(ctx context.Context, moveID, lotID string) (*entity.MoveLine, error)
	Create(ctx context.Context, line *entity.MoveLine) error
	Update(ctx context.Context, line *entity.MoveLine) error
}
