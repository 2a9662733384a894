package repository

import (
	"context"

	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
)

// PickingRepository define el puerto de persistencia para Picking. Todas las lecturas
// están acotadas a la empresa: un picking de otra empresa se trata como inexistente.
type PickingRepository interface {
	GetByID(ctx context.Context, companyID, id string) (*entity.Picking, error)
	// GetForUpdate bloquea la fila del picking (SELECT FOR UPDATE) para serializar escaneos concurrentes.
	GetForUpdate(ctx context.Context, companyID, id string) (*entity.Picking, error)
	UpdateScanner(ctx context.Context, picking *entity.Picking) error
	UpdateState(ctx context.Context, id, state string) error
}
