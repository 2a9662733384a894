package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/picking-scanner-api/internal/application/picking"
)

var _ picking.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(r picking.Repos) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ReposFor(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// ReposFor arma los repositorios del escáner sobre un Querier (pool o tx).
func ReposFor(q Querier) picking.Repos {
	return picking.Repos{
		Pickings:  NewPickingRepository(q),
		Moves:     NewMoveRepository(q),
		MoveLines: NewMoveLineRepository(q),
		Lots:      NewLotRepository(q),
		Locations: NewLocationRepository(q),
		Products:  NewProductRepository(q),
	}
}
