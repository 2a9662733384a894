package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
	"github.com/jhoicas/picking-scanner-api/internal/domain/repository"
)

var _ repository.MoveRepository = (*MoveRepo)(nil)

var moveColumns = []string{
	"id", "company_id", "picking_id", "product_id", "name", "product_uom_qty", "unit_measure",
	"location_id", "location_dest_id", "state", "created_at", "updated_at",
}

var closedStates = []string{entity.PickingStateDone, entity.PickingStateCancel}

// MoveRepo implementación del puerto MoveRepository sobre PostgreSQL.
type MoveRepo struct {
	q Querier
}

// NewMoveRepository construye el adaptador de persistencia para movimientos.
func NewMoveRepository(q Querier) *MoveRepo {
	return &MoveRepo{q: q}
}

func scanMove(row pgx.Row) (*entity.Move, error) {
	var m entity.Move
	err := row.Scan(
		&m.ID, &m.CompanyID, &m.PickingID, &m.ProductID, &m.Name, &m.ProductUomQty, &m.UnitMeasure,
		&m.LocationID, &m.LocationDestID, &m.State, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByPicking lista los movimientos del picking en orden de creación.
func (r *MoveRepo) ListByPicking(ctx context.Context, pickingID string) ([]*entity.Move, error) {
	query, args, err := psql.Select(moveColumns...).
		From("stock_moves").
		Where(sq.Eq{"picking_id": pickingID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build moves query: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list moves: %w", err)
	}
	defer rows.Close()

	var list []*entity.Move
	for rows.Next() {
		m, err := scanMove(rows)
		if err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// FindOpenByProduct primer movimiento abierto del producto en el picking.
func (r *MoveRepo) FindOpenByProduct(ctx context.Context, pickingID, productID string) (*entity.Move, error) {
	query, args, err := psql.Select(moveColumns...).
		From("stock_moves").
		Where(sq.Eq{"picking_id": pickingID, "product_id": productID}).
		Where(sq.NotEq{"state": closedStates}).
		OrderBy("created_at", "id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build open move query: %w", err)
	}
	m, err := scanMove(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find open move: %w", err)
	}
	return m, nil
}

// Create persiste un movimiento nuevo.
func (r *MoveRepo) Create(ctx context.Context, m *entity.Move) error {
	query, args, err := psql.Insert("stock_moves").
		Columns(moveColumns...).
		Values(m.ID, m.CompanyID, m.PickingID, m.ProductID, m.Name, m.ProductUomQty, m.UnitMeasure,
			m.LocationID, m.LocationDestID, m.State, m.CreatedAt, m.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build move insert: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert move: %w", err)
	}
	return nil
}

// CloseOpen pasa a state los movimientos no terminados del picking.
func (r *MoveRepo) CloseOpen(ctx context.Context, pickingID, state string) error {
	query, args, err := psql.Update("stock_moves").
		Set("state", state).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"picking_id": pickingID}).
		Where(sq.NotEq{"state": closedStates}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build close moves: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("close moves: %w", err)
	}
	return nil
}
