package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
	"github.com/jhoicas/picking-scanner-api/internal/domain/repository"
)

var _ repository.MoveLineRepository = (*MoveLineRepo)(nil)

var moveLineColumns = []string{
	"id", "move_id", "picking_id", "product_id", "lot_id", "quantity", "unit_measure",
	"location_id", "location_dest_id", "created_at", "updated_at",
}

// MoveLineRepo implementación del puerto MoveLineRepository sobre PostgreSQL.
type MoveLineRepo struct {
	q Querier
}

// NewMoveLineRepository construye el adaptador de persistencia para líneas de movimiento.
func NewMoveLineRepository(q Querier) *MoveLineRepo {
	return &MoveLineRepo{q: q}
}

func scanMoveLine(row pgx.Row) (*entity.MoveLine, error) {
	var l entity.MoveLine
	var lotID *string
	err := row.Scan(
		&l.ID, &l.MoveID, &l.PickingID, &l.ProductID, &lotID, &l.Quantity, &l.UnitMeasure,
		&l.LocationID, &l.LocationDestID, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	l.LotID = fromNull(lotID)
	return &l, nil
}

// ListByPicking lista las líneas del picking en orden de creación.
func (r *MoveLineRepo) ListByPicking(ctx context.Context, pickingID string) ([]*entity.MoveLine, error) {
	query, args, err := psql.Select(moveLineColumns...).
		From("stock_move_lines").
		Where(sq.Eq{"picking_id": pickingID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build move lines query: %w", err)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list move lines: %w", err)
	}
	defer rows.Close()

	var list []*entity.MoveLine
	for rows.Next() {
		l, err := scanMoveLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan move line: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// FindByMoveAndLot primera línea del movimiento con ese lote (lotID "" = sin lote).
func (r *MoveLineRepo) FindByMoveAndLot(ctx context.Context, moveID, lotID string) (*entity.MoveLine, error) {
	query, args, err := psql.Select(moveLineColumns...).
		From("stock_move_lines").
		Where(sq.Eq{"move_id": moveID, "lot_id": nullString(lotID)}).
		OrderBy("created_at", "id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build move line query: %w", err)
	}
	l, err := scanMoveLine(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find move line: %w", err)
	}
	return l, nil
}

// Create persiste una línea nueva.
func (r *MoveLineRepo) Create(ctx context.Context, l *entity.MoveLine) error {
	query, args, err := psql.Insert("stock_move_lines").
		Columns(moveLineColumns...).
		Values(l.ID, l.MoveID, l.PickingID, l.ProductID, nullString(l.LotID), l.Quantity, l.UnitMeasure,
			l.LocationID, l.LocationDestID, l.CreatedAt, l.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build move line insert: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert move line: %w", err)
	}
	return nil
}

// Update guarda cantidad y lote de la línea.
func (r *MoveLineRepo) Update(ctx context.Context, l *entity.MoveLine) error {
	query, args, err := psql.Update("stock_move_lines").
		Set("quantity", l.Quantity).
		Set("lot_id", nullString(l.LotID)).
		Set("location_id", l.LocationID).
		Set("updated_at", l.UpdatedAt).
		Where(sq.Eq{"id": l.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build move line update: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update move line: %w", err)
	}
	return nil
}
