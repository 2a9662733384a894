package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
	"github.com/jhoicas/picking-scanner-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

var lotColumns = []string{"id", "company_id", "product_id", "name", "expiration_date", "created_at"}

// LotRepo consulta de lotes y series sobre PostgreSQL.
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador de lotes.
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

func scanLot(row pgx.Row) (*entity.Lot, error) {
	var l entity.Lot
	var companyID *string
	if err := row.Scan(&l.ID, &companyID, &l.ProductID, &l.Name, &l.ExpirationDate, &l.CreatedAt); err != nil {
		return nil, err
	}
	l.CompanyID = fromNull(companyID)
	return &l, nil
}

// GetByID obtiene un lote por ID.
func (r *LotRepo) GetByID(ctx context.Context, id string) (*entity.Lot, error) {
	query, args, err := psql.Select(lotColumns...).From("stock_lots").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lot query: %w", err)
	}
	l, err := scanLot(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return l, nil
}

// FindByName busca un lote por nombre exacto, opcionalmente acotado al producto.
func (r *LotRepo) FindByName(ctx context.Context, companyID, name, productID string) (*entity.Lot, error) {
	b := psql.Select(lotColumns...).
		From("stock_lots").
		Where(sq.Eq{"name": name}).
		Where(visibleToCompany("company_id", companyID)).
		OrderBy("created_at", "id").
		Limit(1)
	if productID != "" {
		b = b.Where(sq.Eq{"product_id": productID})
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lot query: %w", err)
	}
	l, err := scanLot(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find lot: %w", err)
	}
	return l, nil
}
