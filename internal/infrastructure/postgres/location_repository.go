package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
	"github.com/jhoicas/picking-scanner-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

var locationColumns = []string{"id", "company_id", "name", "complete_name", "barcode", "active"}

// LocationRepo consulta de ubicaciones sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

func scanLocation(row pgx.Row) (*entity.Location, error) {
	var l entity.Location
	var companyID, barcode *string
	if err := row.Scan(&l.ID, &companyID, &l.Name, &l.CompleteName, &barcode, &l.Active); err != nil {
		return nil, err
	}
	l.CompanyID = fromNull(companyID)
	l.Barcode = fromNull(barcode)
	return &l, nil
}

func (r *LocationRepo) one(ctx context.Context, b sq.SelectBuilder) (*entity.Location, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build location query: %w", err)
	}
	l, err := scanLocation(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

// GetByID obtiene una ubicación por ID.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	return r.one(ctx, psql.Select(locationColumns...).From("stock_locations").Where(sq.Eq{"id": id}))
}

// GetByBarcode primera ubicación activa con ese código visible para la empresa.
func (r *LocationRepo) GetByBarcode(ctx context.Context, companyID, barcode string) (*entity.Location, error) {
	return r.one(ctx, psql.Select(locationColumns...).
		From("stock_locations").
		Where(sq.Eq{"barcode": barcode, "active": true}).
		Where(visibleToCompany("company_id", companyID)).
		OrderBy("id").
		Limit(1))
}
