package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
	"github.com/jhoicas/picking-scanner-api/internal/domain/repository"
)

var _ repository.PickingRepository = (*PickingRepo)(nil)

var pickingColumns = []string{
	"id", "company_id", "name", "state", "picking_type_code", "location_id", "location_dest_id",
	"scanner_mode", "scanner_location_id", "created_at", "updated_at",
}

// PickingRepo implementación del puerto PickingRepository sobre PostgreSQL (usable con pool o tx).
type PickingRepo struct {
	q Querier
}

// NewPickingRepository construye el adaptador de persistencia para pickings.
func NewPickingRepository(q Querier) *PickingRepo {
	return &PickingRepo{q: q}
}

func (r *PickingRepo) selectByID(companyID, id string) sq.SelectBuilder {
	return psql.Select(pickingColumns...).
		From("stock_pickings").
		Where(sq.Eq{"id": id, "company_id": companyID})
}

// GetByID obtiene un picking de la empresa; nil si no existe.
func (r *PickingRepo) GetByID(ctx context.Context, companyID, id string) (*entity.Picking, error) {
	return r.get(ctx, r.selectByID(companyID, id))
}

// GetForUpdate igual que GetByID pero bloquea la fila hasta el fin de la transacción.
func (r *PickingRepo) GetForUpdate(ctx context.Context, companyID, id string) (*entity.Picking, error) {
	return r.get(ctx, r.selectForUpdate(companyID, id))
}

func (r *PickingRepo) selectForUpdate(companyID, id string) sq.SelectBuilder {
	return r.selectByID(companyID, id).Suffix("FOR UPDATE")
}

func (r *PickingRepo) get(ctx context.Context, b sq.SelectBuilder) (*entity.Picking, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build picking query: %w", err)
	}
	var p entity.Picking
	var scannerLocation *string
	err = r.q.QueryRow(ctx, query, args...).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.State, &p.PickingTypeCode, &p.LocationID, &p.LocationDestID,
		&p.ScannerMode, &scannerLocation, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get picking: %w", err)
	}
	p.ScannerLocationID = fromNull(scannerLocation)
	return &p, nil
}

// UpdateScanner guarda modo y última ubicación escaneada.
func (r *PickingRepo) UpdateScanner(ctx context.Context, p *entity.Picking) error {
	query, args, err := psql.Update("stock_pickings").
		Set("scanner_mode", p.ScannerMode).
		Set("scanner_location_id", nullString(p.ScannerLocationID)).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build picking update: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update picking scanner: %w", err)
	}
	return nil
}

// UpdateState cambia el estado del picking.
func (r *PickingRepo) UpdateState(ctx context.Context, id, state string) error {
	query, args, err := psql.Update("stock_pickings").
		Set("state", state).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build picking state update: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update picking state: %w", err)
	}
	return nil
}
