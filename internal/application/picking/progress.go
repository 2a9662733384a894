package picking

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/picking-scanner-api/internal/domain"
	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
)

// progress avance de un picking: cantidades escaneadas frente a planificadas por movimiento abierto.
type progress struct {
	Scanned  decimal.Decimal
	Expected decimal.Decimal
	Complete bool // todos los movimientos abiertos alcanzan su cantidad planificada
	Overage  bool // algún movimiento abierto supera su cantidad planificada
}

func computeProgress(moves []*entity.Move, lines []*entity.MoveLine) progress {
	byMove := make(map[string]decimal.Decimal, len(moves))
	for _, l := range lines {
		byMove[l.MoveID] = byMove[l.MoveID].Add(l.Quantity)
	}

	p := progress{Scanned: decimal.Zero, Expected: decimal.Zero}
	open := 0
	complete := true
	for _, m := range moves {
		if m.State == entity.PickingStateCancel {
			continue
		}
		p.Expected = p.Expected.Add(m.ProductUomQty)
		p.Scanned = p.Scanned.Add(byMove[m.ID])
		if !m.IsOpen() {
			continue
		}
		open++
		scanned := byMove[m.ID]
		if scanned.LessThan(m.ProductUomQty) {
			complete = false
		}
		if scanned.GreaterThan(m.ProductUomQty) {
			p.Overage = true
		}
	}
	p.Complete = open > 0 && complete
	return p
}

// validateInTx cierra el picking y sus movimientos abiertos dentro de la transacción del llamador.
func validateInTx(ctx context.Context, r Repos, picking *entity.Picking, settings entity.ScannerSettings) error {
	if picking.IsTerminal() {
		return domain.ErrPickingLocked
	}
	moves, err := r.Moves.ListByPicking(ctx, picking.ID)
	if err != nil {
		return err
	}
	lines, err := r.MoveLines.ListByPicking(ctx, picking.ID)
	if err != nil {
		return err
	}
	pr := computeProgress(moves, lines)
	if !pr.Scanned.GreaterThan(decimal.Zero) {
		return domain.ErrNothingScanned
	}
	if pr.Overage && !settings.AllowOverage {
		return domain.ErrOverage
	}
	if err := r.Moves.CloseOpen(ctx, picking.ID, entity.PickingStateDone); err != nil {
		return err
	}
	if err := r.Pickings.UpdateState(ctx, picking.ID, entity.PickingStateDone); err != nil {
		return err
	}
	picking.State = entity.PickingStateDone
	return nil
}
