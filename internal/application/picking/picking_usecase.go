package picking

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/picking-scanner-api/internal/application/dto"
	"github.com/jhoicas/picking-scanner-api/internal/domain"
	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
	"github.com/jhoicas/picking-scanner-api/internal/domain/repository"
)

// Acción de cliente que abre el escáner a pantalla completa.
const (
	ScannerActionType   = "ir.actions.client"
	ScannerActionTag    = "barcode_scanner_stock.scan_action"
	ScannerActionTarget = "fullscreen"
	PickingModel        = "stock.picking"
)

// PickingUseCase operaciones de la pantalla del escáner que no son escaneos:
// resumen, modo, validación y acción de apertura.
type PickingUseCase struct {
	txRunner TxRunner
	settings repository.SettingsRepository
}

// NewPickingUseCase construye el caso de uso.
func NewPickingUseCase(txRunner TxRunner, settings repository.SettingsRepository) *PickingUseCase {
	return &PickingUseCase{txRunner: txRunner, settings: settings}
}

// OpenScannerAction devuelve la acción que abre el escáner para el picking.
func (uc *PickingUseCase) OpenScannerAction(ctx context.Context, companyID, pickingID string) (*dto.ScannerActionResponse, error) {
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		p, err := r.Pickings.GetByID(ctx, companyID, pickingID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrPickingNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.ScannerActionResponse{
		Type:   ScannerActionType,
		Tag:    ScannerActionTag,
		Target: ScannerActionTarget,
		Context: map[string]any{
			"active_model": PickingModel,
			"active_id":    pickingID,
		},
	}, nil
}

// SetScannerMode guarda el modo del escáner (product | location). No altera la precedencia de clasificación.
func (uc *PickingUseCase) SetScannerMode(ctx context.Context, companyID, pickingID, mode string) error {
	if !entity.ValidScannerMode(mode) {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(r Repos) error {
		p, err := r.Pickings.GetForUpdate(ctx, companyID, pickingID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrPickingNotFound
		}
		if p.IsTerminal() {
			return domain.ErrPickingLocked
		}
		p.ScannerMode = mode
		p.UpdatedAt = time.Now()
		return r.Pickings.UpdateScanner(ctx, p)
	})
}

// Validate cierra el picking si tiene cantidades escaneadas y, salvo allow_overage, ninguna
// supera lo planificado. Devuelve el resumen actualizado.
func (uc *PickingUseCase) Validate(ctx context.Context, companyID, pickingID string) (*dto.PickingSummaryResponse, error) {
	settings, err := uc.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	var out *dto.PickingSummaryResponse
	err = uc.txRunner.Run(ctx, func(r Repos) error {
		p, err := r.Pickings.GetForUpdate(ctx, companyID, pickingID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrPickingNotFound
		}
		if err := validateInTx(ctx, r, p, settings); err != nil {
			return err
		}
		out, err = buildSummary(ctx, r, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetSummary devuelve líneas, totales y avance del picking.
func (uc *PickingUseCase) GetSummary(ctx context.Context, companyID, pickingID string) (*dto.PickingSummaryResponse, error) {
	var out *dto.PickingSummaryResponse
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		p, err := r.Pickings.GetByID(ctx, companyID, pickingID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrPickingNotFound
		}
		out, err = buildSummary(ctx, r, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func buildSummary(ctx context.Context, r Repos, p *entity.Picking) (*dto.PickingSummaryResponse, error) {
	moves, err := r.Moves.ListByPicking(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	lines, err := r.MoveLines.ListByPicking(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	names := &nameCache{ctx: ctx, r: r, products: map[string]string{}, lots: map[string]string{}, locations: map[string]string{}}

	items := make([]dto.MoveLineSummary, 0, len(lines))
	for _, l := range lines {
		item := dto.MoveLineSummary{
			ID:          l.ID,
			ProductID:   l.ProductID,
			Quantity:    l.Quantity,
			UnitMeasure: l.UnitMeasure,
		}
		if item.ProductName, err = names.product(l.ProductID); err != nil {
			return nil, err
		}
		if item.Lot, err = names.lot(l.LotID); err != nil {
			return nil, err
		}
		if item.LocationFrom, err = names.location(l.LocationID); err != nil {
			return nil, err
		}
		if item.LocationTo, err = names.location(l.LocationDestID); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	pr := computeProgress(moves, lines)
	percent := 0
	if pr.Expected.GreaterThan(decimal.Zero) {
		percent = int(pr.Scanned.Div(pr.Expected).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	}
	scannedLocation, err := names.location(p.ScannerLocationID)
	if err != nil {
		return nil, err
	}

	return &dto.PickingSummaryResponse{
		ID:              p.ID,
		Name:            p.Name,
		State:           p.State,
		PickingType:     p.PickingTypeCode,
		ScannerMode:     p.ScannerMode,
		ScannedLocation: scannedLocation,
		MoveLines:       items,
		ScannedCount:    pr.Scanned,
		TotalCount:      pr.Expected,
		ProgressPercent: percent,
		CanValidate:     p.IsValidatable() && pr.Scanned.GreaterThan(decimal.Zero),
	}, nil
}

// nameCache evita consultar varias veces el mismo producto, lote o ubicación al armar el resumen.
type nameCache struct {
	ctx       context.Context
	r         Repos
	products  map[string]string
	lots      map[string]string
	locations map[string]string
}

func (c *nameCache) product(id string) (string, error) {
	if id == "" {
		return "", nil
	}
	if n, ok := c.products[id]; ok {
		return n, nil
	}
	p, err := c.r.Products.GetByID(c.ctx, id)
	if err != nil {
		return "", err
	}
	name := ""
	if p != nil {
		name = p.DisplayName()
	}
	c.products[id] = name
	return name, nil
}

func (c *nameCache) lot(id string) (string, error) {
	if id == "" {
		return "", nil
	}
	if n, ok := c.lots[id]; ok {
		return n, nil
	}
	l, err := c.r.Lots.GetByID(c.ctx, id)
	if err != nil {
		return "", err
	}
	name := ""
	if l != nil {
		name = l.Name
	}
	c.lots[id] = name
	return name, nil
}

func (c *nameCache) location(id string) (string, error) {
	if id == "" {
		return "", nil
	}
	if n, ok := c.locations[id]; ok {
		return n, nil
	}
	l, err := c.r.Locations.GetByID(c.ctx, id)
	if err != nil {
		return "", err
	}
	name := ""
	if l != nil {
		name = l.DisplayName()
	}
	c.locations[id] = name
	return name, nil
}
