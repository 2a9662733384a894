package picking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/picking-scanner-api/internal/domain"
	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
	"github.com/jhoicas/picking-scanner-api/internal/domain/gs1"
	"github.com/jhoicas/picking-scanner-api/internal/domain/repository"
	"github.com/jhoicas/picking-scanner-api/pkg/logger"
)

// ScanUseCase interpreta un código escaneado sobre un picking: ubicación, lote/serie o producto,
// y actualiza las líneas de movimiento en una única transacción.
type ScanUseCase struct {
	txRunner TxRunner
	products ProductLookup
	settings repository.SettingsRepository
	decoder  GS1Decoder
	log      *logger.Logger
	now      func() time.Time
}

// NewScanUseCase construye el caso de uso.
func NewScanUseCase(
	txRunner TxRunner,
	products ProductLookup,
	settings repository.SettingsRepository,
	decoder GS1Decoder,
	log *logger.Logger,
) *ScanUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ScanUseCase{
		txRunner: txRunner,
		products: products,
		settings: settings,
		decoder:  decoder,
		log:      log.Component("scan"),
		now:      time.Now,
	}
}

// ProcessBarcodeScan procesa un escaneo sobre el picking. Los rechazos de negocio vuelven como
// ScanWarning y el picking inexistente como ScanError; error solo ante entrada vacía
// (domain.ErrInvalidInput) o fallos de infraestructura, en cuyo caso la transacción se revierte.
func (uc *ScanUseCase) ProcessBarcodeScan(ctx context.Context, companyID, pickingID, barcode string) (entity.ScanResult, error) {
	barcode = NormalizeBarcode(barcode)
	if barcode == "" || pickingID == "" {
		return nil, domain.ErrInvalidInput
	}

	settings, err := uc.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar parámetros del escáner: %w", err)
	}

	var result entity.ScanResult
	err = uc.txRunner.Run(ctx, func(r Repos) error {
		picking, err := r.Pickings.GetForUpdate(ctx, companyID, pickingID)
		if err != nil {
			return err
		}
		if picking == nil {
			result = entity.ScanError{Message: "Picking not found"}
			return nil
		}
		s := &scanSession{uc: uc, ctx: ctx, r: r, picking: picking, settings: settings}
		result, err = s.onBarcodeScanned(barcode)
		return err
	})
	if err != nil {
		uc.log.Error().Err(err).Str("picking_id", pickingID).Str("company_id", companyID).Msg("escaneo revertido")
		return nil, err
	}

	uc.log.Debug().
		Str("picking_id", pickingID).
		Str("company_id", companyID).
		Str("barcode", barcode).
		Str("outcome", outcome(result)).
		Msg("escaneo procesado")
	return result, nil
}

// UpdateFromBarcode alias de ProcessBarcodeScan usado por la vista de líneas.
func (uc *ScanUseCase) UpdateFromBarcode(ctx context.Context, companyID, pickingID, barcode string) (entity.ScanResult, error) {
	return uc.ProcessBarcodeScan(ctx, companyID, pickingID, barcode)
}

func outcome(r entity.ScanResult) string {
	switch r.(type) {
	case entity.ScanSuccess:
		return "success"
	case entity.ScanWarning:
		return "warning"
	case entity.ScanError:
		return "error"
	}
	return "unknown"
}

// scanSession estado de un escaneo: picking bloqueado, repos de la tx y parámetros leídos al inicio.
type scanSession struct {
	uc       *ScanUseCase
	ctx      context.Context
	r        Repos
	picking  *entity.Picking
	settings entity.ScannerSettings
}

// lineTarget línea resuelta (o creada) para un producto y la identidad de lote del escaneo.
type lineTarget struct {
	move *entity.Move
	line *entity.MoveLine
	lot  *entity.Lot
}

func (s *scanSession) onBarcodeScanned(barcode string) (entity.ScanResult, error) {
	switch s.picking.State {
	case entity.PickingStateDone:
		return entity.ScanWarning{Title: "Picking Done", Message: "Cannot modify a completed picking."}, nil
	case entity.PickingStateCancel:
		return entity.ScanWarning{Title: "Picking Cancelled", Message: "Cannot modify a cancelled picking."}, nil
	}

	data := s.uc.decoder.Parse(barcode)

	// La ubicación tiene precedencia aunque el código también sea GS1 válido
	location, err := s.r.Locations.GetByBarcode(s.ctx, s.picking.CompanyID, barcode)
	if err != nil {
		return nil, err
	}
	if location != nil {
		return s.handleLocation(location)
	}

	if data.HasLotOrSerial() {
		return s.handleLotSerial(barcode, data)
	}
	return s.handleProduct(barcode, data)
}

func (s *scanSession) handleLocation(location *entity.Location) (entity.ScanResult, error) {
	s.picking.ScannerLocationID = location.ID
	s.picking.UpdatedAt = s.uc.now()
	if err := s.r.Pickings.UpdateScanner(s.ctx, s.picking); err != nil {
		return nil, err
	}

	// Etiqueta según el tipo de operación, no según el campo que se acaba de fijar
	label := "Destination"
	if s.picking.PickingTypeCode == entity.PickingTypeOutgoing {
		label = "Source"
	}
	return entity.ScanSuccess{
		Title:   "Location Scanned",
		Message: fmt.Sprintf("%s location set to: %s", label, location.DisplayName()),
	}, nil
}

func (s *scanSession) locationRequired() entity.ScanResult {
	if s.settings.RequireLocation && s.picking.ScannerLocationID == "" {
		return entity.ScanWarning{
			Title:   "Location Required",
			Message: "Scan a location barcode before scanning products.",
		}
	}
	return nil
}

func (s *scanSession) handleProduct(barcode string, data gs1.Result) (entity.ScanResult, error) {
	if w := s.locationRequired(); w != nil {
		return w, nil
	}

	search := barcode
	if data.GTIN != "" {
		search = data.GTIN
	}
	info, err := s.uc.products.FindByBarcodeWithInfo(s.ctx, search, s.picking.CompanyID)
	if err != nil {
		return nil, err
	}
	if info.Product != nil {
		// La búsqueda puede venir de caché: el estado vigente se confirma dentro de la tx
		current, err := s.r.Products.GetByID(s.ctx, info.Product.ID)
		if err != nil {
			return nil, err
		}
		switch {
		case current == nil:
			info = ProductLookupResult{Error: fmt.Sprintf("No product found for barcode: %s", search)}
		case !current.Active:
			info = ProductLookupResult{Error: fmt.Sprintf("Product %s is archived.", current.DisplayName())}
		default:
			info.Product = current
		}
	}
	if info.Product == nil {
		if !s.settings.AllowNewProducts {
			return entity.ScanWarning{
				Title: "Product Not Found",
				Message: fmt.Sprintf(
					"No product found for barcode: %s. Enable \"Add new products\" to allow adding products not in the picking.",
					barcode),
			}, nil
		}
		msg := info.Error
		if msg == "" {
			msg = fmt.Sprintf("No product found for barcode: %s", barcode)
		}
		return entity.ScanWarning{Title: "Product Not Found", Message: msg}, nil
	}
	product := info.Product

	target, warning, err := s.findOrCreateMoveLine(product, data)
	if err != nil || warning != nil {
		return warning, err
	}

	line := target.line
	switch {
	case data.Serial != "" && target.lot != nil:
		// Una serie identifica una unidad: nunca acumula
		line.Quantity = decimal.NewFromInt(1)
	case s.settings.AutoIncrement:
		line.Quantity = line.Quantity.Add(decimal.NewFromInt(1))
	default:
		line.Quantity = decimal.NewFromInt(1)
	}
	line.UpdatedAt = s.uc.now()
	if err := s.r.MoveLines.Update(s.ctx, line); err != nil {
		return nil, err
	}

	success, err := s.successNotification(product, target, data)
	if err != nil {
		return nil, err
	}
	return s.afterSuccess(success)
}

// findOrCreateMoveLine busca el movimiento abierto del producto (o lo crea si la política lo permite)
// y dentro de él la línea de la identidad de lote del escaneo; si no existe, la crea con cantidad 0.
func (s *scanSession) findOrCreateMoveLine(product *entity.Product, data gs1.Result) (*lineTarget, entity.ScanResult, error) {
	move, err := s.r.Moves.FindOpenByProduct(s.ctx, s.picking.ID, product.ID)
	if err != nil {
		return nil, nil, err
	}
	now := s.uc.now()

	if move == nil {
		if !s.settings.AllowNewProducts {
			return nil, entity.ScanWarning{
				Title: "Product Not in Picking",
				Message: fmt.Sprintf(
					"Product \"%s\" is not expected in this picking. Enable \"Add new products\" to allow adding it.",
					product.DisplayName()),
			}, nil
		}
		move = &entity.Move{
			ID:             uuid.New().String(),
			CompanyID:      s.picking.CompanyID,
			PickingID:      s.picking.ID,
			ProductID:      product.ID,
			Name:           product.DisplayName(),
			ProductUomQty:  decimal.NewFromInt(1),
			UnitMeasure:    product.UnitMeasure,
			LocationID:     s.picking.LocationID,
			LocationDestID: s.picking.LocationDestID,
			State:          entity.PickingStateDraft,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.r.Moves.Create(s.ctx, move); err != nil {
			return nil, nil, err
		}
	}

	// Un lote/serie que no existe no se crea: la cantidad va a la línea sin lote
	var lot *entity.Lot
	if name := data.LotName(); name != "" {
		lot, err = s.r.Lots.FindByName(s.ctx, s.picking.CompanyID, name, product.ID)
		if err != nil {
			return nil, nil, err
		}
	}
	lotID := ""
	if lot != nil {
		lotID = lot.ID
	}

	line, err := s.r.MoveLines.FindByMoveAndLot(s.ctx, move.ID, lotID)
	if err != nil {
		return nil, nil, err
	}
	if line == nil {
		locationID := s.picking.ScannerLocationID
		if locationID == "" {
			locationID = move.LocationID
		}
		line = &entity.MoveLine{
			ID:             uuid.New().String(),
			MoveID:         move.ID,
			PickingID:      s.picking.ID,
			ProductID:      product.ID,
			LotID:          lotID,
			Quantity:       decimal.Zero,
			UnitMeasure:    product.UnitMeasure,
			LocationID:     locationID,
			LocationDestID: move.LocationDestID,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.r.MoveLines.Create(s.ctx, line); err != nil {
			return nil, nil, err
		}
	}
	return &lineTarget{move: move, line: line, lot: lot}, nil, nil
}

func (s *scanSession) handleLotSerial(barcode string, data gs1.Result) (entity.ScanResult, error) {
	// Con GTIN es un escaneo completo producto+lote: el lote se resuelve dentro del upsert
	if data.GTIN != "" {
		return s.handleProduct(barcode, data)
	}
	if w := s.locationRequired(); w != nil {
		return w, nil
	}

	lotName := data.LotName()
	isSerial := data.Serial != ""

	notFound := entity.ScanWarning{
		Title:   "Lot/Serial Not Found",
		Message: fmt.Sprintf("No existing lot/serial found with name: %s. Scan the product barcode first.", lotName),
	}
	lot, err := s.r.Lots.FindByName(s.ctx, s.picking.CompanyID, lotName, "")
	if err != nil {
		return nil, err
	}
	if lot == nil {
		return notFound, nil
	}
	product, err := s.r.Products.GetByID(s.ctx, lot.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return notFound, nil
	}

	target, warning, err := s.findOrCreateMoveLine(product, data)
	if err != nil || warning != nil {
		return warning, err
	}

	line := target.line
	line.LotID = lot.ID
	if isSerial {
		line.Quantity = decimal.NewFromInt(1)
	} else {
		line.Quantity = line.Quantity.Add(decimal.NewFromInt(1))
	}
	line.UpdatedAt = s.uc.now()
	if err := s.r.MoveLines.Update(s.ctx, line); err != nil {
		return nil, err
	}

	kind := "Lot"
	if isSerial {
		kind = "Serial"
	}
	return s.afterSuccess(entity.ScanSuccess{
		Title:   "Lot/Serial Scanned",
		Message: fmt.Sprintf("%s: %s | Product: %s", kind, lotName, product.DisplayName()),
	})
}

func (s *scanSession) successNotification(product *entity.Product, target *lineTarget, data gs1.Result) (entity.ScanSuccess, error) {
	parts := []string{fmt.Sprintf("Qty: %s / %s", target.line.Quantity.String(), target.move.ProductUomQty.String())}

	if s.picking.ScannerLocationID != "" {
		loc, err := s.r.Locations.GetByID(s.ctx, s.picking.ScannerLocationID)
		if err != nil {
			return entity.ScanSuccess{}, err
		}
		if loc != nil {
			parts = append(parts, "Location: "+loc.Name)
		}
	}

	if target.line.LotID != "" {
		lot := target.lot
		if lot == nil || lot.ID != target.line.LotID {
			var err error
			if lot, err = s.r.Lots.GetByID(s.ctx, target.line.LotID); err != nil {
				return entity.ScanSuccess{}, err
			}
		}
		if lot != nil {
			parts = append(parts, "Lot: "+lot.Name)
		}
	}

	if data.Expiry != nil {
		parts = append(parts, "Expiry: "+data.Expiry.Format("2006-01-02"))
	}

	return entity.ScanSuccess{Title: product.DisplayName(), Message: strings.Join(parts, " | ")}, nil
}

// afterSuccess aplica la validación automática cuando está activa y el picking quedó completo.
func (s *scanSession) afterSuccess(success entity.ScanSuccess) (entity.ScanResult, error) {
	if !s.settings.AutoValidate {
		return success, nil
	}
	moves, err := s.r.Moves.ListByPicking(s.ctx, s.picking.ID)
	if err != nil {
		return nil, err
	}
	lines, err := s.r.MoveLines.ListByPicking(s.ctx, s.picking.ID)
	if err != nil {
		return nil, err
	}
	pr := computeProgress(moves, lines)
	if !pr.Complete || (pr.Overage && !s.settings.AllowOverage) {
		return success, nil
	}
	if err := validateInTx(s.ctx, s.r, s.picking, s.settings); err != nil {
		return nil, err
	}
	success.Message += " | Picking validated"
	return success, nil
}
