package picking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/picking-scanner-api/internal/application/picking"
	"github.com/jhoicas/picking-scanner-api/internal/domain"
	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
)

func newPickingUseCase(f *fixture) *picking.PickingUseCase {
	return picking.NewPickingUseCase(f.tx, memSettings{f.store})
}

func TestOpenScannerAction(t *testing.T) {
	f := newFixture(t)
	uc := newPickingUseCase(f)

	action, err := uc.OpenScannerAction(f.ctx, companyID, pickingID)
	require.NoError(t, err)
	assert.Equal(t, "ir.actions.client", action.Type)
	assert.Equal(t, "barcode_scanner_stock.scan_action", action.Tag)
	assert.Equal(t, "fullscreen", action.Target)
	assert.Equal(t, "stock.picking", action.Context["active_model"])
	assert.Equal(t, pickingID, action.Context["active_id"])

	_, err = uc.OpenScannerAction(f.ctx, companyID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrPickingNotFound)
}

func TestSetScannerMode(t *testing.T) {
	f := newFixture(t)
	uc := newPickingUseCase(f)

	require.NoError(t, uc.SetScannerMode(f.ctx, companyID, pickingID, entity.ScannerModeLocation))
	assert.Equal(t, entity.ScannerModeLocation, f.store.pickings[pickingID].ScannerMode)

	assert.ErrorIs(t, uc.SetScannerMode(f.ctx, companyID, pickingID, "lote"), domain.ErrInvalidInput)

	f.store.pickings[pickingID].State = entity.PickingStateDone
	assert.ErrorIs(t, uc.SetScannerMode(f.ctx, companyID, pickingID, entity.ScannerModeProduct), domain.ErrPickingLocked)
}

func TestSetScannerMode_NoCambiaLaClasificacion(t *testing.T) {
	f := newFixture(t)
	uc := newPickingUseCase(f)
	require.NoError(t, uc.SetScannerMode(f.ctx, companyID, pickingID, entity.ScannerModeLocation))

	// En modo ubicación un producto se sigue registrando
	requireSuccess(t, f.do(t, widgetGTIN))
}

func TestGetSummary(t *testing.T) {
	f := newFixture(t)
	uc := newPickingUseCase(f)

	sum, err := uc.GetSummary(f.ctx, companyID, pickingID)
	require.NoError(t, err)
	assert.Equal(t, "WH/IN/00001", sum.Name)
	assert.Empty(t, sum.MoveLines)
	assert.Equal(t, 0, sum.ProgressPercent)
	assert.False(t, sum.CanValidate, "sin cantidades no se puede validar")

	f.do(t, "(10)SHELF-01")
	f.do(t, "(01)"+widgetGTIN+"(10)LOT-A")
	f.do(t, widgetGTIN)

	sum, err = uc.GetSummary(f.ctx, companyID, pickingID)
	require.NoError(t, err)
	require.Len(t, sum.MoveLines, 2)
	first := sum.MoveLines[0]
	assert.Equal(t, "[W1] Widget", first.ProductName)
	assert.Equal(t, "LOT-A", first.Lot)
	assert.Equal(t, "WH/Stock/Shelf 1", first.LocationFrom)
	assert.Equal(t, "WH/Stock", first.LocationTo)
	assert.Empty(t, sum.MoveLines[1].Lot)
	assert.Equal(t, "WH/Stock/Shelf 1", sum.ScannedLocation)
	assert.True(t, sum.ScannedCount.Equal(dec(2)))
	assert.True(t, sum.TotalCount.Equal(dec(5)))
	assert.Equal(t, 40, sum.ProgressPercent)
	assert.True(t, sum.CanValidate)
}

func TestGetSummary_PickingInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := newPickingUseCase(f).GetSummary(f.ctx, companyID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrPickingNotFound)
}

func TestValidate_SinCantidades(t *testing.T) {
	f := newFixture(t)
	_, err := newPickingUseCase(f).Validate(f.ctx, companyID, pickingID)
	assert.ErrorIs(t, err, domain.ErrNothingScanned)
	assert.Equal(t, entity.PickingStateAssigned, f.store.pickings[pickingID].State)
}

func TestValidate_Parcial(t *testing.T) {
	f := newFixture(t)
	f.do(t, widgetGTIN)

	sum, err := newPickingUseCase(f).Validate(f.ctx, companyID, pickingID)
	require.NoError(t, err)
	assert.Equal(t, entity.PickingStateDone, sum.State)
	assert.False(t, sum.CanValidate)
	assert.Equal(t, entity.PickingStateDone, f.store.moves[moveID].State)
}

func TestValidate_ExcesoRechazadoSalvoPermitido(t *testing.T) {
	f := newFixture(t)
	f.store.moves[moveID].ProductUomQty = dec(1)
	f.do(t, widgetGTIN)
	f.do(t, widgetGTIN)
	uc := newPickingUseCase(f)

	_, err := uc.Validate(f.ctx, companyID, pickingID)
	assert.ErrorIs(t, err, domain.ErrOverage)
	assert.Equal(t, entity.PickingStateAssigned, f.store.pickings[pickingID].State)

	f.store.settings.AllowOverage = true
	sum, err := uc.Validate(f.ctx, companyID, pickingID)
	require.NoError(t, err)
	assert.Equal(t, entity.PickingStateDone, sum.State)
	assert.Equal(t, 200, sum.ProgressPercent)
}

func TestValidate_PickingTerminado(t *testing.T) {
	f := newFixture(t)
	f.store.pickings[pickingID].State = entity.PickingStateCancel
	_, err := newPickingUseCase(f).Validate(f.ctx, companyID, pickingID)
	assert.ErrorIs(t, err, domain.ErrPickingLocked)
}

func TestScan_ValidacionAutomaticaNoValidaConExceso(t *testing.T) {
	f := newFixture(t)
	f.store.moves[moveID].ProductUomQty = dec(1)
	// Primer escaneo con la validación automática apagada
	f.do(t, widgetGTIN)
	f.store.settings.AutoValidate = true

	s := requireSuccess(t, f.do(t, widgetGTIN))
	assert.Equal(t, "Qty: 2 / 1", s.Message)
	assert.Equal(t, entity.PickingStateAssigned, f.store.pickings[pickingID].State)
}
