package picking_test

import (
	"context"
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/picking-scanner-api/internal/application/picking"
	"github.com/jhoicas/picking-scanner-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria que implementa todos los puertos de picking.Repos
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	pickings  map[string]*entity.Picking
	moves     map[string]*entity.Move
	lines     map[string]*entity.MoveLine
	lots      map[string]*entity.Lot
	locations map[string]*entity.Location
	products  map[string]*entity.Product
	settings  entity.ScannerSettings

	// orden de inserción para resultados deterministas
	seq map[string]int
	n   int

	failCreateLine error
}

func newMemStore() *memStore {
	return &memStore{
		pickings:  map[string]*entity.Picking{},
		moves:     map[string]*entity.Move{},
		lines:     map[string]*entity.MoveLine{},
		lots:      map[string]*entity.Lot{},
		locations: map[string]*entity.Location{},
		products:  map[string]*entity.Product{},
		settings:  entity.DefaultScannerSettings(),
		seq:       map[string]int{},
	}
}

func (s *memStore) touch(id string) {
	if _, ok := s.seq[id]; !ok {
		s.n++
		s.seq[id] = s.n
	}
}

func (s *memStore) addPicking(p *entity.Picking)   { s.touch(p.ID); s.pickings[p.ID] = p }
func (s *memStore) addMove(m *entity.Move)         { s.touch(m.ID); s.moves[m.ID] = m }
func (s *memStore) addLine(l *entity.MoveLine)     { s.touch(l.ID); s.lines[l.ID] = l }
func (s *memStore) addLot(l *entity.Lot)           { s.lots[l.ID] = l }
func (s *memStore) addLocation(l *entity.Location) { s.locations[l.ID] = l }
func (s *memStore) addProduct(p *entity.Product)   { s.touch(p.ID); s.products[p.ID] = p }

// snapshot copia profunda usada por el TxRunner para simular Rollback.
func (s *memStore) snapshot() *memStore {
	c := newMemStore()
	c.n = s.n
	for k, v := range s.seq {
		c.seq[k] = v
	}
	for k, v := range s.pickings {
		cp := *v
		c.pickings[k] = &cp
	}
	for k, v := range s.moves {
		cp := *v
		c.moves[k] = &cp
	}
	for k, v := range s.lines {
		cp := *v
		c.lines[k] = &cp
	}
	c.lots, c.locations, c.products, c.settings = s.lots, s.locations, s.products, s.settings
	c.failCreateLine = s.failCreateLine
	return c
}

func (s *memStore) restore(from *memStore) {
	s.pickings, s.moves, s.lines, s.seq, s.n = from.pickings, from.moves, from.lines, from.seq, from.n
}

func (s *memStore) ordered(ids []string) []string {
	sort.Slice(ids, func(i, j int) bool { return s.seq[ids[i]] < s.seq[ids[j]] })
	return ids
}

func (s *memStore) linesOf(pickingID string) []*entity.MoveLine {
	var ids []string
	for id, l := range s.lines {
		if l.PickingID == pickingID {
			ids = append(ids, id)
		}
	}
	out := make([]*entity.MoveLine, 0, len(ids))
	for _, id := range s.ordered(ids) {
		out = append(out, s.lines[id])
	}
	return out
}

func (s *memStore) movesOf(pickingID string) []*entity.Move {
	var ids []string
	for id, m := range s.moves {
		if m.PickingID == pickingID {
			ids = append(ids, id)
		}
	}
	out := make([]*entity.Move, 0, len(ids))
	for _, id := range s.ordered(ids) {
		out = append(out, s.moves[id])
	}
	return out
}

// ─── Pickings ────────────────────────────────────────────────────────────────

type memPickings struct{ s *memStore }

func (r memPickings) GetByID(_ context.Context, companyID, id string) (*entity.Picking, error) {
	p, ok := r.s.pickings[id]
	if !ok || p.CompanyID != companyID {
		return nil, nil
	}
	return p, nil
}

func (r memPickings) GetForUpdate(ctx context.Context, companyID, id string) (*entity.Picking, error) {
	return r.GetByID(ctx, companyID, id)
}

func (r memPickings) UpdateScanner(_ context.Context, p *entity.Picking) error {
	r.s.pickings[p.ID] = p
	return nil
}

func (r memPickings) UpdateState(_ context.Context, id, state string) error {
	r.s.pickings[id].State = state
	return nil
}

// ─── Moves ───────────────────────────────────────────────────────────────────

type memMoves struct{ s *memStore }

func (r memMoves) ListByPicking(_ context.Context, pickingID string) ([]*entity.Move, error) {
	return r.s.movesOf(pickingID), nil
}

func (r memMoves) FindOpenByProduct(_ context.Context, pickingID, productID string) (*entity.Move, error) {
	for _, m := range r.s.movesOf(pickingID) {
		if m.ProductID == productID && m.IsOpen() {
			return m, nil
		}
	}
	return nil, nil
}

func (r memMoves) Create(_ context.Context, m *entity.Move) error {
	r.s.addMove(m)
	return nil
}

func (r memMoves) CloseOpen(_ context.Context, pickingID, state string) error {
	for _, m := range r.s.movesOf(pickingID) {
		if m.IsOpen() {
			m.State = state
		}
	}
	return nil
}

// ─── MoveLines ───────────────────────────────────────────────────────────────

type memMoveLines struct{ s *memStore }

func (r memMoveLines) ListByPicking(_ context.Context, pickingID string) ([]*entity.MoveLine, error) {
	return r.s.linesOf(pickingID), nil
}

func (r memMoveLines) FindByMoveAndLot(_ context.Context, moveID, lotID string) (*entity.MoveLine, error) {
	var ids []string
	for id, l := range r.s.lines {
		if l.MoveID == moveID && l.LotID == lotID {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return r.s.lines[r.s.ordered(ids)[0]], nil
}

func (r memMoveLines) Create(_ context.Context, l *entity.MoveLine) error {
	if r.s.failCreateLine != nil {
		return r.s.failCreateLine
	}
	r.s.addLine(l)
	return nil
}

func (r memMoveLines) Update(_ context.Context, l *entity.MoveLine) error {
	r.s.lines[l.ID] = l
	return nil
}

// ─── Lots, Locations, Products ───────────────────────────────────────────────

type memLots struct{ s *memStore }

func (r memLots) GetByID(_ context.Context, id string) (*entity.Lot, error) {
	return r.s.lots[id], nil
}

func (r memLots) FindByName(_ context.Context, companyID, name, productID string) (*entity.Lot, error) {
	for _, l := range r.s.lots {
		if !visibleTo(l.CompanyID, companyID) {
			continue
		}
		if l.Name == name && (productID == "" || l.ProductID == productID) {
			return l, nil
		}
	}
	return nil, nil
}

type memLocations struct{ s *memStore }

func (r memLocations) GetByID(_ context.Context, id string) (*entity.Location, error) {
	return r.s.locations[id], nil
}

func (r memLocations) GetByBarcode(_ context.Context, companyID, barcode string) (*entity.Location, error) {
	for _, l := range r.s.locations {
		if l.Active && l.Barcode == barcode && visibleTo(l.CompanyID, companyID) {
			return l, nil
		}
	}
	return nil, nil
}

type memProducts struct{ s *memStore }

func (r memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.s.products[id], nil
}

func (r memProducts) FindByBarcode(_ context.Context, companyID, barcode string) ([]*entity.Product, error) {
	var ids []string
	for id, p := range r.s.products {
		if p.Barcode == barcode && visibleTo(p.CompanyID, companyID) {
			ids = append(ids, id)
		}
	}
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range r.s.ordered(ids) {
		out = append(out, r.s.products[id])
	}
	return out, nil
}

// ─── Settings ────────────────────────────────────────────────────────────────

type memSettings struct{ s *memStore }

func (r memSettings) Get(context.Context) (entity.ScannerSettings, error) { return r.s.settings, nil }

func (r memSettings) Save(_ context.Context, v entity.ScannerSettings) error {
	r.s.settings = v
	return nil
}

// ─── TxRunner ────────────────────────────────────────────────────────────────

// memTxRunner ejecuta fn sobre el almacén y restaura la copia previa si fn falla.
type memTxRunner struct {
	s         *memStore
	rollbacks int
}

func (t *memTxRunner) Run(_ context.Context, fn func(r picking.Repos) error) error {
	before := t.s.snapshot()
	err := fn(picking.Repos{
		Pickings:  memPickings{t.s},
		Moves:     memMoves{t.s},
		MoveLines: memMoveLines{t.s},
		Lots:      memLots{t.s},
		Locations: memLocations{t.s},
		Products:  memProducts{t.s},
	})
	if err != nil {
		t.rollbacks++
		t.s.restore(before)
	}
	return err
}

// visibleTo replica el filtro company_id IS NULL OR company_id = $1 de los repositorios.
func visibleTo(owner, companyID string) bool { return owner == "" || owner == companyID }

var errBoom = errors.New("fallo de BD simulado")

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
