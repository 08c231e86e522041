package isotope

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
)

// ErrInvalidRecord indicates a record that cannot be placed in a table.
var ErrInvalidRecord = errors.New("isotope: invalid record")

// FractionTolerance bounds how far branch fractions may sum away from 1.
const FractionTolerance = 1e-3

// Branch is one decay mode of a record.
type Branch struct {
	Fraction float64 `yaml:"fraction" json:"fraction"`
	Product  string  `yaml:"product" json:"product"`
}

// Record describes a tabulated radioactive nuclide. Halflife is in years.
type Record struct {
	ID       string   `yaml:"id" json:"id"`
	Halflife float64  `yaml:"halflife" json:"halflife"`
	Branches []Branch `yaml:"branches" json:"branches"`
}

func (r Record) clone() Record {
	c := r
	c.Branches = make([]Branch, len(r.Branches))
	copy(c.Branches, r.Branches)
	return c
}

// DecayConstant returns ln(2)/halflife in 1/years.
func (r Record) DecayConstant() float64 {
	return math.Ln2 / r.Halflife
}

// Validate checks the record invariants.
func (r Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidRecord)
	}
	if !(r.Halflife > 0) || math.IsInf(r.Halflife, 0) {
		return fmt.Errorf("%w: %s: halflife must be positive and finite, got %g", ErrInvalidRecord, r.ID, r.Halflife)
	}
	if len(r.Branches) == 0 {
		return fmt.Errorf("%w: %s: no decay branches", ErrInvalidRecord, r.ID)
	}
	sum := 0.0
	for _, b := range r.Branches {
		if b.Product == "" {
			return fmt.Errorf("%w: %s: branch without product", ErrInvalidRecord, r.ID)
		}
		if !(b.Fraction > 0) || b.Fraction > 1 {
			return fmt.Errorf("%w: %s: branch fraction %g outside (0,1]", ErrInvalidRecord, r.ID, b.Fraction)
		}
		sum += b.Fraction
	}
	if math.Abs(sum-1) > FractionTolerance {
		return fmt.Errorf("%w: %s: branch fractions sum to %g", ErrInvalidRecord, r.ID, sum)
	}
	return nil
}

// Table is an immutable isotope registry. All accessors return copies,
// so a Table is safe for concurrent use.
type Table struct {
	records map[string]Record
	ids     []string
}

// NewTable validates records and builds a table from them.
func NewTable(records []Record) (*Table, error) {
	t := &Table{
		records: make(map[string]Record, len(records)),
		ids:     make([]string, 0, len(records)),
	}
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if _, dup := t.records[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidRecord, r.ID)
		}
		t.records[r.ID] = r.clone()
		t.ids = append(t.ids, r.ID)
	}
	sort.Strings(t.ids)
	return t, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the shipped table, built on first use.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := NewTable(shipped())
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

func (t *Table) Len() int { return len(t.ids) }

// IDs returns the tabulated isotope ids in sorted order.
func (t *Table) IDs() []string {
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

func (t *Table) Has(id string) bool {
	_, ok := t.records[id]
	return ok
}

func (t *Table) Record(id string) (Record, bool) {
	r, ok := t.records[id]
	if !ok {
		return Record{}, false
	}
	return r.clone(), true
}

// Records returns copies of every record, sorted by id.
func (t *Table) Records() []Record {
	out := make([]Record, 0, len(t.ids))
	for _, id := range t.ids {
		out = append(out, t.records[id].clone())
	}
	return out
}

// Branches returns the decay branches of id. ok is false when the
// nuclide is not tabulated, which callers treat as stable.
func (t *Table) Branches(id string) (branches []Branch, ok bool) {
	r, ok := t.records[id]
	if !ok {
		return nil, false
	}
	out := make([]Branch, len(r.Branches))
	copy(out, r.Branches)
	return out, true
}

func (t *Table) Halflife(id string) (float64, bool) {
	r, ok := t.records[id]
	if !ok {
		return 0, false
	}
	return r.Halflife, true
}

// DecayConstant returns ln(2)/halflife for id, or 0 for a stable nuclide.
func (t *Table) DecayConstant(id string) float64 {
	r, ok := t.records[id]
	if !ok {
		return 0
	}
	return r.DecayConstant()
}
