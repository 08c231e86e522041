package decay

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Charge is the starting quantity of one isotope, typically in moles.
type Charge struct {
	ID     string  `yaml:"id" json:"id"`
	Amount float64 `yaml:"amount" json:"amount"`
}

// Mixture is an insertion-ordered set of starting quantities. Solvers never
// modify a Mixture; they work on a ChargeMap copied from it.
type Mixture struct {
	order   []string
	amounts map[string]float64
}

func NewMixture(charges ...Charge) Mixture {
	m := Mixture{amounts: make(map[string]float64, len(charges))}
	for _, c := range charges {
		m.Set(c.ID, c.Amount)
	}
	return m
}

// Set records amount for id. An existing id keeps its position.
func (m *Mixture) Set(id string, amount float64) {
	if m.amounts == nil {
		m.amounts = make(map[string]float64)
	}
	if _, ok := m.amounts[id]; !ok {
		m.order = append(m.order, id)
	}
	m.amounts[id] = amount
}

func (m Mixture) Get(id string) float64 { return m.amounts[id] }
func (m Mixture) Len() int              { return len(m.order) }

func (m Mixture) IDs() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

func (m Mixture) Charges() []Charge {
	out := make([]Charge, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, Charge{ID: id, Amount: m.amounts[id]})
	}
	return out
}

func (m Mixture) Clone() Mixture {
	return NewMixture(m.Charges()...)
}

// Scale returns a copy with every amount multiplied by f.
func (m Mixture) Scale(f float64) Mixture {
	out := m.Clone()
	for id, v := range out.amounts {
		out.amounts[id] = v * f
	}
	return out
}

func (m Mixture) Validate() error {
	for _, id := range m.order {
		v := m.amounts[id]
		if id == "" {
			return fmt.Errorf("%w: empty isotope id", ErrInvalidCharge)
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s=%g", ErrInvalidCharge, id, v)
		}
	}
	return nil
}

// UnmarshalYAML decodes a mapping of isotope id to amount, keeping the
// document's key order.
func (m *Mixture) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: mixture must be a mapping of isotope to amount", value.Line)
	}
	out := Mixture{amounts: make(map[string]float64, len(value.Content)/2)}
	for i := 0; i+1 < len(value.Content); i += 2 {
		var amount float64
		if err := value.Content[i+1].Decode(&amount); err != nil {
			return fmt.Errorf("line %d: %s: %w", value.Content[i+1].Line, value.Content[i].Value, err)
		}
		out.Set(value.Content[i].Value, amount)
	}
	*m = out
	return nil
}

func (m Mixture) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range m.Charges() {
		var v yaml.Node
		if err := v.Encode(c.Amount); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: c.ID},
			&v,
		)
	}
	return node, nil
}

// ChargeMap is the working quantity pool of one aggregation. Take hands an
// isotope's remaining quantity to exactly one chain position.
type ChargeMap struct {
	amounts map[string]float64
}

// WorkingCopy deep-copies the mixture into a fresh working pool.
func (m Mixture) WorkingCopy() *ChargeMap {
	cm := &ChargeMap{amounts: make(map[string]float64, len(m.amounts))}
	for id, v := range m.amounts {
		cm.amounts[id] = v
	}
	return cm
}

func NewChargeMap(amounts map[string]float64) *ChargeMap {
	cm := &ChargeMap{amounts: make(map[string]float64, len(amounts))}
	for id, v := range amounts {
		cm.amounts[id] = v
	}
	return cm
}

// Take returns the quantity left for id and zeroes it.
func (c *ChargeMap) Take(id string) float64 {
	v := c.amounts[id]
	if _, ok := c.amounts[id]; ok {
		c.amounts[id] = 0
	}
	return v
}

func (c *ChargeMap) Remaining(id string) float64 { return c.amounts[id] }
