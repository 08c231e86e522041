package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/radioactive/internal/decay"
	"github.com/san-kum/radioactive/internal/isotope"
	"github.com/san-kum/radioactive/internal/timeline"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(Border).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return Header
			}
			return Cell
		})
}

func describeBranches(branches []isotope.Branch) string {
	parts := make([]string, len(branches))
	for i, b := range branches {
		if len(branches) == 1 {
			parts[i] = b.Product
			continue
		}
		parts[i] = fmt.Sprintf("%s (%s)", b.Product, Number(b.Fraction))
	}
	return strings.Join(parts, ", ")
}

// ChainTable lists each member of a chain with its halflife and the
// branch the chain followed out of it.
func ChainTable(chain decay.Chain, db *isotope.Table) string {
	t := newTable("#", "isotope", "halflife", "λ (1/y)", "decays to")
	for i, id := range chain.Members {
		rec, ok := db.Record(id)
		if !ok {
			t.Row(fmt.Sprint(i), id, Stable.Render("stable"), "0", "")
			continue
		}
		t.Row(fmt.Sprint(i), id, Duration(rec.Halflife), Number(rec.DecayConstant()), describeBranches(rec.Branches))
	}
	return t.Render()
}

// IsotopeTable lists every tabulated isotope in id order.
func IsotopeTable(db *isotope.Table) string {
	t := newTable("isotope", "halflife", "branches")
	for _, rec := range db.Records() {
		t.Row(rec.ID, Duration(rec.Halflife), describeBranches(rec.Branches))
	}
	return t.Render()
}

// SampleTable shows one evaluation with each isotope's share of the total.
func SampleTable(s decay.Sample, q decay.Quantity) string {
	t := newTable("isotope", q.Unit(), "share")
	for _, id := range s.IDs {
		v := s.Get(id)
		share := 0.0
		if s.Total > 0 {
			share = v / s.Total
		}
		t.Row(id, Number(v), fmt.Sprintf("%.1f%%", share*100))
	}
	t.Row("total", Number(s.Total), "")
	return t.Render()
}

// SeriesTable prints one row per sampled time, with a sparkline of each
// isotope's trajectory underneath when spark is positive.
func SeriesTable(s *timeline.Series, spark int) string {
	t := newTable("t", "total "+s.Quantity.Unit())
	for i, smp := range s.Samples {
		t.Row(Duration(s.Times[i]), Number(smp.Total))
	}
	if spark <= 0 {
		return t.Render()
	}

	var sb strings.Builder
	sb.WriteString(t.Render())
	sb.WriteString("\n")
	for _, id := range s.IDs() {
		pt, pv := s.Peak(id)
		sb.WriteString(fmt.Sprintf("%-10s %s peak %s at %s\n", Label.Render(id), Sparkline(logValues(s.Column(id)), spark), Number(pv), Duration(pt)))
	}
	return sb.String()
}

// Grid renders a plain table of preformatted rows.
func Grid(headers []string, rows [][]string) string {
	t := newTable(headers...)
	for _, r := range rows {
		t.Row(r...)
	}
	return t.Render()
}
