package render

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/san-kum/radioactive/internal/decay"
	"github.com/san-kum/radioactive/internal/isotope"
	"github.com/san-kum/radioactive/internal/timeline"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		years float64
		want  string
	}{
		{0, "0 s"},
		{30.17, "30.17 y"},
		{isotope.Days(8.02), "8.02 d"},
		{isotope.Hours(64), "2.667 d"},
		{isotope.Hours(6), "6 h"},
		{isotope.Minutes(2.552), "2.552 min"},
		{isotope.Seconds(0.3), "0.3 s"},
		{math.Inf(1), "stable"},
	}
	for _, tt := range tests {
		if got := Duration(tt.years); got != tt.want {
			t.Errorf("Duration(%g) = %q, want %q", tt.years, got, tt.want)
		}
	}
}

func TestLogValues(t *testing.T) {
	got := logValues([]float64{100, 0, 10, -1})
	want := []float64{2, 1, 1, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("logValues mismatch (-want +got):\n%s", diff)
	}
}

func TestSparkline(t *testing.T) {
	line := Sparkline([]float64{1, 2, 3, 4}, 4)
	for _, c := range []string{"▁", "█"} {
		if !strings.Contains(line, c) {
			t.Errorf("expected %q in sparkline %q", c, line)
		}
	}
	if got := Sparkline(nil, 3); got != "───" {
		t.Errorf("empty sparkline = %q", got)
	}
}

func TestChainTable(t *testing.T) {
	chain, err := decay.DecayChain("Cs-137")
	if err != nil {
		t.Fatal(err)
	}
	out := ChainTable(chain, isotope.Default())
	for _, want := range []string{"Cs-137", "Ba-137m", "Ba-137", "stable", "30.17 y"} {
		if !strings.Contains(out, want) {
			t.Errorf("chain table missing %q:\n%s", want, out)
		}
	}
}

func TestIsotopeTable(t *testing.T) {
	out := IsotopeTable(isotope.Default())
	for _, want := range []string{"U-238", "Bi-212", "Tl-208 (0.3594)"} {
		if !strings.Contains(out, want) {
			t.Errorf("isotope table missing %q", want)
		}
	}
}

func TestSampleTable(t *testing.T) {
	s := decay.Sample{
		IDs:    []string{"A", "B"},
		Values: map[string]float64{"A": 3, "B": 1},
		Total:  4,
	}
	out := SampleTable(s, decay.QuantityRadioactivity)
	for _, want := range []string{"Bq", "75.0%", "25.0%", "total"} {
		if !strings.Contains(out, want) {
			t.Errorf("sample table missing %q:\n%s", want, out)
		}
	}
}

func testSeries() *timeline.Series {
	return &timeline.Series{
		Quantity: decay.QuantityRadioactivity,
		Times:    []float64{1, 10, 100},
		Samples: []decay.Sample{
			{IDs: []string{"A"}, Values: map[string]float64{"A": 1000}, Total: 1000},
			{IDs: []string{"A"}, Values: map[string]float64{"A": 10}, Total: 10},
			{IDs: []string{"A"}, Values: map[string]float64{"A": 0}, Total: 0},
		},
	}
}

func TestSeriesTable(t *testing.T) {
	out := SeriesTable(testSeries(), 3)
	if !strings.Contains(out, "total Bq") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "100 y") {
		t.Errorf("missing time row:\n%s", out)
	}
	if !strings.Contains(out, "█") {
		t.Errorf("missing sparkline:\n%s", out)
	}
}

func TestPlot(t *testing.T) {
	out, err := Plot(testSeries(), PlotOptions{Width: 20, Height: 5})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "log10 radioactivity (Bq)") {
		t.Errorf("missing caption:\n%s", out)
	}
}

func TestPlot_NothingPositive(t *testing.T) {
	s := testSeries()
	_, err := Plot(s, PlotOptions{ID: "missing"})
	if !errors.Is(err, ErrNothingToPlot) {
		t.Errorf("expected ErrNothingToPlot, got %v", err)
	}
}

func TestGrid(t *testing.T) {
	out := Grid([]string{"name", "value"}, [][]string{{"a", "1"}, {"b", "2"}})
	for _, want := range []string{"name", "value", "a", "2"} {
		if !strings.Contains(out, want) {
			t.Errorf("grid missing %q:\n%s", want, out)
		}
	}
}

func TestBox(t *testing.T) {
	out := Box("Boiling Water", "source")
	if !strings.HasPrefix(out, "Boiling Water\n") || !strings.Contains(out, "source") {
		t.Errorf("unexpected box:\n%s", out)
	}
}
