package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/radioactive/internal/decay"
	"github.com/san-kum/radioactive/internal/export"
	"github.com/san-kum/radioactive/internal/timeline"
)

func sampleSeries() *timeline.Series {
	return &timeline.Series{
		Quantity: decay.QuantityRadioactivity,
		Times:    []float64{1, 10, 100},
		Samples: []decay.Sample{
			{Time: 1, IDs: []string{"Cs-137", "Ba-137m"}, Values: map[string]float64{"Cs-137": 100, "Ba-137m": 95}, Total: 195},
			{Time: 10, IDs: []string{"Cs-137", "Ba-137m"}, Values: map[string]float64{"Cs-137": 80, "Ba-137m": 76}, Total: 156},
			{Time: 100, IDs: []string{"Cs-137"}, Values: map[string]float64{"Cs-137": 10}, Total: 10},
		},
	}
}

var _ = Describe("CSV", func() {
	It("writes a header and one row per sample", func() {
		var buf bytes.Buffer
		Expect(export.WriteCSV(&buf, sampleSeries())).To(Succeed())

		rows, err := csv.NewReader(&buf).ReadAll()
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(4))
		Expect(rows[0]).To(Equal([]string{"time", "Cs-137", "Ba-137m", "total"}))
		Expect(rows[1]).To(Equal([]string{"1", "100", "95", "195"}))
		Expect(rows[3]).To(Equal([]string{"100", "10", "0", "10"}))
	})

	It("keeps full float precision", func() {
		s := &timeline.Series{
			Quantity: decay.QuantityConcentration,
			Times:    []float64{0.1},
			Samples:  []decay.Sample{{Time: 0.1, IDs: []string{"A"}, Values: map[string]float64{"A": 1.0 / 3}, Total: 1.0 / 3}},
		}
		var buf bytes.Buffer
		Expect(export.WriteCSV(&buf, s)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("0.3333333333333333"))
	})
})

var _ = Describe("JSON", func() {
	It("aligns values with ids", func() {
		var buf bytes.Buffer
		meta := export.Meta{Policy: "first-listed", Merge: "first-write-wins", Chains: []string{"Cs-137 -> Ba-137m -> Ba-137"}}
		Expect(export.WriteJSON(&buf, sampleSeries(), meta)).To(Succeed())

		var data export.Data
		Expect(json.Unmarshal(buf.Bytes(), &data)).To(Succeed())
		Expect(data.Quantity).To(Equal("radioactivity"))
		Expect(data.Unit).To(Equal("Bq"))
		Expect(data.Points).To(Equal(3))
		Expect(data.Policy).To(Equal("first-listed"))
		Expect(data.IDs).To(Equal([]string{"Cs-137", "Ba-137m"}))
		Expect(data.Values[2]).To(Equal([]float64{10, 0}))
		Expect(data.Totals).To(Equal([]float64{195, 156, 10}))
	})

	It("encodes a real profile", func() {
		profile, err := decay.DecayProfile(decay.NewMixture(decay.Charge{ID: "Sr-90", Amount: 1}))
		Expect(err).NotTo(HaveOccurred())
		series, err := timeline.NewSampler(2, nil).Sample(context.Background(), profile, decay.QuantityConcentration, []float64{0, 10})
		Expect(err).NotTo(HaveOccurred())

		data := export.NewData(series, export.Meta{})
		Expect(data.IDs).To(Equal([]string{"Sr-90", "Y-90", "Zr-90"}))
		Expect(data.Values[0]).To(Equal([]float64{1, 0, 0}))
	})
})

var _ = Describe("SVG", func() {
	It("draws a path through every plottable sample", func() {
		svg := export.SeriesToSVG(sampleSeries(), 400, 200, "#CC0000")
		Expect(svg).To(HavePrefix("<?xml"))
		Expect(svg).To(ContainSubstring(`stroke="#CC0000"`))
		Expect(strings.Count(svg, " L")).To(Equal(2))
	})

	It("returns nothing for a single point", func() {
		s := sampleSeries()
		s.Times = s.Times[:1]
		s.Samples = s.Samples[:1]
		Expect(export.SeriesToSVG(s, 400, 200, "#fff")).To(BeEmpty())
	})
})

var _ = Describe("ToFile", func() {
	It("writes through to the named file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "out.csv")
		err := export.ToFile(path, func(w io.Writer) error {
			return export.WriteCSV(w, sampleSeries())
		})
		Expect(err).NotTo(HaveOccurred())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(HavePrefix("time,Cs-137,Ba-137m,total\n"))
	})

	It("fails for an unwritable path", func() {
		err := export.ToFile(filepath.Join(GinkgoT().TempDir(), "missing", "out.csv"), func(w io.Writer) error { return nil })
		Expect(err).To(HaveOccurred())
	})
})
