package timeline_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/radioactive/internal/decay"
	"github.com/san-kum/radioactive/internal/timeline"
)

var _ = Describe("Grids", func() {
	It("samples five points per decade", func() {
		times, err := timeline.LogGrid(0, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(times).To(Equal([]float64{1, 3, 5, 7, 9, 10, 30, 50, 70, 90}))
	})

	It("rejects an inverted log range", func() {
		_, err := timeline.LogGrid(3, 1)
		Expect(err).To(HaveOccurred())
	})

	It("spaces linear points evenly and ends exactly at end", func() {
		times, err := timeline.LinearGrid(0, 1, 5)
		Expect(err).NotTo(HaveOccurred())
		Expect(times).To(HaveLen(5))
		Expect(times[2]).To(BeNumerically("~", 0.5, 1e-12))
		Expect(times[4]).To(Equal(1.0))
	})

	DescribeTable("rejects bad linear grids",
		func(start, end float64, n int) {
			_, err := timeline.LinearGrid(start, end, n)
			Expect(err).To(HaveOccurred())
		},
		Entry("single point", 0.0, 1.0, 1),
		Entry("negative start", -1.0, 1.0, 3),
		Entry("empty range", 2.0, 2.0, 3),
	)
})

var _ = Describe("Sampler", func() {
	var (
		ctx     context.Context
		profile *decay.MixtureProfile
		sampler *timeline.Sampler
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		profile, err = decay.DecayProfile(decay.NewMixture(
			decay.Charge{ID: "Cs-137", Amount: 1},
			decay.Charge{ID: "Sr-90", Amount: 1},
		))
		Expect(err).NotTo(HaveOccurred())
		sampler = timeline.NewSampler(4, nil)
	})

	It("matches direct evaluation at every time", func() {
		times, _ := timeline.LogGrid(-1, 2)
		series, err := sampler.Sample(ctx, profile, decay.QuantityRadioactivity, times)
		Expect(err).NotTo(HaveOccurred())
		Expect(series.Times).To(Equal(times))

		for i, tm := range times {
			want, err := profile.Radioactivity(tm)
			Expect(err).NotTo(HaveOccurred())
			Expect(series.Samples[i]).To(Equal(want))
		}
	})

	It("keeps concentration totals conserved", func() {
		times, _ := timeline.LinearGrid(0, 500, 11)
		series, err := sampler.Sample(ctx, profile, decay.QuantityConcentration, times)
		Expect(err).NotTo(HaveOccurred())
		for _, total := range series.Totals() {
			Expect(total).To(BeNumerically("~", 2, 1e-9))
		}
	})

	It("fails on negative times", func() {
		_, err := sampler.Sample(ctx, profile, decay.QuantityConcentration, []float64{1, -1, 2})
		Expect(err).To(MatchError(decay.ErrInvalidTime))
	})

	It("stops on a cancelled context", func() {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := sampler.Sample(cctx, profile, decay.QuantityConcentration, []float64{1, 2, 3})
		Expect(err).To(MatchError(context.Canceled))
	})

	It("samples until activity falls below the floor", func() {
		series, err := sampler.UntilBelow(ctx, profile, decay.QuantityRadioactivity, timeline.DefaultFloor, timeline.DefaultMaxDecade)
		Expect(err).NotTo(HaveOccurred())
		Expect(series.Len()).To(BeNumerically(">", 5))
		Expect(series.Len() % len(timeline.DecadeMultipliers)).To(Equal(0))

		totals := series.Totals()
		Expect(totals[len(totals)-1]).To(BeNumerically("<=", timeline.DefaultFloor))

		t, ok := series.FirstBelow(timeline.DefaultFloor)
		Expect(ok).To(BeTrue())
		Expect(t).To(BeNumerically(">", 1000))
	})

	It("gives up at the maximum decade", func() {
		series, err := sampler.UntilBelow(ctx, profile, decay.QuantityRadioactivity, 0, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(series.Times).To(HaveLen(3 * len(timeline.DecadeMultipliers)))
	})
})

var _ = Describe("Series", func() {
	series := &timeline.Series{
		Quantity: decay.QuantityConcentration,
		Times:    []float64{1, 2, 3},
		Samples: []decay.Sample{
			{Time: 1, IDs: []string{"A"}, Values: map[string]float64{"A": 4}, Total: 4},
			{Time: 2, IDs: []string{"A", "B"}, Values: map[string]float64{"A": 1, "B": 5}, Total: 6},
			{Time: 3, IDs: []string{"B", "C"}, Values: map[string]float64{"B": 0.5, "C": 0.1}, Total: 0.6},
		},
	}

	It("collects ids in first-seen order", func() {
		Expect(series.IDs()).To(Equal([]string{"A", "B", "C"}))
	})

	It("extracts columns with zero for absent isotopes", func() {
		Expect(series.Column("B")).To(Equal([]float64{0, 5, 0.5}))
	})

	It("finds the peak of an isotope", func() {
		t, v := series.Peak("B")
		Expect(t).To(Equal(2.0))
		Expect(v).To(Equal(5.0))
	})

	It("filters samples below a floor", func() {
		above := series.Above(1)
		Expect(above.Times).To(Equal([]float64{1, 2}))
		Expect(math.IsNaN(above.Totals()[0])).To(BeFalse())
	})

	It("reports no crossing when totals stay high", func() {
		_, ok := series.FirstBelow(0.1)
		Expect(ok).To(BeFalse())
	})
})
