package analysis_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/zetadsi/internal/analysis"
	"github.com/san-kum/zetadsi/internal/dsi"
)

func scaledCount(base, out dsi.Sequence) int {
	n := 0
	for i := range base {
		if out[i] != base[i] {
			n++
		}
	}
	return n
}

var _ = Describe("PerturbationTable", func() {
	It("computes the default sensitivity table", func() {
		rows, err := analysis.PerturbationTable(analysis.DefaultPerturbation())
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(4))

		Expect(rows[0].Delta).To(Equal(0.0))
		Expect(math.Abs(rows[0].RelativeDeviationPct)).To(BeNumerically("<", 0.01))
		Expect(rows[0].Phi).To(BeNumerically("~", dsi.ClosedForm(analysis.DefaultBaseSize), 1e-12))

		Expect(rows[1].RelativeDeviationPct).To(BeNumerically("~", 1.21, 0.01))
		Expect(rows[2].RelativeDeviationPct).To(BeNumerically("~", 4.87, 0.01))
		Expect(rows[3].RelativeDeviationPct).To(BeNumerically("~", 7.21, 0.01))
	})

	It("is non-decreasing in delta over the documented range", func() {
		cfg := analysis.DefaultPerturbation()
		cfg.Deltas = nil
		for i := 0; i <= 14; i++ {
			cfg.Deltas = append(cfg.Deltas, float64(i)/100)
		}

		rows, err := analysis.PerturbationTable(cfg)
		Expect(err).NotTo(HaveOccurred())
		for i := 1; i < len(rows); i++ {
			Expect(rows[i].RelativeDeviationPct).To(BeNumerically(">=", rows[i-1].RelativeDeviationPct),
				"delta=%.2f", rows[i].Delta)
		}
	})

	It("returns to the unperturbed value when every element is scaled", func() {
		cfg := analysis.DefaultPerturbation()
		cfg.Deltas = []float64{0, 1}
		rows, err := analysis.PerturbationTable(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows[1].Phi).To(BeNumerically("~", rows[0].Phi, 1e-12))
	})

	It("grows faster with a larger shift factor", func() {
		small := analysis.DefaultPerturbation()
		large := analysis.DefaultPerturbation()
		large.ShiftFactor = 1.5

		a, err := analysis.PerturbationTable(small)
		Expect(err).NotTo(HaveOccurred())
		b, err := analysis.PerturbationTable(large)
		Expect(err).NotTo(HaveOccurred())
		for i := 1; i < len(a); i++ {
			Expect(b[i].RelativeDeviationPct).To(BeNumerically(">", a[i].RelativeDeviationPct))
		}
	})

	DescribeTable("rejects invalid parameters",
		func(mutate func(*analysis.PerturbationConfig), want error) {
			cfg := analysis.DefaultPerturbation()
			mutate(&cfg)
			rows, err := analysis.PerturbationTable(cfg)
			Expect(err).To(MatchError(want))
			Expect(rows).To(BeNil())
		},
		Entry("negative delta", func(c *analysis.PerturbationConfig) { c.Deltas = []float64{0, -0.1} }, dsi.ErrInvalidFraction),
		Entry("delta above one", func(c *analysis.PerturbationConfig) { c.Deltas = []float64{1.5} }, dsi.ErrInvalidFraction),
		Entry("NaN delta", func(c *analysis.PerturbationConfig) { c.Deltas = []float64{math.NaN()} }, dsi.ErrInvalidFraction),
		Entry("zero shift", func(c *analysis.PerturbationConfig) { c.ShiftFactor = 0 }, dsi.ErrInvalidFraction),
		Entry("negative shift", func(c *analysis.PerturbationConfig) { c.ShiftFactor = -1.2 }, dsi.ErrInvalidFraction),
		Entry("infinite shift", func(c *analysis.PerturbationConfig) { c.ShiftFactor = math.Inf(1) }, dsi.ErrInvalidFraction),
		Entry("zero base size", func(c *analysis.PerturbationConfig) { c.BaseSize = 0 }, dsi.ErrInvalidSampleSize),
	)

	It("rejects an unknown selection", func() {
		cfg := analysis.DefaultPerturbation()
		cfg.Selection = "middle"
		_, err := analysis.PerturbationTable(cfg)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Perturb", func() {
	var base dsi.Sequence

	BeforeEach(func() {
		base, _ = dsi.Identity(1000)
	})

	It("scales the last elements by default", func() {
		out, err := analysis.Perturb(base, 0.05, 1.2, analysis.SelectTail, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(scaledCount(base, out)).To(Equal(50))
		Expect(out[949]).To(Equal(950.0))
		Expect(out[950]).To(BeNumerically("~", 951*1.2, 1e-9))
		Expect(out[999]).To(BeNumerically("~", 1200, 1e-9))
	})

	It("scales the first elements with head selection", func() {
		out, err := analysis.Perturb(base, 0.01, 2, analysis.SelectHead, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(scaledCount(base, out)).To(Equal(10))
		Expect(out[0]).To(Equal(2.0))
		Expect(out[10]).To(Equal(11.0))
	})

	It("is reproducible for a fixed seed with random selection", func() {
		a, err := analysis.Perturb(base, 0.1, 1.2, analysis.SelectRandom, 42)
		Expect(err).NotTo(HaveOccurred())
		b, _ := analysis.Perturb(base, 0.1, 1.2, analysis.SelectRandom, 42)
		c, _ := analysis.Perturb(base, 0.1, 1.2, analysis.SelectRandom, 7)

		Expect(a).To(Equal(b))
		Expect(a).NotTo(Equal(c))
		Expect(scaledCount(base, a)).To(Equal(100))
	})

	It("rounds delta times N to the nearest count", func() {
		out, _ := analysis.Perturb(base, 0.0004, 1.2, analysis.SelectTail, 0)
		Expect(scaledCount(base, out)).To(Equal(0))
		out, _ = analysis.Perturb(base, 0.0016, 1.2, analysis.SelectTail, 0)
		Expect(scaledCount(base, out)).To(Equal(2))
	})

	It("does not modify the base sequence", func() {
		_, err := analysis.Perturb(base, 1, 3, analysis.SelectTail, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(base[999]).To(Equal(1000.0))
	})
})

var _ = Describe("Perturbation helpers", func() {
	DescribeTable("Label",
		func(delta, shift float64, want string) {
			Expect(analysis.Label(delta, shift)).To(Equal(want))
		},
		Entry("unperturbed", 0.0, 1.2, "None (RH)"),
		Entry("one percent", 0.01, 1.2, "1% at σ=0.6"),
		Entry("five percent", 0.05, 1.2, "5% at σ=0.6"),
		Entry("ten percent", 0.10, 1.2, "10% at σ=0.6"),
		Entry("fractional", 0.025, 1.5, "2.5% at σ=0.75"),
	)

	It("parses selections", func() {
		for name, want := range map[string]analysis.Selection{
			"":       analysis.SelectTail,
			"tail":   analysis.SelectTail,
			"head":   analysis.SelectHead,
			"random": analysis.SelectRandom,
		} {
			got, err := analysis.ParseSelection(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		}
		_, err := analysis.ParseSelection("bogus")
		Expect(err).To(HaveOccurred())
	})

	It("computes the relative deviation from 4/3", func() {
		Expect(analysis.RelativeDeviationPct(4.0 / 3.0)).To(Equal(0.0))
		Expect(analysis.RelativeDeviationPct(2.0)).To(BeNumerically("~", 50, 1e-12))
	})

	It("provides an independent default config", func() {
		a := analysis.DefaultPerturbation()
		a.Deltas[0] = 0.5
		Expect(analysis.DefaultPerturbation().Deltas[0]).To(Equal(0.0))
	})
})
