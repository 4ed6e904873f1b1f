package analysis_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/zetadsi/internal/analysis"
	"github.com/san-kum/zetadsi/internal/dsi"
)

var _ = Describe("ReferenceCheck", func() {
	It("estimates the uniform and normal values", func() {
		rows, err := analysis.ReferenceCheck(analysis.DefaultSeed, analysis.DefaultReferenceSamples)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(2))

		Expect(rows[0].Theoretical).To(Equal(4.0 / 3.0))
		Expect(rows[0].Empirical).To(BeNumerically("~", 4.0/3.0, 0.01))
		Expect(rows[1].Theoretical).To(Equal(math.Pi / 2))
		Expect(rows[1].Empirical).To(BeNumerically("~", math.Pi/2, 0.01))
	})

	It("is reproducible for a fixed seed", func() {
		a, _ := analysis.ReferenceCheck(7, 1000)
		b, _ := analysis.ReferenceCheck(7, 1000)
		Expect(a).To(Equal(b))
	})

	It("needs at least two samples", func() {
		_, err := analysis.ReferenceCheck(1, 1)
		Expect(err).To(MatchError(dsi.ErrInvalidSampleSize))
	})
})

var _ = Describe("Describe", func() {
	It("combines the index with order statistics", func() {
		s, err := analysis.Describe([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
		Expect(err).NotTo(HaveOccurred())

		Expect(s.Count).To(Equal(10))
		Expect(s.DSI).To(BeNumerically("~", 1.32, 1e-12))
		Expect(s.Mean).To(Equal(5.5))
		Expect(s.Variance).To(Equal(8.25))
		Expect(s.MAD).To(Equal(2.5))
		Expect(s.Min).To(Equal(1.0))
		Expect(s.Max).To(Equal(10.0))
		Expect(s.Median).To(Equal(5.5))
		Expect(s.Q1).To(Equal(3.0))
		Expect(s.Q3).To(Equal(8.0))
		Expect(s.StdDev).To(BeNumerically("~", math.Sqrt(82.5/9), 1e-12))
	})

	It("propagates engine errors", func() {
		_, err := analysis.Describe(nil)
		Expect(err).To(MatchError(dsi.ErrEmptySequence))
		_, err = analysis.Describe([]float64{5, 5, 5, 5})
		Expect(err).To(MatchError(dsi.ErrDegenerateSequence))
		_, err = analysis.Describe([]float64{0.1, 0.1, 0.1})
		Expect(err).To(MatchError(dsi.ErrDegenerateSequence))
	})
})
