package analysis_test

import (
	"context"
	"fmt"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/zetadsi/internal/analysis"
	"github.com/san-kum/zetadsi/internal/dsi"
)

var _ = Describe("ConvergenceTable", func() {
	var rows []analysis.ConvergenceRow

	BeforeEach(func() {
		var err error
		rows, err = analysis.ConvergenceTable()
		Expect(err).NotTo(HaveOccurred())
	})

	It("uses the default sizes in ascending order", func() {
		Expect(rows).To(HaveLen(5))
		for i, r := range rows {
			Expect(r.N).To(Equal(analysis.DefaultSizes[i]))
		}
	})

	It("agrees with the closed form at every size", func() {
		for _, r := range rows {
			want := dsi.ClosedForm(r.N)
			Expect(math.Abs(r.Phi-want) / want).To(BeNumerically("<", 1e-9), "N=%d", r.N)
			Expect(r.AbsDeviation).To(Equal(math.Abs(r.Phi - 4.0/3.0)))
		}
	})

	It("has strictly decreasing deviations", func() {
		for i := 1; i < len(rows); i++ {
			Expect(rows[i].AbsDeviation).To(BeNumerically("<", rows[i-1].AbsDeviation))
		}
	})

	It("reaches the precision floor at one million", func() {
		last := rows[len(rows)-1]
		Expect(last.AbsDeviation).To(BeNumerically("~", 1.33e-12, 0.01e-12))
	})

	DescribeTable("reproduces the reference table",
		func(i int, phi, dev string) {
			Expect(fmt.Sprintf("%.10f", rows[i].Phi)).To(Equal(phi))
			Expect(fmt.Sprintf("%.2e", rows[i].AbsDeviation)).To(Equal(dev))
		},
		Entry("N=100", 0, "1.3332000000", "1.33e-04"),
		Entry("N=1000", 1, "1.3333320000", "1.33e-06"),
		Entry("N=10000", 2, "1.3333333200", "1.33e-08"),
		Entry("N=100000", 3, "1.3333333332", "1.33e-10"),
		Entry("N=1000000", 4, "1.3333333333", "1.33e-12"),
	)

	It("keeps the caller's order for explicit sizes", func() {
		got, err := analysis.ConvergenceTable(1000, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(got[0].N).To(Equal(1000))
		Expect(got[1].N).To(Equal(10))
		Expect(got[1].Phi).To(BeNumerically("~", 1.32, 1e-12))
	})

	DescribeTable("rejects sizes below one without a partial table",
		func(sizes []int) {
			got, err := analysis.ConvergenceTable(sizes...)
			Expect(err).To(MatchError(dsi.ErrInvalidSampleSize))
			Expect(got).To(BeNil())
		},
		Entry("zero", []int{100, 0}),
		Entry("negative", []int{-5}),
	)

	It("reports a single element as degenerate", func() {
		_, err := analysis.ConvergenceTable(1)
		Expect(err).To(MatchError(dsi.ErrDegenerateSequence))
	})
})

var _ = Describe("ConvergenceTableParallel", func() {
	It("matches the serial table", func() {
		serial, err := analysis.ConvergenceTable()
		Expect(err).NotTo(HaveOccurred())

		for _, workers := range []int{0, 1, 3} {
			parallel, err := analysis.ConvergenceTableParallel(context.Background(), workers)
			Expect(err).NotTo(HaveOccurred())
			Expect(parallel).To(Equal(serial))
		}
	})

	It("validates sizes before starting", func() {
		_, err := analysis.ConvergenceTableParallel(context.Background(), 2, 100, -1)
		Expect(err).To(MatchError(dsi.ErrInvalidSampleSize))
	})
})

var _ = Describe("FormulaCheck", func() {
	It("matches the closed form at the default sizes", func() {
		rows, err := analysis.FormulaCheck()
		Expect(err).NotTo(HaveOccurred())
		Expect(rows).To(HaveLen(len(analysis.DefaultFormulaSizes)))
		for _, r := range rows {
			Expect(r.Match).To(BeTrue(), "N=%d", r.N)
		}
	})

	It("does not match at odd sizes", func() {
		rows, err := analysis.FormulaCheck(11)
		Expect(err).NotTo(HaveOccurred())
		Expect(rows[0].Match).To(BeFalse())
		Expect(rows[0].Computed).To(BeNumerically(">", rows[0].Formula))
	})
})
