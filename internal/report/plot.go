package report

import (
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/zetadsi/internal/analysis"
)

const (
	plotHeight = 10
	plotWidth  = 60
)

// PlotConvergence graphs log10|Φ_N − 4/3| against the row index. It returns
// an empty string when no row has a positive deviation.
func PlotConvergence(rows []analysis.ConvergenceRow) string {
	data := make([]float64, 0, len(rows))
	for _, r := range rows {
		if r.AbsDeviation > 0 {
			data = append(data, math.Log10(r.AbsDeviation))
		}
	}
	if len(data) == 0 {
		return ""
	}

	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("log10 |Φ_N - 4/3| by sample size"),
	)
}

// PlotPerturbation graphs the relative deviation (%) against the row index.
func PlotPerturbation(rows []analysis.PerturbationRow) string {
	if len(rows) == 0 {
		return ""
	}
	data := make([]float64, len(rows))
	for i, r := range rows {
		data[i] = r.RelativeDeviationPct
	}

	return asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption("deviation from 4/3 (%) by perturbation fraction"),
	)
}
