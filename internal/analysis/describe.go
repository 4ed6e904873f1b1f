package analysis

import (
	"github.com/montanaflynn/stats"

	"github.com/san-kum/zetadsi/internal/dsi"
)

// Summary extends the engine moments with order statistics of the input.
type Summary struct {
	dsi.Result
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
	StdDev float64 `json:"stddev"`
}

// Describe computes the index of xs together with order statistics and the
// sample standard deviation. It fails with the same errors as dsi.Analyze.
func Describe(xs []float64) (Summary, error) {
	r, err := dsi.Analyze(xs)
	if err != nil {
		return Summary{}, err
	}

	data := stats.Float64Data(xs)
	s := Summary{Result: r, Count: len(xs)}

	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, err
	}
	q, err := stats.Quartile(data)
	if err != nil {
		return Summary{}, err
	}
	s.Q1, s.Q3 = q.Q1, q.Q3
	if s.StdDev, err = stats.StandardDeviationSample(data); err != nil {
		return Summary{}, err
	}
	return s, nil
}
