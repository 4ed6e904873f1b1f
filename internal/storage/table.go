package storage

import "github.com/san-kum/zetadsi/internal/analysis"

// Table is a numeric table with named columns, stored as CSV.
type Table struct {
	Header []string    `json:"header"`
	Rows   [][]float64 `json:"rows"`
}

func ConvergenceTable(rows []analysis.ConvergenceRow) Table {
	t := Table{Header: []string{"n", "phi", "abs_deviation"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []float64{float64(r.N), r.Phi, r.AbsDeviation})
	}
	return t
}

func PerturbationTable(rows []analysis.PerturbationRow) Table {
	t := Table{Header: []string{"delta", "phi", "relative_deviation_pct"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []float64{r.Delta, r.Phi, r.RelativeDeviationPct})
	}
	return t
}

// Column returns the values of the named column, or nil if there is none.
func (t Table) Column(name string) []float64 {
	idx := -1
	for i, h := range t.Header {
		if h == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	col := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			col = append(col, row[idx])
		}
	}
	return col
}
