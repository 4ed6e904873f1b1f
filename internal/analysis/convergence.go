package analysis

import (
	"context"
	"math"

	"github.com/san-kum/zetadsi/internal/dsi"
	"github.com/san-kum/zetadsi/internal/sweep"
)

// DefaultSizes are the sample sizes of the published convergence table.
var DefaultSizes = []int{100, 1_000, 10_000, 100_000, 1_000_000}

// DefaultFormulaSizes are the sizes used to check Φ_N against the closed form.
var DefaultFormulaSizes = []int{10, 100, 1_000, 10_000}

// FormulaTolerance is the absolute agreement required by FormulaCheck.
const FormulaTolerance = 1e-10

// ConvergenceRow is one line of the convergence table.
type ConvergenceRow struct {
	N            int     `json:"n"`
	Phi          float64 `json:"phi"`
	AbsDeviation float64 `json:"abs_deviation"`
}

// FormulaRow compares a computed Φ_N with 4/3·(1 − 1/N²).
type FormulaRow struct {
	N        int     `json:"n"`
	Computed float64 `json:"computed"`
	Formula  float64 `json:"formula"`
	Match    bool    `json:"match"`
}

// ConvergenceTable computes Φ_N over R_k = k for each size and its distance
// from 4/3. With no sizes it uses DefaultSizes. Rows keep the order of sizes.
//
// Φ_N is always computed from the materialized sequence, never from the
// closed form, so the table verifies the formula rather than restating it.
func ConvergenceTable(sizes ...int) ([]ConvergenceRow, error) {
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	if err := validateSizes("convergence", sizes); err != nil {
		return nil, err
	}

	rows := make([]ConvergenceRow, len(sizes))
	for i, n := range sizes {
		row, err := convergenceRow(n)
		if err != nil {
			return nil, err
		}
		rows[i] = row
	}
	return rows, nil
}

// ConvergenceTableParallel is ConvergenceTable with rows computed by up to
// workers goroutines. The result is identical to the serial table.
func ConvergenceTableParallel(ctx context.Context, workers int, sizes ...int) ([]ConvergenceRow, error) {
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	if err := validateSizes("convergence", sizes); err != nil {
		return nil, err
	}

	rows := make([]ConvergenceRow, len(sizes))
	err := sweep.Rows(ctx, len(sizes), workers, func(_ context.Context, i int) error {
		row, err := convergenceRow(sizes[i])
		if err != nil {
			return err
		}
		rows[i] = row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FormulaCheck computes Φ_N for each size and compares it with
// dsi.ClosedForm. With no sizes it uses DefaultFormulaSizes. Odd sizes are
// accepted but do not match, since the closed form holds for even N only.
func FormulaCheck(sizes ...int) ([]FormulaRow, error) {
	if len(sizes) == 0 {
		sizes = DefaultFormulaSizes
	}
	if err := validateSizes("formula", sizes); err != nil {
		return nil, err
	}

	rows := make([]FormulaRow, len(sizes))
	for i, n := range sizes {
		row, err := convergenceRow(n)
		if err != nil {
			return nil, err
		}
		formula := dsi.ClosedForm(n)
		rows[i] = FormulaRow{
			N:        n,
			Computed: row.Phi,
			Formula:  formula,
			Match:    math.Abs(row.Phi-formula) < FormulaTolerance,
		}
	}
	return rows, nil
}

func convergenceRow(n int) (ConvergenceRow, error) {
	seq, err := dsi.Identity(n)
	if err != nil {
		return ConvergenceRow{}, err
	}
	phi, err := dsi.Compute(seq)
	if err != nil {
		return ConvergenceRow{}, err
	}
	return ConvergenceRow{
		N:            n,
		Phi:          phi,
		AbsDeviation: math.Abs(phi - dsi.CriticalLineLimit),
	}, nil
}

func validateSizes(op string, sizes []int) error {
	for _, n := range sizes {
		if n < 1 {
			return &dsi.DomainError{Op: op, Param: "n", Value: float64(n), Wrapped: dsi.ErrInvalidSampleSize}
		}
	}
	return nil
}
