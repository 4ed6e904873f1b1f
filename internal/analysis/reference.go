package analysis

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/zetadsi/internal/dsi"
)

// DefaultReferenceSamples is the sample count used to estimate the
// reference values empirically.
const DefaultReferenceSamples = 1_000_000

// ReferenceRow pairs a theoretical Φ with an empirical estimate.
type ReferenceRow struct {
	Name        string  `json:"name"`
	Theoretical float64 `json:"theoretical"`
	Empirical   float64 `json:"empirical"`
}

// ReferenceCheck draws n samples each from Uniform[0, 1] and Normal(0, 1)
// using a source seeded with seed, and compares their Φ with 4/3 and π/2.
func ReferenceCheck(seed int64, n int) ([]ReferenceRow, error) {
	if n < 2 {
		return nil, &dsi.DomainError{Op: "reference", Param: "n", Value: float64(n), Wrapped: dsi.ErrInvalidSampleSize}
	}

	src := rand.NewPCG(uint64(seed), 0)
	u01 := distuv.Uniform{Min: 0, Max: 1, Src: src}
	std := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	uniform := make([]float64, n)
	for i := range uniform {
		uniform[i] = u01.Rand()
	}
	normal := make([]float64, n)
	for i := range normal {
		normal[i] = std.Rand()
	}

	u, err := dsi.Compute(uniform)
	if err != nil {
		return nil, err
	}
	g, err := dsi.Compute(normal)
	if err != nil {
		return nil, err
	}

	return []ReferenceRow{
		{Name: "Uniform[0, 1]", Theoretical: dsi.Uniform, Empirical: u},
		{Name: "Normal(0, 1)", Theoretical: dsi.Normal, Empirical: g},
	}, nil
}
