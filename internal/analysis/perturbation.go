package analysis

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/san-kum/zetadsi/internal/dsi"
)

const (
	DefaultShiftFactor = 1.2
	DefaultBaseSize    = 10_000
	DefaultSeed        = 42

	// criticalLine is the real part of a zero on the critical line. A zero
	// moved to real part σ is modelled by the shift factor σ/criticalLine.
	criticalLine = 0.5
)

// DefaultDeltas are the perturbation fractions of the published table.
var DefaultDeltas = []float64{0, 0.01, 0.05, 0.10}

// Selection decides which elements of R_k = k receive the shift factor.
type Selection string

const (
	// SelectTail scales the last round(δ·N) elements, the highest ordinates.
	SelectTail Selection = "tail"
	// SelectHead scales the first round(δ·N) elements.
	SelectHead Selection = "head"
	// SelectRandom scales round(δ·N) distinct elements drawn from a source
	// seeded with PerturbationConfig.Seed.
	SelectRandom Selection = "random"
)

// ParseSelection maps a name to a Selection. The empty string is SelectTail.
func ParseSelection(name string) (Selection, error) {
	switch Selection(name) {
	case "", SelectTail:
		return SelectTail, nil
	case SelectHead:
		return SelectHead, nil
	case SelectRandom:
		return SelectRandom, nil
	}
	return "", fmt.Errorf("unknown selection: %s (available: tail, head, random)", name)
}

type PerturbationConfig struct {
	Deltas      []float64
	ShiftFactor float64
	BaseSize    int
	Selection   Selection
	Seed        int64
}

func DefaultPerturbation() PerturbationConfig {
	deltas := make([]float64, len(DefaultDeltas))
	copy(deltas, DefaultDeltas)
	return PerturbationConfig{
		Deltas:      deltas,
		ShiftFactor: DefaultShiftFactor,
		BaseSize:    DefaultBaseSize,
		Selection:   SelectTail,
		Seed:        DefaultSeed,
	}
}

// PerturbationRow is one line of the sensitivity table.
type PerturbationRow struct {
	Delta                float64 `json:"delta"`
	Phi                  float64 `json:"phi"`
	RelativeDeviationPct float64 `json:"relative_deviation_pct"`
}

// PerturbationTable recomputes Φ for R_k = k, k = 1..BaseSize, after scaling
// a fraction δ of the elements by ShiftFactor, for every δ in Deltas.
//
// All parameters are validated before any row is computed. With SelectTail
// and ShiftFactor = 1.2 the relative deviation is non-decreasing in δ up to
// δ ≈ 0.14; at δ = 1 every element is scaled and Φ returns to its
// unperturbed value.
func PerturbationTable(cfg PerturbationConfig) ([]PerturbationRow, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	base, err := dsi.Identity(cfg.BaseSize)
	if err != nil {
		return nil, err
	}

	rows := make([]PerturbationRow, len(cfg.Deltas))
	for i, delta := range cfg.Deltas {
		seq, err := Perturb(base, delta, cfg.ShiftFactor, cfg.Selection, cfg.Seed)
		if err != nil {
			return nil, err
		}
		phi, err := dsi.Compute(seq)
		if err != nil {
			return nil, err
		}
		rows[i] = PerturbationRow{
			Delta:                delta,
			Phi:                  phi,
			RelativeDeviationPct: RelativeDeviationPct(phi),
		}
	}
	return rows, nil
}

// Perturb returns a copy of base with round(delta·len(base)) elements,
// chosen by sel, multiplied by shift. base is not modified.
func Perturb(base dsi.Sequence, delta, shift float64, sel Selection, seed int64) (dsi.Sequence, error) {
	if err := validateDelta(delta); err != nil {
		return nil, err
	}
	if err := validateShift(shift); err != nil {
		return nil, err
	}

	out := base.Clone()
	n := len(out)
	k := int(math.Round(delta * float64(n)))
	if k == 0 {
		return out, nil
	}

	switch sel {
	case SelectHead:
		for i := 0; i < k; i++ {
			out[i] *= shift
		}
	case SelectRandom:
		r := rand.New(rand.NewPCG(uint64(seed), 0))
		for _, i := range r.Perm(n)[:k] {
			out[i] *= shift
		}
	case SelectTail, "":
		for i := n - k; i < n; i++ {
			out[i] *= shift
		}
	default:
		return nil, fmt.Errorf("unknown selection: %s", sel)
	}
	return out, nil
}

// RelativeDeviationPct returns 100·(phi − 4/3)/(4/3).
func RelativeDeviationPct(phi float64) float64 {
	return 100 * (phi - dsi.CriticalLineLimit) / dsi.CriticalLineLimit
}

// ShiftedRealPart is the real part σ modelled by a shift factor.
func ShiftedRealPart(shift float64) float64 {
	return criticalLine * shift
}

// Label describes a perturbation row, e.g. "5% at σ=0.6".
func Label(delta, shift float64) string {
	if delta == 0 {
		return "None (RH)"
	}
	return fmt.Sprintf("%.4g%% at σ=%.2g", delta*100, ShiftedRealPart(shift))
}

func (c PerturbationConfig) validate() error {
	if c.BaseSize < 1 {
		return &dsi.DomainError{Op: "perturbation", Param: "base_size", Value: float64(c.BaseSize), Wrapped: dsi.ErrInvalidSampleSize}
	}
	if err := validateShift(c.ShiftFactor); err != nil {
		return err
	}
	for _, d := range c.Deltas {
		if err := validateDelta(d); err != nil {
			return err
		}
	}
	if _, err := ParseSelection(string(c.Selection)); err != nil {
		return err
	}
	return nil
}

func validateDelta(delta float64) error {
	if math.IsNaN(delta) || delta < 0 || delta > 1 {
		return &dsi.DomainError{Op: "perturbation", Param: "delta", Value: delta, Wrapped: dsi.ErrInvalidFraction}
	}
	return nil
}

func validateShift(shift float64) error {
	if math.IsNaN(shift) || math.IsInf(shift, 0) || shift <= 0 {
		return &dsi.DomainError{Op: "perturbation", Param: "shift_factor", Value: shift, Wrapped: dsi.ErrInvalidFraction}
	}
	return nil
}
