package dsi

import "math"

// Reference values of Φ.
const (
	Uniform           = 4.0 / 3.0
	Normal            = math.Pi / 2
	CriticalLineLimit = 4.0 / 3.0
)

// Result holds the moments of one sequence. It is a value type; every call
// produces a fresh one.
type Result struct {
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	MAD      float64 `json:"mad"`
	DSI      float64 `json:"dsi"`
}

// Compute returns Φ = Var(X)/MAD(X)² for xs.
//
// It fails with ErrEmptySequence on empty input, ErrNonFinite if any element
// is NaN or Inf, and ErrDegenerateSequence when all elements are equal.
func Compute(xs []float64) (float64, error) {
	r, err := Analyze(xs)
	if err != nil {
		return 0, err
	}
	return r.DSI, nil
}

// Analyze computes mean, population variance, mean absolute deviation and Φ
// in two passes over xs.
//
// A sequence whose elements are all equal is degenerate regardless of how
// the mean rounds. Moments that overflow float64 fail with ErrNonFinite.
func Analyze(xs []float64) (Result, error) {
	mean, constant, err := firstPass("compute", xs)
	if err != nil {
		return Result{}, err
	}
	if constant {
		return Result{}, domainErr("compute", "mad", 0, ErrDegenerateSequence)
	}

	variance, mad := deviations(xs, mean)
	if mad == 0 {
		return Result{}, domainErr("compute", "mad", mad, ErrDegenerateSequence)
	}
	phi := variance / (mad * mad)
	if !isFinite(variance) || !isFinite(mad) || !isFinite(phi) {
		return Result{}, domainErr("compute", "variance", variance, ErrNonFinite)
	}

	return Result{
		Mean:     mean,
		Variance: variance,
		MAD:      mad,
		DSI:      phi,
	}, nil
}

// Mean returns (1/N)Σx.
func Mean(xs []float64) (float64, error) {
	mean, _, err := firstPass("mean", xs)
	return mean, err
}

// Variance returns the population variance (1/N)Σ(x−μ)².
func Variance(xs []float64) (float64, error) {
	mean, constant, err := firstPass("variance", xs)
	if err != nil || constant {
		return 0, err
	}
	v, _ := deviations(xs, mean)
	return v, nil
}

// MAD returns the mean absolute deviation about the mean, (1/N)Σ|x−μ|.
func MAD(xs []float64) (float64, error) {
	mean, constant, err := firstPass("mad", xs)
	if err != nil || constant {
		return 0, err
	}
	_, m := deviations(xs, mean)
	return m, nil
}

// ClosedForm returns 4/3·(1 − 1/n²), the index of Identity(n) for even n.
// Odd n gives 4n²/(3(n²−1)) instead, since the MAD of 1..n is then
// (n²−1)/(4n) rather than n/4.
func ClosedForm(n int) float64 {
	nf := float64(n)
	return CriticalLineLimit * (1 - 1/(nf*nf))
}

func deviations(xs []float64, mean float64) (variance, mad float64) {
	var sq, abs sum
	for _, x := range xs {
		d := x - mean
		sq.add(d * d)
		abs.add(math.Abs(d))
	}
	n := float64(len(xs))
	return sq.value() / n, abs.value() / n
}

// firstPass returns the mean of xs and whether every element equals xs[0].
// The mean of a constant sequence is that element exactly.
func firstPass(op string, xs []float64) (mean float64, constant bool, err error) {
	if len(xs) == 0 {
		return 0, false, domainErr(op, "", 0, ErrEmptySequence)
	}
	var s sum
	constant = true
	for i, x := range xs {
		if !isFinite(x) {
			return 0, false, domainErr(op, "index", float64(i), ErrNonFinite)
		}
		if x != xs[0] {
			constant = false
		}
		s.add(x)
	}
	if constant {
		return xs[0], true, nil
	}
	mean = s.value() / float64(len(xs))
	if !isFinite(mean) {
		return 0, false, domainErr(op, "mean", mean, ErrNonFinite)
	}
	return mean, false, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
