// Package dsi computes the Distributional Stability Index of a numeric
// sequence:
//
//	Φ = Var(X) / MAD(X)²
//
// where Var is the population variance (divisor N) and MAD is the mean
// absolute deviation about the mean.
//
//   - [Compute]: the index alone
//   - [Analyze]: mean, variance, MAD and the index in one [Result]
//   - [Identity]: the deterministic model R_k = k, k = 1..N
//   - [ClosedForm]: 4/3·(1 − 1/N²), the value of Φ for [Identity] at even N
//
// # Reference values
//
// A uniform distribution has Φ = 4/3, a normal distribution Φ = π/2, and the
// identity sequence converges to 4/3 at rate O(N⁻²).
//
// # Errors
//
// Every failure wraps one of the sentinel errors ([ErrEmptySequence],
// [ErrDegenerateSequence], [ErrInvalidSampleSize], [ErrInvalidFraction],
// [ErrNonFinite]) in a [*DomainError]; test with errors.Is.
//
// All functions are pure and safe for concurrent use.
package dsi
