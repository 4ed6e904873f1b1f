package dsi

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sequence is an ordered, finite collection of real numbers.
type Sequence []float64

// Identity returns the deterministic model R_k = k for k = 1..n.
func Identity(n int) (Sequence, error) {
	if n < 1 {
		return nil, domainErr("identity", "n", float64(n), ErrInvalidSampleSize)
	}
	s := make(Sequence, n)
	for i := range s {
		s[i] = float64(i + 1)
	}
	return s, nil
}

func (s Sequence) Clone() Sequence {
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}

// IsValid reports whether every element is finite.
func (s Sequence) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Scale returns a new sequence with every element multiplied by factor.
func (s Sequence) Scale(factor float64) Sequence {
	return floats.ScaleTo(make(Sequence, len(s)), factor, s)
}

// Shift returns a new sequence with offset added to every element.
func (s Sequence) Shift(offset float64) Sequence {
	result := s.Clone()
	floats.AddConst(offset, result)
	return result
}

// sum accumulates with Neumaier's variant of Kahan summation.
type sum struct {
	total float64
	c     float64
}

func (s *sum) add(x float64) {
	t := s.total + x
	if math.Abs(s.total) >= math.Abs(x) {
		s.c += (s.total - t) + x
	} else {
		s.c += (x - t) + s.total
	}
	s.total = t
}

func (s *sum) value() float64 {
	return s.total + s.c
}
