package pbc

import (
	"errors"
	"math"
)

// ErrInvalidBoxSize is returned when the box size is not a positive number.
var ErrInvalidBoxSize = errors.New("pbc: box size must be positive")

// Unwrap returns the unbounded trajectory for x folded into a periodic box of
// size box. The result has the same length as x, out[0] == x[0], and every
// step out[i+1]-out[i] is the raw step x[i+1]-x[i] reduced modulo box into
// the half-open window around zero.
//
// x is not modified.
func Unwrap(x []float64, box float64) ([]float64, error) {
	if err := checkBox(box); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	copy(out, x)
	unwrap(out, box)
	return out, nil
}

// UnwrapInPlace is the in-place variant of [Unwrap]. It rewrites x with its
// unwrapped trajectory. On error x is left untouched.
func UnwrapInPlace(x []float64, box float64) error {
	if err := checkBox(box); err != nil {
		return err
	}

	unwrap(x, box)
	return nil
}

// Crossings returns the signed number of box lengths contained in the raw
// step d: positive when the particle left through the upper boundary
// (d > box/2), negative for the lower one, zero when no correction applies.
func Crossings(d, box float64) float64 {
	half := box / 2
	switch {
	case d > half:
		return math.Floor((d + half) / box)
	case d < -half:
		return -math.Floor((-d + half) / box)
	default:
		return 0
	}
}

// unwrap works on raw deltas and keeps the accumulated correction in shift,
// so rounding does not build up through a running sum of corrected steps.
func unwrap(x []float64, box float64) {
	if len(x) < 2 {
		return
	}

	var shift float64
	prev := x[0]
	for i := 1; i < len(x); i++ {
		raw := x[i]
		shift -= box * Crossings(raw-prev, box)
		prev = raw
		x[i] = raw + shift
	}
}

// Wrap folds an unbounded trajectory into [0, box). It is the inverse
// direction of [Unwrap]: Unwrap(Wrap(x)) reproduces x up to a constant
// multiple of box, provided no true step of x exceeds box/2.
func Wrap(x []float64, box float64) ([]float64, error) {
	if err := checkBox(box); err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	for i, v := range x {
		w := math.Mod(v, box)
		if w < 0 {
			w += box
		}
		// -tiny + box rounds to box itself
		if w >= box {
			w = 0
		}
		out[i] = w
	}
	return out, nil
}

// MaxStep returns the largest absolute step |x[i+1]-x[i]|, or 0 for fewer
// than two samples. For an unwrapped trajectory it never exceeds box/2.
func MaxStep(x []float64) float64 {
	var m float64
	for i := 1; i < len(x); i++ {
		if d := math.Abs(x[i] - x[i-1]); d > m {
			m = d
		}
	}
	return m
}

func checkBox(box float64) error {
	// !(box > 0) also rejects NaN
	if !(box > 0) || math.IsInf(box, 0) {
		return ErrInvalidBoxSize
	}
	return nil
}
