package msd

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-msd/dsp/corr"
)

// Lags returns the number of MSD values produced for a trajectory of n
// samples: the count of lags m with 1 <= m < n/4.
func Lags(n int) int {
	return max(n/4-1, 0)
}

// Engine computes MSD curves and keeps the autocorrelation plan between
// calls. Trajectories of similar length reuse the same FFT plan.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	cfg Config
	ac  *corr.Autocorrelator
}

// NewEngine returns an Engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	cfg := ApplyOptions(opts...)
	return &Engine{
		cfg: cfg,
		ac:  corr.New(cfg.Backend),
	}
}

// Config returns the engine settings.
func (e *Engine) Config() Config {
	return e.cfg
}

// Compute is a one-shot wrapper around [Engine.Compute].
func Compute(x []float64, opts ...Option) ([]float64, error) {
	return NewEngine(opts...).Compute(x)
}

// Compute returns D(m) for m = 1 .. len(x)/4-1; element i holds lag i+1.
// x must already be unwrapped and is not modified. A trajectory with no
// valid lag yields an empty slice and no error.
func (e *Engine) Compute(x []float64) ([]float64, error) {
	n := len(x)
	lags := Lags(n)
	if lags == 0 {
		return []float64{}, nil
	}

	// Centre on the mean; D(m) is translation invariant.
	c := make([]float64, n)
	copy(c, x)
	floats.AddConst(-floats.Sum(x)/float64(n), c)

	sq := make([]float64, n)
	vecmath.MulBlock(sq, c, c)

	// prefix[j] = sum_{k<j} c[k]^2
	prefix := make([]float64, n+1)
	for k, v := range sq {
		prefix[k+1] = prefix[k] + v
	}

	s2, err := e.ac.Lags(c, lags)
	if err != nil {
		return nil, fmt.Errorf("msd: autocorrelation: %w", err)
	}

	out := make([]float64, lags)
	for i := range out {
		m := i + 1
		// S1(m): squares of c[m..n-1] plus squares of c[0..n-m-1]
		s1 := (prefix[n] - prefix[m]) + prefix[n-m]
		d := (s1 - 2*s2[m]) / float64(n-m)
		// Rounding can leave a constant trajectory slightly below zero;
		// NaN passes through math.Max unchanged.
		out[i] = math.Max(d, 0)
	}
	return out, nil
}

// Direct evaluates D(m) for m = 1 .. len(x)/4-1 straight from the
// definition in O(N^2).
func Direct(x []float64) []float64 {
	n := len(x)
	out := make([]float64, Lags(n))
	for i := range out {
		m := i + 1
		var sum float64
		for k := 0; k+m < n; k++ {
			d := x[k+m] - x[k]
			sum += d * d
		}
		out[i] = sum / float64(n-m)
	}
	return out
}
