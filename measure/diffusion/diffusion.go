package diffusion

import (
	"errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Errors returned by diffusion analysis functions.
var (
	ErrInvalidTimeStep = errors.New("diffusion: time step must be positive")
	ErrInvalidRange    = errors.New("diffusion: lag range outside the MSD curve")
	ErrTooFewPoints    = errors.New("diffusion: fit needs at least two lags")
)

// Result holds a linear fit of MSD against lag time.
type Result struct {
	Slope       float64 // d(MSD)/dt
	Intercept   float64 // MSD at t = 0 from the fit
	Coefficient float64 // self-diffusion coefficient, Slope/2
	R2          float64 // coefficient of determination of the fit
	From, To    int     // fitted lag window, inclusive
}

// Analyzer fits MSD curves sampled with a fixed time step.
type Analyzer struct {
	TimeStep float64
}

// NewAnalyzer creates an Analyzer for MSD curves whose lag m corresponds to
// time m*timeStep.
func NewAnalyzer(timeStep float64) *Analyzer {
	return &Analyzer{TimeStep: timeStep}
}

// Fit regresses msd[from-1 .. to-1] against t = m*TimeStep for m in
// [from, to].
func (a *Analyzer) Fit(msd []float64, from, to int) (Result, error) {
	if !(a.TimeStep > 0) {
		return Result{}, ErrInvalidTimeStep
	}
	if err := checkRange(len(msd), from, to); err != nil {
		return Result{}, err
	}
	if to-from < 1 {
		return Result{}, ErrTooFewPoints
	}

	y := msd[from-1 : to]
	t := make([]float64, len(y))
	floats.Span(t, float64(from)*a.TimeStep, float64(to)*a.TimeStep)

	intercept, slope := stat.LinearRegression(t, y, nil, false)

	return Result{
		Slope:       slope,
		Intercept:   intercept,
		Coefficient: slope / 2,
		R2:          stat.RSquared(t, y, nil, intercept, slope),
		From:        from,
		To:          to,
	}, nil
}

// Times returns the lag times m*TimeStep for every element of an MSD curve
// of length n.
func (a *Analyzer) Times(n int) []float64 {
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i+1) * a.TimeStep
	}
	return t
}

// ScalingRatio returns the mean of msd[m-1]/m for m in [from, to].
func ScalingRatio(msd []float64, from, to int) (float64, error) {
	if err := checkRange(len(msd), from, to); err != nil {
		return 0, err
	}

	r := make([]float64, 0, to-from+1)
	for m := from; m <= to; m++ {
		r = append(r, msd[m-1]/float64(m))
	}
	return stat.Mean(r, nil), nil
}

func checkRange(n, from, to int) error {
	if from < 1 || to > n || from > to {
		return ErrInvalidRange
	}
	return nil
}
