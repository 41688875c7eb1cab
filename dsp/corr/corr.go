package corr

import (
	"errors"
	"fmt"
	"strings"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Errors returned by autocorrelation functions.
var (
	ErrNegativeLag    = errors.New("corr: negative lag")
	ErrUnknownBackend = errors.New("corr: unknown backend")
)

// Backend selects the FFT implementation used for the transform.
type Backend int

const (
	// AlgoFFT uses a complex-to-complex algo-fft plan.
	AlgoFFT Backend = iota

	// Gonum uses gonum's real-to-complex FFT.
	Gonum
)

// String returns the backend name accepted by [ParseBackend].
func (b Backend) String() string {
	switch b {
	case AlgoFFT:
		return "algofft"
	case Gonum:
		return "gonum"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend converts a backend name into a Backend. Matching is
// case-insensitive.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "algofft", "algo-fft", "":
		return AlgoFFT, nil
	case "gonum":
		return Gonum, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

// Autocorrelator computes non-circular autocorrelations and caches the FFT
// plan and scratch buffers for the most recent padded size.
//
// An Autocorrelator is not safe for concurrent use.
type Autocorrelator struct {
	backend Backend
	size    int

	// algo-fft state
	plan *algofft.Plan[complex128]
	bins []complex128

	// gonum state
	fft   *fourier.FFT
	coeff []complex128
	seq   []float64

	// split real/imag parts for the power spectrum
	re, im, pow []float64
}

// New returns an Autocorrelator using the given backend. Unknown backends
// fall back to AlgoFFT.
func New(backend Backend) *Autocorrelator {
	if backend != Gonum {
		backend = AlgoFFT
	}
	return &Autocorrelator{backend: backend}
}

// Backend returns the transform backend in use.
func (a *Autocorrelator) Backend() Backend {
	return a.backend
}

// Size returns the padded transform length of the last call, or 0 before the
// first one.
func (a *Autocorrelator) Size() int {
	return a.size
}

// AutoCorrelate computes r[0..maxLag] for x with the AlgoFFT backend.
func AutoCorrelate(x []float64, maxLag int) ([]float64, error) {
	return New(AlgoFFT).Lags(x, maxLag)
}

// Lags returns r[0..maxLag] with r[k] = sum_{i=0}^{N-1-k} x[i]*x[i+k].
// maxLag is clamped to len(x)-1. An empty x yields an empty result.
func (a *Autocorrelator) Lags(x []float64, maxLag int) ([]float64, error) {
	if maxLag < 0 {
		return nil, ErrNegativeLag
	}

	n := len(x)
	if n == 0 {
		return []float64{}, nil
	}
	if maxLag > n-1 {
		maxLag = n - 1
	}

	if err := a.prepare(PaddedSize(n)); err != nil {
		return nil, err
	}

	out := make([]float64, maxLag+1)
	var err error
	switch a.backend {
	case Gonum:
		a.lagsGonum(out, x)
	default:
		err = a.lagsAlgoFFT(out, x)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// minSize is the smallest transform length handed to a backend.
const minSize = 8

// PaddedSize returns the transform length used for a signal of n samples:
// the next power of two that is at least 2n, and at least 8.
func PaddedSize(n int) int {
	return max(nextPowerOf2(2*n), minSize)
}

func (a *Autocorrelator) prepare(size int) error {
	if a.size == size {
		return nil
	}

	switch a.backend {
	case Gonum:
		a.fft = fourier.NewFFT(size)
		a.coeff = make([]complex128, size/2+1)
		a.seq = make([]float64, size)
		a.re = make([]float64, size/2+1)
		a.im = make([]float64, size/2+1)
		a.pow = make([]float64, size/2+1)
	default:
		plan, err := algofft.NewPlan64(size)
		if err != nil {
			return fmt.Errorf("corr: failed to create FFT plan: %w", err)
		}
		a.plan = plan
		a.bins = make([]complex128, size)
		a.re = make([]float64, size)
		a.im = make([]float64, size)
		a.pow = make([]float64, size)
	}

	a.size = size
	return nil
}

func (a *Autocorrelator) lagsAlgoFFT(out, x []float64) error {
	// Zero-pad
	for i := range a.bins {
		a.bins[i] = 0
	}
	for i, v := range x {
		a.bins[i] = complex(v, 0)
	}

	err := a.plan.Forward(a.bins, a.bins)
	if err != nil {
		return fmt.Errorf("corr: forward FFT failed: %w", err)
	}

	// X * conj(X) = |X|^2
	a.power(a.bins)
	for i, p := range a.pow {
		a.bins[i] = complex(p, 0)
	}

	err = a.plan.Inverse(a.bins, a.bins)
	if err != nil {
		return fmt.Errorf("corr: inverse FFT failed: %w", err)
	}

	// Imaginary residue is rounding noise.
	for k := range out {
		out[k] = real(a.bins[k])
	}
	return nil
}

func (a *Autocorrelator) lagsGonum(out, x []float64) {
	for i := range a.seq {
		a.seq[i] = 0
	}
	copy(a.seq, x)

	a.coeff = a.fft.Coefficients(a.coeff, a.seq)

	a.power(a.coeff)
	for i, p := range a.pow {
		a.coeff[i] = complex(p, 0)
	}

	// Sequence is unnormalized: a round trip multiplies by size.
	a.seq = a.fft.Sequence(a.seq, a.coeff)
	vecmath.ScaleBlock(out, a.seq[:len(out)], 1/float64(a.size))
}

// power fills a.pow with |c[i]|^2.
func (a *Autocorrelator) power(c []complex128) {
	for i, v := range c {
		a.re[i] = real(v)
		a.im[i] = imag(v)
	}
	vecmath.Power(a.pow, a.re, a.im)
}

// Direct computes r[0..maxLag] with the O(N*maxLag) definition. It is the
// reference the FFT path is tested against.
func Direct(x []float64, maxLag int) ([]float64, error) {
	if maxLag < 0 {
		return nil, ErrNegativeLag
	}

	n := len(x)
	if n == 0 {
		return []float64{}, nil
	}
	if maxLag > n-1 {
		maxLag = n - 1
	}

	out := make([]float64, maxLag+1)
	for k := range out {
		var sum float64
		for i := 0; i+k < n; i++ {
			sum += x[i] * x[i+k]
		}
		out[k] = sum
	}
	return out, nil
}

// nextPowerOf2 returns the smallest power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
