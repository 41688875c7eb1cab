// Package corr computes the non-circular autocorrelation of a real signal for
// a range of non-negative lags.
//
// For a signal x of length N the lag-k value is
//
//	r[k] = sum_{i=0}^{N-1-k} x[i] * x[i+k]
//
// # Algorithm
//
// All lags are obtained at once through the convolution theorem: x is
// zero-padded to a power of two of at least 2N, transformed, multiplied by its
// own conjugate (the power spectrum |X|^2) and transformed back. Padding to
// less than 2N-1 would give the circular autocorrelation, which mixes lag k
// with lag N-k.
//
// # Backends
//
// Two transform backends are available and produce the same values up to
// rounding:
//
//   - [AlgoFFT]: complex plan from github.com/MeKo-Christian/algo-fft. The
//     inverse transform is scaled by 1/size.
//   - [Gonum]: real-input FFT from gonum.org/v1/gonum/dsp/fourier. Its inverse
//     is unscaled, so the result is divided by size explicitly.
//
// # Usage
//
// For one-shot use:
//
//	r, err := corr.AutoCorrelate(x, maxLag)
//
// For repeated calls, an [Autocorrelator] keeps its FFT plan and scratch
// buffers for the last padded size:
//
//	ac := corr.New(corr.Gonum)
//	r, err := ac.Lags(x, maxLag)
package corr
