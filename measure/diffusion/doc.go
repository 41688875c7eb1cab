// Package diffusion estimates transport coefficients from a mean square
// displacement curve.
//
// In one dimension a diffusive particle follows the Einstein relation
//
//	D(t) = 2 * Dc * t
//
// so the self-diffusion coefficient Dc is half the slope of the MSD against
// lag time. [Analyzer.Fit] performs that least-squares fit over a chosen lag
// window; the short-lag ballistic regime and the noisy long-lag tail should
// be left out of the window.
//
// [ScalingRatio] is a quick diffusive-regime check: the mean of D(m)/m over a
// lag window, which is constant when D grows linearly with the lag.
//
// Lags are 1-based throughout, matching the MSD layout where element i holds
// lag i+1.
package diffusion
