// Package msd computes the mean square displacement (MSD) of a
// one-dimensional, already unwrapped trajectory.
//
// For a trajectory x of length N and a lag m the MSD is
//
//	D(m) = 1/(N-m) * sum_{k=0}^{N-m-1} (x[k+m] - x[k])^2
//
// Only lags 1 <= m < N/4 are reported. Larger lags average over too few
// sample pairs to be useful. Trajectories shorter than 8 samples therefore
// produce an empty result.
//
// # Algorithm
//
// [Compute] runs in O(N log N). Expanding the square splits the sum into
//
//	S1(m) = sum (x[k+m]^2 + x[k]^2)
//	S2(m) = sum x[k+m]*x[k]
//
// so that D(m) = (S1(m) - 2*S2(m)) / (N-m). S1 comes from a prefix-sum array
// of the squared samples. S2 is the non-circular autocorrelation of x, taken
// for all lags at once from a zero-padded FFT (package corr).
//
// The trajectory is shifted by its mean first. D(m) does not change, but S1
// and 2*S2 stay small, which avoids cancellation for trajectories that sit far
// from the origin.
//
// [Direct] evaluates the definition in O(N^2) and is the reference the fast
// path is validated against.
//
// Periodic boundaries are not handled here; unwrap the trajectory with
// package pbc first.
package msd
