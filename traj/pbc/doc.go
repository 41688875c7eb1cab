// Package pbc converts one-dimensional trajectories between their periodic
// (wrapped) and unbounded (unwrapped) representations.
//
// A particle simulated in a periodic box of size L is usually stored folded
// into [0, L). Unwrap recovers the trajectory it would have had in unbounded
// space by detecting boundary crossings between consecutive samples.
//
// # Multiple crossings
//
// The correction is not limited to one box length per step. When the raw
// displacement d between two samples exceeds L/2, the number of crossings is
// floor((d + L/2) / L) and that many box lengths are removed; the negative
// side is symmetric. A particle moving faster than L per sampling interval is
// therefore still unwrapped correctly, as long as its true per-step
// displacement stays within half a box.
//
// # Ownership
//
// [Unwrap] and [Wrap] return newly allocated slices and never modify their
// input. [UnwrapInPlace] rewrites the caller's slice.
//
// Non-finite samples (NaN, Inf) are not detected. A NaN sample stays NaN in
// the output and the two steps touching it receive no correction.
package pbc
