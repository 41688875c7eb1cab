// Package trajio reads one-dimensional trajectories from whitespace-separated
// text columns and writes trajectories and MSD tables back as text.
//
// Input rows hold one sample each. Blank lines and lines starting with '#'
// are skipped; the sample is taken from a 0-based column, so files with a
// leading time or step column are read by selecting column 1.
package trajio
