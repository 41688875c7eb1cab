// Command msd computes the mean square displacement of a one-dimensional
// trajectory stored as a text column.
//
// Usage:
//
//	msd compute [flags]
//	msd unwrap [flags]
//
// Examples:
//
//	msd unwrap --in folded.txt --out unwrapped.txt --box 12.5
//	msd compute --in pos.txt --pbc --box 12.5 --dt 0.002
//	msd compute --config run.yaml --backend gonum --fit-from 10 --fit-to 200
package main

import "log"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.SetFlags(0)
		log.Fatal(err)
	}
}
