package corr_test

import (
	"fmt"

	"github.com/cwbudde/algo-msd/dsp/corr"
)

func ExampleAutoCorrelate() {
	x := []float64{1, 2, 3}

	r, _ := corr.AutoCorrelate(x, 2)
	fmt.Printf("%.1f %.1f %.1f\n", r[0], r[1], r[2])

	// Output:
	// 14.0 8.0 3.0
}

func ExampleAutocorrelator() {
	ac := corr.New(corr.Gonum)

	for _, x := range [][]float64{{1, 1, 1, 1}, {1, -1, 1, -1}} {
		r, _ := ac.Lags(x, 3)
		fmt.Printf("%.1f %.1f %.1f %.1f\n", r[0], r[1], r[2], r[3])
	}
	fmt.Println("size:", ac.Size())

	// Output:
	// 4.0 3.0 2.0 1.0
	// 4.0 -3.0 2.0 -1.0
	// size: 8
}
