package pbc

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/cwbudde/algo-msd/internal/testutil"
)

func TestUnwrapConstantVelocity(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		box  float64
	}{
		{name: "slow positive", v: 0.3, box: 5},
		{name: "slow negative", v: -0.7, box: 5},
		{name: "just under half box", v: 2.45, box: 5},
		{name: "negative just under half box", v: -2.45, box: 5},
		{name: "non-integer box", v: 1.1, box: math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := testutil.ConstantVelocity(0, tt.v, 200)
			folded := testutil.Fold(want, tt.box)

			got, err := Unwrap(folded, tt.box)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
		})
	}
}

// A velocity beyond one box per step is only observable modulo the box:
// the unwrapped step is v reduced into (-box/2, box/2].
func TestUnwrapConstantVelocityFasterThanBox(t *testing.T) {
	tests := []struct {
		name  string
		v     float64
		alias float64
	}{
		{name: "one box plus", v: 5.4, alias: 0.4},
		{name: "three boxes plus", v: 16.2, alias: 1.2},
		{name: "negative two boxes", v: -11.3, alias: -1.3},
		{name: "rounds to negative", v: 8.5, alias: -1.5},
	}

	const box = 5.0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folded := testutil.Fold(testutil.ConstantVelocity(0, tt.v, 100), box)

			got, err := Unwrap(folded, box)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			want := testutil.ConstantVelocity(0, tt.alias, 100)
			testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
		})
	}
}

func TestUnwrapMultipleCrossingsPerStep(t *testing.T) {
	const box = 2.0
	rng := testutil.NewRand(11)
	want := testutil.GaussianWalk(rng, 0.5, 0.2, 500)

	// Every sample sits in an arbitrary image up to 9 boxes away, so raw
	// steps routinely span several box lengths.
	scattered := testutil.ScatterImages(rng, want, box, 9)

	got, err := Unwrap(scattered, box)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// out[0] keeps the image of the first sample; compare relative to it.
	offset := got[0] - want[0]
	if n := offset / box; math.Abs(n-math.Round(n)) > 1e-9 {
		t.Fatalf("first sample offset %v is not a whole number of boxes", offset)
	}
	for i := range want {
		if d := math.Abs(got[i] - offset - want[i]); d > 1e-9 {
			t.Fatalf("index %d: got %v, want %v (diff %v)", i, got[i]-offset, want[i], d)
		}
	}
}

func TestUnwrapStepsWithinHalfBox(t *testing.T) {
	const box = 3.0
	rng := testutil.NewRand(5)
	x := testutil.ScatterImages(rng, testutil.GaussianWalk(rng, 0, 1.5, 1000), box, 4)

	got, err := Unwrap(x, box)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m := MaxStep(got); m > box/2+1e-12 {
		t.Fatalf("MaxStep = %v, exceeds half box %v", m, box/2)
	}
	if got[0] != x[0] {
		t.Fatalf("got[0] = %v, want %v", got[0], x[0])
	}
}

func TestUnwrapIdempotent(t *testing.T) {
	const box = 10.0
	x := testutil.GaussianWalk(testutil.NewRand(3), 4, 0.8, 300)
	if MaxStep(x) > box/2 {
		t.Fatal("fixture is not continuous")
	}

	once, err := Unwrap(x, box)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireBitIdentical(t, once, x)

	twice, err := Unwrap(once, box)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireBitIdentical(t, twice, once)
}

func TestUnwrapDoesNotModifyInput(t *testing.T) {
	x := []float64{0.5, 4.5, 0.5, 4.5}
	orig := append([]float64(nil), x...)

	if _, err := Unwrap(x, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireBitIdentical(t, x, orig)
}

func TestUnwrapInPlace(t *testing.T) {
	x := []float64{0.5, 4.5, 0.5, 4.5, 3.5}
	want, err := Unwrap(x, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := UnwrapInPlace(x, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireBitIdentical(t, x, want)
	testutil.RequireSliceNearlyEqual(t, x, []float64{0.5, -0.5, 0.5, -0.5, -1.5}, 1e-12)
}

func TestUnwrapShortInputs(t *testing.T) {
	got, err := Unwrap(nil, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}

	got, err = Unwrap([]float64{42}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != 42 {
		t.Fatalf("got %v, want [42]", got)
	}
}

func TestUnwrapInvalidBox(t *testing.T) {
	for _, box := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		if _, err := Unwrap([]float64{1, 2}, box); !errors.Is(err, ErrInvalidBoxSize) {
			t.Errorf("Unwrap box=%v: expected ErrInvalidBoxSize, got %v", box, err)
		}

		x := []float64{1, 2}
		if err := UnwrapInPlace(x, box); !errors.Is(err, ErrInvalidBoxSize) {
			t.Errorf("UnwrapInPlace box=%v: expected ErrInvalidBoxSize, got %v", box, err)
		}
		if x[0] != 1 || x[1] != 2 {
			t.Errorf("UnwrapInPlace box=%v modified input: %v", box, x)
		}

		if _, err := Wrap([]float64{1}, box); !errors.Is(err, ErrInvalidBoxSize) {
			t.Errorf("Wrap box=%v: expected ErrInvalidBoxSize, got %v", box, err)
		}
	}
}

func TestUnwrapPropagatesNaN(t *testing.T) {
	got, err := Unwrap([]float64{0.1, math.NaN(), 0.2, 0.3}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got[1]) {
		t.Fatalf("got[1] = %v, want NaN", got[1])
	}
	testutil.RequireSliceNearlyEqual(t, []float64{got[0], got[2], got[3]}, []float64{0.1, 0.2, 0.3}, 0)
}

func TestCrossings(t *testing.T) {
	tests := []struct {
		d    float64
		want float64
	}{
		{d: 0, want: 0},
		{d: 0.5, want: 0},
		{d: -0.5, want: 0},
		{d: 0.6, want: 1},
		{d: -0.6, want: -1},
		{d: 1.4, want: 1},
		{d: 1.6, want: 2},
		{d: -3.7, want: -4},
		{d: 12.2, want: 12},
	}

	for _, tt := range tests {
		if got := Crossings(tt.d, 1); got != tt.want {
			t.Errorf("Crossings(%v, 1) = %v, want %v", tt.d, got, tt.want)
		}
	}
}

func TestWrapRoundTrip(t *testing.T) {
	const box = 4.0
	x := testutil.GaussianWalk(testutil.NewRand(9), 1, 0.3, 400)

	wrapped, err := Wrap(x, box)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range wrapped {
		if v < 0 || v >= box {
			t.Fatalf("wrapped[%d] = %v outside [0, %v)", i, v, box)
		}
	}

	back, err := Unwrap(wrapped, box)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// x[0] = 1 already lies in the box, so no global image offset remains.
	if diff := cmp.Diff(x, back, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestMaxStep(t *testing.T) {
	if m := MaxStep(nil); m != 0 {
		t.Fatalf("MaxStep(nil) = %v, want 0", m)
	}
	if m := MaxStep([]float64{1, 3, 2.5, -1}); m != 3.5 {
		t.Fatalf("MaxStep = %v, want 3.5", m)
	}
}
