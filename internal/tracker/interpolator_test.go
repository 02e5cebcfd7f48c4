package tracker

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestInterpolator_ScatterOutOfBoundsIsNoOp(t *testing.T) {
	in := Interpolator{}
	m := mat.NewDense(PatchSize, PatchSize, nil)

	// Exactly PatchSize-1 is out-of-bounds: a full 2x2 neighborhood needs
	// index PatchSize-1+1 which doesn't exist.
	ok := in.Scatter(m, Location(PatchSize-1), 0, 1.0)
	if ok {
		t.Error("Scatter at x == PatchSize-1 should report out-of-bounds")
	}
	if sum := mat.Sum(m); sum != 0 {
		t.Errorf("matrix sum after out-of-bounds scatter = %v, want 0", sum)
	}

	ok = in.Scatter(m, -0.5, 0, 1.0)
	if ok {
		t.Error("Scatter at negative x should report out-of-bounds")
	}
}

func TestInterpolator_ScatterConservesMass(t *testing.T) {
	in := Interpolator{}
	m := mat.NewDense(PatchSize, PatchSize, nil)
	ok := in.Scatter(m, 3.25, 7.75, 2.0)
	if !ok {
		t.Fatal("expected in-bounds scatter to succeed")
	}
	if got, want := mat.Sum(m), 2.0; got < want-1e-9 || got > want+1e-9 {
		t.Errorf("mat.Sum after scatter = %v, want %v", got, want)
	}
}

func TestInterpolator_ScatterOnGridPointConcentratesFully(t *testing.T) {
	in := Interpolator{}
	m := mat.NewDense(PatchSize, PatchSize, nil)
	in.Scatter(m, 5, 5, 3.0)
	if got := m.At(5, 5); got != 3.0 {
		t.Errorf("m.At(5,5) = %v, want 3.0", got)
	}
}

func TestInterpolator_SampleRoundTripsScatterOnGridPoint(t *testing.T) {
	in := Interpolator{}
	m := mat.NewDense(PatchSize, PatchSize, nil)
	in.Scatter(m, 10, 10, 5.0)
	if got := in.Sample(m, 10, 10); got != 5.0 {
		t.Errorf("Sample(10,10) = %v, want 5.0", got)
	}
}

func TestInterpolator_SampleOutOfBoundsReturnsZero(t *testing.T) {
	in := Interpolator{}
	m := mat.NewDense(PatchSize, PatchSize, nil)
	in.Scatter(m, 10, 10, 5.0)
	if got := in.Sample(m, Location(PatchSize-1), 10); got != 0 {
		t.Errorf("Sample at x == PatchSize-1 = %v, want 0", got)
	}
}

func TestInterpolator_SampleVecMatchesElementwiseSample(t *testing.T) {
	in := Interpolator{}
	m := mat.NewDense(PatchSize, PatchSize, nil)
	in.Scatter(m, 10, 10, 5.0)

	xs := []Location{10, 10.5, Location(PatchSize - 1)}
	ys := []Location{10, 10.5, 10}
	got := in.SampleVec(m, xs, ys)
	for i := range xs {
		want := in.Sample(m, xs[i], ys[i])
		if got[i] != want {
			t.Errorf("SampleVec[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestInterpolator_KernelSumsToOne(t *testing.T) {
	in := Interpolator{}
	k := in.Kernel(3.3, 7.6)
	sum := k[0][0] + k[0][1] + k[1][0] + k[1][1]
	if sum < 0.999999 || sum > 1.000001 {
		t.Errorf("kernel weights sum to %v, want 1", sum)
	}
}

func TestInterpolator_BlockMatchesFloor(t *testing.T) {
	in := Interpolator{}
	ix, iy := in.Block(3.9, 7.1)
	if ix != 3 || iy != 7 {
		t.Errorf("Block(3.9, 7.1) = (%d, %d), want (3, 7)", ix, iy)
	}
}
