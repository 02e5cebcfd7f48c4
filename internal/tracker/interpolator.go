package tracker

import "gonum.org/v1/gonum/mat"

// Interpolator is a stateless collection of bilinear primitives over
// fixed-shape dense arrays. It holds no state across calls; every method
// could equally be a free function, but is kept as a zero-value type so
// callers can pass it around like the other per-variant hooks.
//
// Grounded on original_source/include/haste/core/interpolator_impl.hpp
// (bilinearIncrementVector, bilinearSample, bilinearSampleVector,
// bilinearKernel, bilinearBlock).
type Interpolator struct{}

// inBounds reports whether (x, y) addresses a full 2x2 neighborhood inside
// an array with the given number of rows/cols, i.e. 0 <= x < rows-1 and
// 0 <= y < cols-1.
func inBounds(x, y Location, rows, cols int) bool {
	return x >= 0 && y >= 0 && x < Location(rows-1) && y < Location(cols-1)
}

func floorCoords(x, y Location) (ix, iy int, dx, dy Location) {
	ix = int(x)
	iy = int(y)
	dx = x - Location(ix)
	dy = y - Location(iy)
	return
}

// Scatter adds w into the four integer neighbors of (x, y), weighted by the
// bilinear kernel. Returns true if (x, y) was in-bounds and the scatter was
// applied; a no-op otherwise.
func (Interpolator) Scatter(m *mat.Dense, x, y Location, w float64) bool {
	rows, cols := m.Dims()
	if !inBounds(x, y, rows, cols) {
		return false
	}
	ix, iy, dx, dy := floorCoords(x, y)
	dxdy := dx * dy
	m.Set(ix, iy, m.At(ix, iy)+float64(1-dx-dy+dxdy)*w)
	m.Set(ix+1, iy, m.At(ix+1, iy)+float64(dx-dxdy)*w)
	m.Set(ix, iy+1, m.At(ix, iy+1)+float64(dy-dxdy)*w)
	m.Set(ix+1, iy+1, m.At(ix+1, iy+1)+float64(dxdy)*w)
	return true
}

// Sample returns the bilinearly interpolated value of m at (x, y), or 0 if
// out-of-bounds.
func (Interpolator) Sample(m *mat.Dense, x, y Location) float64 {
	rows, cols := m.Dims()
	if !inBounds(x, y, rows, cols) {
		return 0
	}
	ix, iy, dx, dy := floorCoords(x, y)
	dxdy := dx * dy
	return float64(dxdy)*m.At(ix+1, iy+1) +
		float64(dy-dxdy)*m.At(ix, iy+1) +
		float64(dx-dxdy)*m.At(ix+1, iy) +
		float64(1-dx-dy+dxdy)*m.At(ix, iy)
}

// SampleVec applies Sample element-wise to parallel coordinate slices;
// out-of-bounds elements contribute 0.
func (in Interpolator) SampleVec(m *mat.Dense, xVec, yVec []Location) []float64 {
	out := make([]float64, len(xVec))
	for i := range xVec {
		out[i] = in.Sample(m, xVec[i], yVec[i])
	}
	return out
}

// Kernel returns the four bilinear weights as a 2x2 array, indexed
// [xOffset][yOffset]: kernel[0][0], kernel[1][0], kernel[0][1], kernel[1][1].
func (Interpolator) Kernel(x, y Location) [2][2]float64 {
	_, _, dx, dy := floorCoords(x, y)
	dxdy := dx * dy
	var k [2][2]float64
	k[0][0] = float64(1 - dx - dy + dxdy)
	k[1][0] = float64(dx - dxdy)
	k[0][1] = float64(dy - dxdy)
	k[1][1] = float64(dxdy)
	return k
}

// Block returns the integer floor anchor (ix, iy) of the 2x2 sub-array at
// (x, y). The caller must guarantee in-bounds; Block performs no check and
// is meant to be followed by direct m.At/Set calls on the four cells
// (ix,iy), (ix+1,iy), (ix,iy+1), (ix+1,iy+1).
func (Interpolator) Block(x, y Location) (ix, iy int) {
	ix, iy, _, _ = floorCoords(x, y)
	return
}
