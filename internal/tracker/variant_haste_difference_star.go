package tracker

import "gonum.org/v1/gonum/mat"

// HasteDifferenceStarTracker is the incremental counterpart of
// HasteDifferenceTracker: instead of rendering a fresh model patch and
// re-differencing against the template on every event, it maintains a
// per-hypothesis difference patch D_i = T/ΣT - M_i/(N·w) and updates it (and
// the running score) with two O(1)-sized bilinear corrections per event —
// one removing the evicted event's contribution, one adding the newest
// event's. After each template update it shifts every D_i by the change in
// T/ΣT, a P×P pass per hypothesis.
//
// Grounded on
// original_source/include/haste/tracking/haste_difference_star_tracker_impl.hpp.
type HasteDifferenceStarTracker struct {
	*HasteDifferenceTracker
	diffPatches []*mat.Dense // K patches, P x P
}

var _ Tracker = (*HasteDifferenceStarTracker)(nil)
var _ variantHooks = (*HasteDifferenceStarTracker)(nil)

// NewHasteDifferenceStarTracker constructs an uninitialized
// HasteDifferenceStarTracker seeded at (t, x, y, θ), generating hypotheses
// from a neighborhood of k (7 or 11).
func NewHasteDifferenceStarTracker(t Time, x, y, theta Location, k int) *HasteDifferenceStarTracker {
	base := NewHasteDifferenceTracker(t, x, y, theta, k)
	star := &HasteDifferenceStarTracker{
		HasteDifferenceTracker: base,
		diffPatches:            make([]*mat.Dense, base.numK),
	}
	star.impl = star // re-target the hook pointer at the most-derived type
	return star
}

// initializeHypotheses rebuilds every difference patch from scratch
// (required after a transition replaces the hypothesis set wholesale) and
// sets score_i = -Σ D_i².
func (s *HasteDifferenceStarTracker) initializeHypotheses() {
	for i := 0; i < s.numK; i++ {
		s.diffPatches[i] = s.differencePatch(s.hset.At(i))
		s.scores[i] = -squareSum(s.diffPatches[i])
	}
}

// updateTemplate scatters the middle event into the template as
// HasteDifferenceTracker does, then adds the resulting change in T/ΣT to
// every difference patch and rescores it, so D_i keeps matching the
// from-scratch difference against the updated template.
func (s *HasteDifferenceStarTracker) updateTemplate() {
	before := mat.NewDense(PatchSize, PatchSize, nil)
	before.Scale(1/mat.Sum(s.template), s.template)
	s.updateTemplateWithMiddleEvent(uniformWeight)
	delta := mat.NewDense(PatchSize, PatchSize, nil)
	delta.Scale(1/mat.Sum(s.template), s.template)
	delta.Sub(delta, before)
	for i := 0; i < s.numK; i++ {
		s.diffPatches[i].Add(s.diffPatches[i], delta)
		s.scores[i] = -squareSum(s.diffPatches[i])
	}
}

// updateScores applies the two signed incremental corrections described in
// spec.md §4.5.4: the newest event subtracts from D (sign -1, since it adds
// to the model), the evicted event adds back to D (sign +1).
func (s *HasteDifferenceStarTracker) updateScores(oldest, newest Event) {
	for i := 0; i < s.numK; i++ {
		hyp := s.hset.At(i)
		diff := s.diffPatches[i]
		score := s.scores[i]
		applyDifferenceCorrection(diff, newest.X, newest.Y, hyp, &score, -1.0, uniformWeight, s.interp)
		applyDifferenceCorrection(diff, oldest.X, oldest.Y, hyp, &score, +1.0, uniformWeight, s.interp)
		s.scores[i] = score
	}
}

// applyDifferenceCorrection updates the 2x2 neighborhood of diff anchored at
// event's patch-mapped coordinates under hyp, by sign*weight*kernel, and
// adjusts *score to remove the old contribution of that neighborhood and
// re-apply the updated one. A no-op when the patch coordinate is
// out-of-bounds (spec.md invariant 12: xp == P-1 exactly is out-of-bounds).
func applyDifferenceCorrection(diff *mat.Dense, ex, ey Location, hyp Hypothesis, score *float64, sign, weight float64, interp Interpolator) {
	xp, yp := patchLocation(ex, ey, hyp)
	rows, cols := diff.Dims()
	if !inBounds(xp, yp, rows, cols) {
		return
	}

	ix, iy := interp.Block(xp, yp)
	k := interp.Kernel(xp, yp)

	var cells [2][2]float64
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			cells[a][b] = diff.At(ix+a, iy+b)
		}
	}

	*score += squareSum2x2(cells)

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			cells[a][b] += k[a][b] * sign * weight
		}
	}
	diff.Set(ix, iy, cells[0][0])
	diff.Set(ix+1, iy, cells[1][0])
	diff.Set(ix, iy+1, cells[0][1])
	diff.Set(ix+1, iy+1, cells[1][1])

	*score -= squareSum2x2(cells)
}

func squareSum2x2(cells [2][2]float64) float64 {
	var sum float64
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			sum += cells[a][b] * cells[a][b]
		}
	}
	return sum
}
