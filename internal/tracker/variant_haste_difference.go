package tracker

import "gonum.org/v1/gonum/mat"

// uniformWeight is w = 1/N, the per-event template weight used by the
// HasteDifference family.
const uniformWeight = 1.0 / float64(EventWindowSize)

// HasteDifferenceTracker scores each hypothesis by the negated squared
// Frobenius distance between the normalized template and a normalized model
// patch rendered for that hypothesis, recomputed from scratch on every
// event.
//
// Grounded on
// original_source/include/haste/tracking/haste_difference_tracker_impl.hpp.
type HasteDifferenceTracker struct {
	*patchTrackerBase
}

var _ Tracker = (*HasteDifferenceTracker)(nil)
var _ variantHooks = (*HasteDifferenceTracker)(nil)

// NewHasteDifferenceTracker constructs an uninitialized
// HasteDifferenceTracker seeded at (t, x, y, θ), generating hypotheses from a
// neighborhood of k (7 or 11).
func NewHasteDifferenceTracker(t Time, x, y, theta Location, k int) *HasteDifferenceTracker {
	hd := &HasteDifferenceTracker{patchTrackerBase: newPatchTrackerBase(t, x, y, theta, k)}
	hd.impl = hd
	return hd
}

func (h *HasteDifferenceTracker) updateTemplate() {
	h.updateTemplateWithMiddleEvent(uniformWeight)
}

func (h *HasteDifferenceTracker) eventWindowToModel(window *EventWindow, hyp Hypothesis) *mat.Dense {
	return h.eventWindowToModelUnitary(window, hyp, uniformWeight)
}

func (h *HasteDifferenceTracker) initializeHypotheses() {
	for i := 0; i < h.numK; i++ {
		h.scores[i] = -squareSum(h.differencePatch(h.hset.At(i)))
	}
}

func (h *HasteDifferenceTracker) updateScores(oldest, newest Event) {
	for i := 0; i < h.numK; i++ {
		h.scores[i] = -squareSum(h.differencePatch(h.hset.At(i)))
	}
}

func (h *HasteDifferenceTracker) appendEventToWindow(newest Event) Event {
	return h.defaultAppendEventToWindow(newest)
}

// differencePatch returns D = T/ΣT - M_h/(N·w) for hypothesis h, where M_h
// is the model patch rendered for h with the uniform weighting.
func (h *HasteDifferenceTracker) differencePatch(hyp Hypothesis) *mat.Dense {
	model := h.eventWindowToModel(h.window, hyp)

	normTemplate := mat.NewDense(PatchSize, PatchSize, nil)
	normTemplate.Scale(1/mat.Sum(h.template), h.template)

	normModel := mat.NewDense(PatchSize, PatchSize, nil)
	normModel.Scale(1/(float64(EventWindowSize)*uniformWeight), model)

	diff := mat.NewDense(PatchSize, PatchSize, nil)
	diff.Sub(normTemplate, normModel)
	return diff
}

// squareSum returns Σ m_ij^2.
func squareSum(m *mat.Dense) float64 {
	var sum float64
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := m.At(i, j)
			sum += v * v
		}
	}
	return sum
}
