package tracker

import (
	"gonum.org/v1/gonum/mat"
)

// HasteCorrelationTracker is the incremental counterpart of
// CorrelationTracker: it maintains a K×N samples stack — the template
// sampled at every hypothesis's patch-mapped coordinate for every event
// currently in the window — so that after the first event following a
// transition, scoring an event is a single K×N matrix-vector product against
// the Gaussian weights rather than K·N fresh template samples.
//
// Grounded on
// original_source/include/haste/tracking/haste_correlation_tracker_impl.hpp.
type HasteCorrelationTracker struct {
	*patchTrackerBase
	weights      []float64
	samplesStack *mat.Dense // K x N
}

var _ Tracker = (*HasteCorrelationTracker)(nil)
var _ variantHooks = (*HasteCorrelationTracker)(nil)

// NewHasteCorrelationTracker constructs an uninitialized
// HasteCorrelationTracker seeded at (t, x, y, θ), generating hypotheses from
// a neighborhood of k (7 or 11).
func NewHasteCorrelationTracker(t Time, x, y, theta Location, k int) *HasteCorrelationTracker {
	hc := &HasteCorrelationTracker{
		patchTrackerBase: newPatchTrackerBase(t, x, y, theta, k),
		weights:          gaussianWeights(),
		samplesStack:     mat.NewDense(k, EventWindowSize, nil),
	}
	hc.impl = hc
	return hc
}

func (h *HasteCorrelationTracker) updateTemplate() {
	h.updateTemplateWithMiddleEvent(h.weights[MiddleIndex])
}

func (h *HasteCorrelationTracker) eventWindowToModel(window *EventWindow, hyp Hypothesis) *mat.Dense {
	return h.eventWindowToModelWeighted(window, hyp, h.weights)
}

// appendEventToWindow inserts newest into the ring buffer, then shifts the
// samples stack one column to the left and fills the new rightmost column
// with the template sampled at newest's patch coordinates under every
// current hypothesis.
func (h *HasteCorrelationTracker) appendEventToWindow(newest Event) Event {
	oldest := h.defaultAppendEventToWindow(newest)

	for i := 0; i < h.numK; i++ {
		row := h.samplesStack.RawRowView(i)
		copy(row[:EventWindowSize-1], row[1:])
	}
	for i := 0; i < h.numK; i++ {
		xp, yp := patchLocation(newest.X, newest.Y, h.hset.At(i))
		h.samplesStack.Set(i, EventWindowSize-1, h.interp.Sample(h.template, xp, yp))
	}
	return oldest
}

// initializeHypotheses rebuilds the entire samples stack from scratch
// (required whenever the hypothesis set is replaced wholesale on a
// transition; spec.md §9) and recomputes scores = S·weights.
func (h *HasteCorrelationTracker) initializeHypotheses() {
	exVec, eyVec := h.window.ExVec(), h.window.EyVec()
	for i := 0; i < h.numK; i++ {
		xpVec, ypVec := patchLocationVec(exVec, eyVec, h.hset.At(i))
		sampled := h.interp.SampleVec(h.template, xpVec, ypVec)
		h.samplesStack.SetRow(i, sampled)
	}
	h.recomputeScores()
}

// updateScores recomputes score = S·weights; the samples stack itself was
// already shifted and appended to by appendEventToWindow.
func (h *HasteCorrelationTracker) updateScores(oldest, newest Event) {
	h.recomputeScores()
}

func (h *HasteCorrelationTracker) recomputeScores() {
	var scoreVec mat.VecDense
	scoreVec.MulVec(h.samplesStack, mat.NewVecDense(EventWindowSize, h.weights))
	for i := 0; i < h.numK; i++ {
		h.scores[i] = scoreVec.AtVec(i)
	}
}
