package tracker

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// gaussianWeights returns the length-N Gaussian window weight vector used by
// Correlation and HasteCorrelation: g_i ∝ exp(-(i-M)^2 / (2σ²)), σ = N/6,
// normalized so Σg_i = 1.
//
// Grounded on original_source/include/haste/tracking/correlation_tracker_impl.hpp's
// setGaussianWeight_. Computed directly via math.Exp rather than
// gonum/stat's distuv.Normal: the source's weight is an unnormalized
// Gaussian kernel renormalized to sum to 1, not a probability density, and
// reusing distuv.Normal.Prob would only add and then immediately cancel its
// 1/(σ√2π) density prefactor (see DESIGN.md open question #3).
func gaussianWeights() []float64 {
	const sigma = float64(EventWindowSize) / 6.0
	const sigma2 = sigma * sigma
	w := make([]float64, EventWindowSize)
	for i := range w {
		d := float64(i) - float64(MiddleIndex)
		w[i] = math.Exp(-0.5 * d * d / sigma2)
	}
	sum := floats.Sum(w)
	floats.Scale(1/sum, w)
	return w
}

// CorrelationTracker is the baseline, non-incremental scorer: it recomputes
// every hypothesis's score from scratch on every event by sampling the
// template at each hypothesis's patch-mapped window coordinates and
// Gaussian-weighting the result.
//
// Grounded on original_source/include/haste/tracking/correlation_tracker_impl.hpp.
// Despite the name, this is the non-"haste" (non-incremental) variant —
// HasteCorrelation is the incremental one; spec.md §9 explicitly calls for
// keeping both, not merging them.
type CorrelationTracker struct {
	*patchTrackerBase
	weights []float64
}

var _ Tracker = (*CorrelationTracker)(nil)
var _ variantHooks = (*CorrelationTracker)(nil)

// NewCorrelationTracker constructs an uninitialized CorrelationTracker seeded
// at (t, x, y, θ), generating hypotheses from a neighborhood of k (7 or 11).
func NewCorrelationTracker(t Time, x, y, theta Location, k int) *CorrelationTracker {
	ct := &CorrelationTracker{
		patchTrackerBase: newPatchTrackerBase(t, x, y, theta, k),
		weights:          gaussianWeights(),
	}
	ct.impl = ct
	return ct
}

func (c *CorrelationTracker) updateTemplate() {
	c.updateTemplateWithMiddleEvent(c.weights[MiddleIndex])
}

func (c *CorrelationTracker) eventWindowToModel(window *EventWindow, h Hypothesis) *mat.Dense {
	return c.eventWindowToModelWeighted(window, h, c.weights)
}

func (c *CorrelationTracker) initializeHypotheses() {
	for i := 0; i < c.numK; i++ {
		c.scores[i] = c.hypothesisScore(c.hset.At(i))
	}
}

func (c *CorrelationTracker) updateScores(oldest, newest Event) {
	// Both oldest and newest are ignored: every hypothesis is rescored from
	// scratch against the full, just-updated window.
	for i := 0; i < c.numK; i++ {
		c.scores[i] = c.hypothesisScore(c.hset.At(i))
	}
}

func (c *CorrelationTracker) appendEventToWindow(newest Event) Event {
	return c.defaultAppendEventToWindow(newest)
}

func (c *CorrelationTracker) hypothesisScore(h Hypothesis) float64 {
	xpVec, ypVec := patchLocationVec(c.window.ExVec(), c.window.EyVec(), h)
	sampled := c.interp.SampleVec(c.template, xpVec, ypVec)
	return floats.Dot(c.weights, sampled)
}
