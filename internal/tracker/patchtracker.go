package tracker

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Tracker is the interface every variant exposes to external callers
// (spec.md §6). All four variants (Correlation, HasteCorrelation,
// HasteDifference, HasteDifferenceStar) implement it via the shared
// patchTrackerBase skeleton.
type Tracker interface {
	PushEvent(t Time, ex, ey Location) EventUpdate
	Status() Status
	T() Time
	X() Location
	Y() Location
	Theta() Location
	EventCounter() int
	NumHypotheses() int
	IsEventInRange(ex, ey Location) bool
	EventWindow() *EventWindow
	Template() *mat.Dense
	EventWindowToModel(window *EventWindow, h Hypothesis) *mat.Dense
}

// variantHooks are the three scoring/template hook points every variant
// supplies, plus the window-append extension HasteCorrelation uses to
// maintain its samples stack. Grounded on spec.md §9 ("the four variants
// share a fixed skeleton and differ on three hook points ... Plus
// append_event_to_window is extended by HasteCorrelation").
type variantHooks interface {
	// updateTemplate scatters the window's middle event into the template
	// with the variant's weighting, scaled by TemplateUpdateFactor.
	updateTemplate()
	// eventWindowToModel renders a P×P model patch for hypothesis h from
	// window, using the variant's per-event weighting.
	eventWindowToModel(window *EventWindow, h Hypothesis) *mat.Dense
	// initializeHypotheses recomputes every hypothesis's score (and any
	// variant cache) from scratch; called immediately after the hypothesis
	// set is replaced wholesale on a transition.
	initializeHypotheses()
	// updateScores recomputes (or incrementally updates) score[0..K) given
	// the event evicted from, and the event just appended to, the window.
	updateScores(oldest, newest Event)
	// appendEventToWindow inserts newest into the window (and any
	// variant-specific parallel cache) and returns the evicted event.
	appendEventToWindow(newest Event) Event
}

// patchTrackerBase holds the state and mechanics shared by every variant
// (spec.md §4.4): windowing, template, hypothesis transition with
// hysteresis, and per-event dispatch. Each concrete variant embeds
// *patchTrackerBase and sets impl to itself so the base can call back into
// the variant's hook methods — the standard Go "self-reference" shape for
// a fixed skeleton with virtual hook points (spec.md §9).
type patchTrackerBase struct {
	impl variantHooks

	status       Status
	eventCounter int
	window       *EventWindow
	hset         *HypothesisSet
	template     *mat.Dense
	scores       []float64

	interp Interpolator
	numK   int
}

func newPatchTrackerBase(t Time, x, y, theta Location, k int) *patchTrackerBase {
	center := NewHypothesis(t, x, y, theta)
	var hset *HypothesisSet
	if k == NumHypotheses7 {
		hset = NewHypothesisSet7(center)
	} else {
		hset = NewHypothesisSet11(center)
	}
	return &patchTrackerBase{
		status:   StatusUninitialized,
		window:   NewEventWindow(),
		hset:     hset,
		template: mat.NewDense(PatchSize, PatchSize, nil),
		scores:   make([]float64, hset.K()),
		numK:     hset.K(),
	}
}

func (b *patchTrackerBase) Status() Status            { return b.status }
func (b *patchTrackerBase) T() Time                   { return b.hset.Null().T }
func (b *patchTrackerBase) X() Location               { return b.hset.Null().X }
func (b *patchTrackerBase) Y() Location               { return b.hset.Null().Y }
func (b *patchTrackerBase) Theta() Location           { return b.hset.Null().Theta }
func (b *patchTrackerBase) EventCounter() int         { return b.eventCounter }
func (b *patchTrackerBase) NumHypotheses() int        { return b.numK }
func (b *patchTrackerBase) EventWindow() *EventWindow { return b.window }
func (b *patchTrackerBase) Template() *mat.Dense      { return b.template }

// IsEventInRange reports whether (ex, ey) lies strictly inside the circle of
// radius P/2 centered on the current null hypothesis.
func (b *patchTrackerBase) IsEventInRange(ex, ey Location) bool {
	null := b.hset.Null()
	dx := ex - null.X
	dy := ey - null.Y
	const threshSq = Location(patchHalf * patchHalf)
	return dx*dx+dy*dy < threshSq
}

// patchLocation maps an image-plane event into hypothesis h's patch
// coordinates (spec.md §4.4's patch-coordinate mapping).
func patchLocation(ex, ey Location, h Hypothesis) (xp, yp Location) {
	dx := ex - h.X
	dy := ey - h.Y
	xp = dx*h.CTheta + dy*h.STheta + patchHalf
	yp = -dx*h.STheta + dy*h.CTheta + patchHalf
	return
}

// patchLocationVec is the vectorized form of patchLocation over parallel
// coordinate slices.
func patchLocationVec(exVec, eyVec []Location, h Hypothesis) (xpVec, ypVec []Location) {
	xpVec = make([]Location, len(exVec))
	ypVec = make([]Location, len(exVec))
	for i := range exVec {
		xpVec[i], ypVec[i] = patchLocation(exVec[i], eyVec[i], h)
	}
	return
}

// PushEvent is the per-event procedure of spec.md §4.4.
func (b *patchTrackerBase) PushEvent(t Time, ex, ey Location) EventUpdate {
	if !b.IsEventInRange(ex, ey) {
		return OutOfRange
	}

	oldest := b.impl.appendEventToWindow(Event{T: t, X: ex, Y: ey})
	b.eventCounter++

	if b.status == StatusUninitialized {
		if b.eventCounter < EventWindowSize {
			return Initializing
		}
		b.initializeTracker()
		return StateChange
	}

	mid := b.window.MiddleEvent()
	b.hset.SetTime(mid.T)

	newest := Event{T: t, X: ex, Y: ey}
	b.impl.updateScores(oldest, newest)

	best := b.pickBest()
	var ret EventUpdate
	if best == NullHypothesisIndex {
		ret = RegularEvent
	} else {
		ret = StateChange
		b.transitionTo(b.hset.At(best))
	}

	b.impl.updateTemplate()
	return ret
}

// pickBest implements the hysteresis selection of spec.md §4.4: compute
// s_best/s_worst/s_null, normalize by the affine map to [0,1], and only
// depart from the null hypothesis when s_null < s_best AND the normalized
// margin exceeds η.
func (b *patchTrackerBase) pickBest() int {
	sBest, bestIdx := floats.Max(b.scores), floats.MaxIdx(b.scores)
	sWorst := floats.Min(b.scores)
	sNull := b.scores[NullHypothesisIndex]

	if sBest == sWorst {
		return NullHypothesisIndex
	}

	norm := func(s float64) float64 { return (s - sWorst) / (sBest - sWorst) }
	delta := norm(sBest) - norm(sNull)

	if sNull < sBest && delta > HysteresisFactor {
		return bestIdx
	}
	return NullHypothesisIndex
}

// transitionTo replaces the hypothesis set with K fresh neighbors of h and
// asks the variant to recompute every score (and cache) from scratch.
func (b *patchTrackerBase) transitionTo(h Hypothesis) {
	b.hset.Generate(h)
	b.impl.initializeHypotheses()
}

// initializeTracker builds the initial hypothesis from the window's middle
// event and the seed pose, renders the initial template, and transitions
// into it (spec.md §4.4's "Initialization").
func (b *patchTrackerBase) initializeTracker() {
	b.status = StatusRunning
	mid := b.window.MiddleEvent()
	initial := NewHypothesis(mid.T, b.X(), b.Y(), b.Theta())
	b.template = b.impl.eventWindowToModel(b.window, initial)
	b.transitionTo(initial)
}

// EventWindowToModel is exposed for diagnostics/visualization (spec.md §6).
func (b *patchTrackerBase) EventWindowToModel(window *EventWindow, h Hypothesis) *mat.Dense {
	return b.impl.eventWindowToModel(window, h)
}

// eventWindowToModelUnitary renders a model patch with every event
// contributing uniform weight w = 1/N.
func (b *patchTrackerBase) eventWindowToModelUnitary(window *EventWindow, h Hypothesis, w float64) *mat.Dense {
	model := mat.NewDense(PatchSize, PatchSize, nil)
	exVec, eyVec := window.ExVec(), window.EyVec()
	xpVec, ypVec := patchLocationVec(exVec, eyVec, h)
	for i := 0; i < EventWindowSize; i++ {
		b.interp.Scatter(model, xpVec[i], ypVec[i], w)
	}
	return model
}

// eventWindowToModelWeighted renders a model patch with event i contributing
// weights[i] (used for the Gaussian weighting).
func (b *patchTrackerBase) eventWindowToModelWeighted(window *EventWindow, h Hypothesis, weights []float64) *mat.Dense {
	model := mat.NewDense(PatchSize, PatchSize, nil)
	exVec, eyVec := window.ExVec(), window.EyVec()
	xpVec, ypVec := patchLocationVec(exVec, eyVec, h)
	for i := 0; i < EventWindowSize; i++ {
		b.interp.Scatter(model, xpVec[i], ypVec[i], weights[i])
	}
	return model
}

// updateTemplateWithMiddleEvent scatters the window's middle event into the
// template with the given per-event weight, boosted by TemplateUpdateFactor.
func (b *patchTrackerBase) updateTemplateWithMiddleEvent(weight float64) {
	mid := b.window.MiddleEvent()
	xp, yp := patchLocation(mid.X, mid.Y, b.hset.Null())
	b.interp.Scatter(b.template, xp, yp, weight*TemplateUpdateFactor)
}

// defaultAppendEventToWindow is the shared (non-HasteCorrelation) append
// behavior: just push into the ring buffer.
func (b *patchTrackerBase) defaultAppendEventToWindow(newest Event) Event {
	return b.window.Append(newest)
}
