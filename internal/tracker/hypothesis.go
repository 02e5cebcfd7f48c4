package tracker

import "math"

// deltaTheta is the fixed rotation perturbation step, 4 degrees in radians.
const deltaTheta = 4.0 * math.Pi / 180.0

// Hypothesis is a candidate patch pose (t, x, y, θ), with cosθ/sinθ cached
// at construction so they never diverge from θ.
//
// Grounded on original_source/include/haste/core/hypothesis.hpp
// (HypothesisTXYR).
type Hypothesis struct {
	T      Time
	X, Y   Location
	Theta  Location
	CTheta Location
	STheta Location
}

// NewHypothesis constructs a Hypothesis, computing cosθ/sinθ from θ.
func NewHypothesis(t Time, x, y, theta Location) Hypothesis {
	return Hypothesis{
		T: t, X: x, Y: y, Theta: theta,
		CTheta: Location(math.Cos(float64(theta))),
		STheta: Location(math.Sin(float64(theta))),
	}
}

// Incremental is a perturbation (dx, dy, dθ) applied at a fixed t.
type Incremental struct {
	DX, DY, DTheta Location
}

// Perturb produces a new Hypothesis at the same t, with (dx, dy, dθ) applied
// and trig recomputed fresh.
func (h Hypothesis) Perturb(inc Incremental) Hypothesis {
	return NewHypothesis(h.T, h.X+inc.DX, h.Y+inc.DY, h.Theta+inc.DTheta)
}

// NullHypothesisIndex is the conventional index of the unperturbed center
// hypothesis within a HypothesisSet.
const NullHypothesisIndex = 0

// incrementalHypotheses11 is the default 8-neighborhood + 2-rotation
// generator (K=11): null, ±1px in x, ±1px in y, the four diagonal ±1px
// combinations, and ±4° in θ.
var incrementalHypotheses11 = [NumHypotheses11]Incremental{
	{0, 0, 0},
	{+deltaXY, 0, 0}, {-deltaXY, 0, 0},
	{0, +deltaXY, 0}, {0, -deltaXY, 0},
	{+deltaXY, +deltaXY, 0}, {-deltaXY, +deltaXY, 0},
	{-deltaXY, -deltaXY, 0}, {+deltaXY, -deltaXY, 0},
	{0, 0, +deltaTheta}, {0, 0, -deltaTheta},
}

// incrementalHypotheses7 is the reduced 4-neighborhood + 2-rotation
// generator (K=7).
var incrementalHypotheses7 = [NumHypotheses7]Incremental{
	{0, 0, 0},
	{+deltaXY, 0, 0}, {-deltaXY, 0, 0},
	{0, +deltaXY, 0}, {0, -deltaXY, 0},
	{0, 0, +deltaTheta}, {0, 0, -deltaTheta},
}

// HypothesisSet is an ordered collection of K hypotheses centered on a null
// hypothesis at NullHypothesisIndex. The tracker treats K as abstract; the
// generator in use determines it.
type HypothesisSet struct {
	hypotheses []Hypothesis
	increments []Incremental
}

// NewHypothesisSet11 builds a HypothesisSet backed by the 11-member
// generator, centered on center.
func NewHypothesisSet11(center Hypothesis) *HypothesisSet {
	return newHypothesisSet(center, incrementalHypotheses11[:])
}

// NewHypothesisSet7 builds a HypothesisSet backed by the 7-member generator,
// centered on center.
func NewHypothesisSet7(center Hypothesis) *HypothesisSet {
	return newHypothesisSet(center, incrementalHypotheses7[:])
}

func newHypothesisSet(center Hypothesis, increments []Incremental) *HypothesisSet {
	s := &HypothesisSet{increments: increments, hypotheses: make([]Hypothesis, len(increments))}
	s.Generate(center)
	return s
}

// Generate replaces the set's hypotheses with K fresh neighbors of center,
// applying each fixed increment (the first is zero, giving H0 == center).
func (s *HypothesisSet) Generate(center Hypothesis) {
	for i, inc := range s.increments {
		s.hypotheses[i] = center.Perturb(inc)
	}
}

// K returns the number of hypotheses in the set.
func (s *HypothesisSet) K() int {
	return len(s.hypotheses)
}

// At returns the i'th hypothesis.
func (s *HypothesisSet) At(i int) Hypothesis {
	return s.hypotheses[i]
}

// Null returns the current null (index 0) hypothesis.
func (s *HypothesisSet) Null() Hypothesis {
	return s.hypotheses[NullHypothesisIndex]
}

// SetTime refreshes every hypothesis's t in place, leaving x/y/θ untouched.
func (s *HypothesisSet) SetTime(t Time) {
	for i := range s.hypotheses {
		s.hypotheses[i].T = t
	}
}
