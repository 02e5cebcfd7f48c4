// Package tracker implements the hypothesis-based patch tracker for event
// cameras: a per-feature, single-threaded online state machine that follows a
// small image patch through a stream of per-pixel brightness-change events.
package tracker

// Time is a wide floating value; events carry monotonically non-decreasing
// timestamps.
type Time = float64

// Location is a single-precision image-plane or patch-frame coordinate.
type Location = float32

// Polarity is the signed two-valued brightness-change marker of an event.
type Polarity int8

const (
	PolarityNegative Polarity = -1
	PolarityPositive Polarity = +1
)

// Event is a single per-pixel brightness-change observation (t, x, y, p).
type Event struct {
	T Time
	X Location
	Y Location
	P Polarity
}

// Status is the lifecycle state of a PatchTracker.
type Status int

const (
	StatusUninitialized Status = iota
	StatusRunning
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusRunning:
		return "running"
	default:
		return "unknown"
	}
}

// EventUpdate classifies how push_event handled an incoming event.
type EventUpdate int

const (
	OutOfRange EventUpdate = iota
	Initializing
	RegularEvent
	StateChange
)

func (u EventUpdate) String() string {
	switch u {
	case OutOfRange:
		return "out_of_range"
	case Initializing:
		return "initializing"
	case RegularEvent:
		return "regular_event"
	case StateChange:
		return "state_change"
	default:
		return "unknown"
	}
}

// Compile-time contract constants (spec.md §6). These are never
// runtime-configurable: changing any of them changes the algorithm, not a
// tuning knob.
const (
	// PatchSize is the side length P of the square patch template.
	PatchSize = 31
	// patchHalf is floor(P/2), the integer half-size used for the patch
	// coordinate origin and the range-filter radius.
	patchHalf = PatchSize / 2

	// EventWindowSize is N = 2*floor(0.2*P^2/2)+1, the fixed number of most
	// recent in-range events retained by a tracker.
	EventWindowSize = 2*((2*PatchSize*PatchSize)/10/2) + 1
	// MiddleIndex is M = (N-1)/2, the index of the temporally-centered event
	// in the window.
	MiddleIndex = (EventWindowSize - 1) / 2

	// NumHypotheses11 is K for the default 8-neighborhood + 2-rotation
	// hypothesis generator (null, 4 axis neighbors, 4 diagonal neighbors, 2
	// rotations).
	NumHypotheses11 = 11
	// NumHypotheses7 is K for the reduced 4-neighborhood + 2-rotation
	// generator.
	NumHypotheses7 = 7

	// deltaXY is the fixed translation perturbation step, in pixels.
	deltaXY Location = 1.0
	// HysteresisFactor is η, the minimum normalized score margin required to
	// depart from the null hypothesis.
	HysteresisFactor = 0.05
	// TemplateUpdateFactor boosts the middle-event's contribution to the
	// template on every update.
	TemplateUpdateFactor = 4.0
)
