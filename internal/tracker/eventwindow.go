package tracker

// EventWindow is a fixed-capacity ring buffer of the EventWindowSize most
// recent in-range events, plus parallel coordinate vectors used by the
// vectorized scorers.
//
// Grounded on spec.md §4.2 and the EventWindow usage throughout
// original_source/include/haste/tracking/hypothesis_tracker_impl.hpp
// (appendEvent, middleEvent, ex_vec/ey_vec).
type EventWindow struct {
	events [EventWindowSize]Event
	// head is the index the next Append will write to; the buffer is
	// logically ordered oldest-to-newest starting at head once full.
	head  int
	count int
}

// NewEventWindow returns an empty window.
func NewEventWindow() *EventWindow {
	return &EventWindow{}
}

// Len reports how many events the window currently holds: either the number
// of Append calls so far (0..N-1) or exactly N once full.
func (w *EventWindow) Len() int {
	return w.count
}

// Full reports whether the window holds exactly EventWindowSize events.
func (w *EventWindow) Full() bool {
	return w.count == EventWindowSize
}

// Append inserts the newest event, evicting and returning the oldest one.
// The returned event is undefined (zero Event) before the window is full;
// callers must not consume it until Full() is true.
func (w *EventWindow) Append(e Event) Event {
	old := w.events[w.head]
	w.events[w.head] = e
	w.head = (w.head + 1) % EventWindowSize
	if w.count < EventWindowSize {
		w.count++
	}
	return old
}

// orderedIndex maps a logical oldest-to-newest index i in [0, N) to its
// physical slot.
func (w *EventWindow) orderedIndex(i int) int {
	return (w.head + i) % EventWindowSize
}

// MiddleEvent returns the event at the temporally-centered index M.
func (w *EventWindow) MiddleEvent() Event {
	return w.events[w.orderedIndex(MiddleIndex)]
}

// ExVec and EyVec return length-N parallel vectors of the current contents,
// ordered oldest to newest. They are recomputed on every call; the base
// tracker calls them immediately after Append, per spec.md §4.2's invariant.
func (w *EventWindow) ExVec() []Location {
	out := make([]Location, EventWindowSize)
	for i := 0; i < EventWindowSize; i++ {
		out[i] = w.events[w.orderedIndex(i)].X
	}
	return out
}

func (w *EventWindow) EyVec() []Location {
	out := make([]Location, EventWindowSize)
	for i := 0; i < EventWindowSize; i++ {
		out[i] = w.events[w.orderedIndex(i)].Y
	}
	return out
}
