package tracker

import "fmt"

// InitializeRegular pushes events from src, in order, through t starting at
// the seed until the event window fills and the tracker transitions out of
// StatusUninitialized. It is the straightforward case: the seed pose
// corresponds to the first event the tracker will ever see.
//
// Grounded on original_source/include/haste/utils/event_stream.hpp's
// forward-only replay used by app::run, generalized to an arbitrary Event
// source.
func InitializeRegular(t Tracker, src []Event) error {
	for _, e := range src {
		update := t.PushEvent(e.T, e.X, e.Y)
		if update == StateChange && t.Status() == StatusRunning {
			return nil
		}
	}
	return fmt.Errorf("tracker: InitializeRegular exhausted %d events without filling the window", len(src))
}

// InitializeCentered initializes t so that the seed pose corresponds to the
// temporally-centered event of the first full window, by first walking
// backward from seedIndex to gather the EventWindowSize/2 in-range events
// strictly preceding it, then replaying them (oldest first) followed by the
// seed event and everything after it.
//
// original_source's initializeTrackerCentered walks backward with
// `it != events.begin()`, which stops one event short of the true start of
// the slice whenever the backward scan reaches index 0 exactly — it silently
// accepts a window short by one event. This version walks inclusive of index
// 0 and instead reports an error if fewer than EventWindowSize/2 in-range
// events exist before seedIndex, rather than silently proceeding with a
// truncated past (DESIGN.md open question #2).
func InitializeCentered(t Tracker, events []Event, seedIndex int) error {
	const half = EventWindowSize / 2

	past := make([]Event, 0, half)
	for i := seedIndex - 1; i >= 0 && len(past) < half; i-- {
		e := events[i]
		if !t.IsEventInRange(e.X, e.Y) {
			continue
		}
		past = append(past, e)
	}
	if len(past) < half {
		return fmt.Errorf("tracker: InitializeCentered needs %d in-range events before seedIndex %d, found %d", half, seedIndex, len(past))
	}

	for i := len(past) - 1; i >= 0; i-- {
		t.PushEvent(past[i].T, past[i].X, past[i].Y)
	}

	for i := seedIndex; i < len(events); i++ {
		e := events[i]
		update := t.PushEvent(e.T, e.X, e.Y)
		if update == StateChange && t.Status() == StatusRunning {
			return nil
		}
	}
	return fmt.Errorf("tracker: InitializeCentered exhausted events from seedIndex %d without filling the window", seedIndex)
}
