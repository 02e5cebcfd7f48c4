package tracker

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
)

// TrackerSet is a registry of independently-running Trackers keyed by
// uuid.UUID, supporting dynamic seeding of new trackers and routing of each
// incoming event to the one tracker registered under a given ID.
//
// Unlike the core per-tracker state machine (which is deliberately silent —
// spec.md's PushEvent returns a classification and nothing else), TrackerSet
// is a convenience layer and logs tracker lifecycle transitions, matching
// the teacher's internal/lidar tracking registry's use of the standard
// library logger for lifecycle events.
type TrackerSet struct {
	mu           sync.Mutex
	kind         VariantKind
	neighborhood int
	verbose      bool
	trackers     map[uuid.UUID]Tracker
	logger       *log.Logger
}

// NewTrackerSet returns an empty registry that seeds new trackers of kind,
// generating hypotheses from a neighborhood of k (7 or 11). logger may be
// nil, in which case log.Default() is used. When verbose is true,
// PushEvent logs every classification instead of only StateChange.
func NewTrackerSet(kind VariantKind, k int, verbose bool, logger *log.Logger) *TrackerSet {
	if logger == nil {
		logger = log.Default()
	}
	return &TrackerSet{
		kind:         kind,
		neighborhood: k,
		verbose:      verbose,
		trackers:     make(map[uuid.UUID]Tracker),
		logger:       logger,
	}
}

// Seed plants a new uninitialized tracker at s's pose, keyed by s.ID. It is
// an error to seed an ID that is already registered.
func (ts *TrackerSet) Seed(s Seed) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.trackers[s.ID]; exists {
		return fmt.Errorf("trackerset: id %s already seeded", s.ID)
	}
	t, err := NewTracker(ts.kind, s.T, s.X, s.Y, s.Theta, ts.neighborhood)
	if err != nil {
		return err
	}
	ts.trackers[s.ID] = t
	ts.logger.Printf("trackerset: seeded %s kind=%s neighborhood=%d pose=(%.3f, %.3f, %.3f, %.3f)", s.ID, ts.kind, ts.neighborhood, s.T, s.X, s.Y, s.Theta)
	return nil
}

// PushEvent routes (t, ex, ey) to the tracker registered under id and
// returns its classification. Returns an error if id is not registered. In
// verbose mode every classification is logged; otherwise only StateChange is.
func (ts *TrackerSet) PushEvent(id uuid.UUID, t Time, ex, ey Location) (EventUpdate, error) {
	ts.mu.Lock()
	tr, ok := ts.trackers[id]
	ts.mu.Unlock()
	if !ok {
		return OutOfRange, fmt.Errorf("trackerset: id %s not registered", id)
	}

	update := tr.PushEvent(t, ex, ey)
	if update == StateChange {
		ts.logger.Printf("trackerset: %s state_change pose=(%.3f, %.3f, %.3f, %.3f)", id, tr.T(), tr.X(), tr.Y(), tr.Theta())
	} else if ts.verbose {
		ts.logger.Printf("trackerset: %s %s pose=(%.3f, %.3f, %.3f, %.3f)", id, update, tr.T(), tr.X(), tr.Y(), tr.Theta())
	}
	return update, nil
}

// Get returns the tracker registered under id, or nil if not found.
func (ts *TrackerSet) Get(id uuid.UUID) Tracker {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.trackers[id]
}

// Remove deregisters and discards the tracker under id. A no-op if id is not
// registered.
func (ts *TrackerSet) Remove(id uuid.UUID) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if _, ok := ts.trackers[id]; ok {
		delete(ts.trackers, id)
		ts.logger.Printf("trackerset: removed %s", id)
	}
}

// Len reports the number of currently-registered trackers.
func (ts *TrackerSet) Len() int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return len(ts.trackers)
}

// IDs returns the IDs of every currently-registered tracker, in no
// particular order.
func (ts *TrackerSet) IDs() []uuid.UUID {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(ts.trackers))
	for id := range ts.trackers {
		ids = append(ids, id)
	}
	return ids
}
