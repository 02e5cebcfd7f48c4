package main

import (
	"testing"
	"time"

	"github.com/patchtrack/haste/internal/timeutil"
	"github.com/patchtrack/haste/internal/tracker"
	"github.com/patchtrack/haste/internal/trackerconfig"
)

func demoConfig(rateHz, durationSeconds float64) *trackerconfig.Config {
	cfg := trackerconfig.Empty()
	cfg.DemoEventRateHz = &rateHz
	cfg.DemoDurationSeconds = &durationSeconds
	return cfg
}

func TestRunDemo_NonRealtimeNeverSleeps(t *testing.T) {
	ts := tracker.NewTrackerSet(tracker.VariantHasteDifference, tracker.NumHypotheses11, false, nil)
	cfg := demoConfig(1000, 0.5) // 500 events
	clock := timeutil.NewMockClock(time.Unix(0, 0))

	result, err := runDemo(ts, cfg, 50, 50, 6, clock, false)
	if err != nil {
		t.Fatalf("runDemo returned error: %v", err)
	}
	if got := len(clock.Sleeps()); got != 0 {
		t.Errorf("non-realtime run recorded %d sleeps, want 0", got)
	}
	if result.eventsSent != 500 {
		t.Errorf("eventsSent = %d, want 500", result.eventsSent)
	}
}

func TestRunDemo_RealtimeSleepsOncePerEvent(t *testing.T) {
	ts := tracker.NewTrackerSet(tracker.VariantHasteDifference, tracker.NumHypotheses11, false, nil)
	cfg := demoConfig(1000, 0.05) // 50 events
	clock := timeutil.NewMockClock(time.Unix(0, 0))

	result, err := runDemo(ts, cfg, 50, 50, 6, clock, true)
	if err != nil {
		t.Fatalf("runDemo returned error: %v", err)
	}
	sleeps := clock.Sleeps()
	if len(sleeps) != result.eventsSent {
		t.Errorf("recorded %d sleeps, want one per event (%d)", len(sleeps), result.eventsSent)
	}
	wantDt := time.Second / 1000
	for i, d := range sleeps {
		if d != wantDt {
			t.Errorf("sleep[%d] = %v, want %v", i, d, wantDt)
		}
	}
}

func TestRunDemo_TracksFeatureToRunningStatus(t *testing.T) {
	ts := tracker.NewTrackerSet(tracker.VariantCorrelation, tracker.NumHypotheses11, false, nil)
	cfg := demoConfig(2000, 1.0) // 2000 events, well over EventWindowSize
	clock := timeutil.NewMockClock(time.Unix(0, 0))

	result, err := runDemo(ts, cfg, 50, 50, 6, clock, false)
	if err != nil {
		t.Fatalf("runDemo returned error: %v", err)
	}
	if result.finalStatus != tracker.StatusRunning {
		t.Errorf("finalStatus = %v, want running", result.finalStatus)
	}
}

// TestRunDemo_ConfiguredNeighborhoodReachesTheSeededTracker is the
// end-to-end proof that a trackerconfig.Config's HypothesisNeighborhood
// actually selects the hypothesis generator the demo's TrackerSet seeds —
// not just that the field round-trips through JSON.
func TestRunDemo_ConfiguredNeighborhoodReachesTheSeededTracker(t *testing.T) {
	cfg := demoConfig(1000, float64(tracker.EventWindowSize)/1000.0)
	seven := tracker.NumHypotheses7
	cfg.HypothesisNeighborhood = &seven

	ts := tracker.NewTrackerSet(tracker.VariantHasteDifferenceStar, cfg.GetHypothesisNeighborhood(), false, nil)
	clock := timeutil.NewMockClock(time.Unix(0, 0))

	result, err := runDemo(ts, cfg, 50, 50, 6, clock, false)
	if err != nil {
		t.Fatalf("runDemo returned error: %v", err)
	}

	tr := ts.Get(result.seedID)
	if tr == nil {
		t.Fatal("seeded tracker not found in TrackerSet")
	}
	if got := tr.NumHypotheses(); got != tracker.NumHypotheses7 {
		t.Errorf("NumHypotheses() = %d, want %d (hypothesis_neighborhood: 7 was silently ignored)", got, tracker.NumHypotheses7)
	}
}
