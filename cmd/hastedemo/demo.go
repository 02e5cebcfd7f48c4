package main

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/patchtrack/haste/internal/timeutil"
	"github.com/patchtrack/haste/internal/tracker"
	"github.com/patchtrack/haste/internal/trackerconfig"
)

// demoResult summarizes one run of the synthetic orbit demo, for both
// console reporting and test assertions.
type demoResult struct {
	seedID      uuid.UUID
	eventsSent  int
	finalStatus tracker.Status
	finalPose   tracker.Pose
}

// runDemo seeds a single tracker at (seedX, seedY) and drives it through a
// synthetic feature orbiting that point at orbitRadius pixels, at the rate
// and for the duration configured in cfg. When realtime is true, it paces
// itself against clock so a human watching logVerbose output sees events
// arrive at the configured rate; when false (the default) it runs as fast
// as possible.
//
// Grounded on the pacing shape of cmd/lidar/lidar.go's statistics-logging
// ticker loop, generalized from a wall-clock ticker to an injectable Clock
// so the pacing itself is testable without a real sleep.
func runDemo(ts *tracker.TrackerSet, cfg *trackerconfig.Config, seedX, seedY, orbitRadius float64, clock timeutil.Clock, realtime bool) (demoResult, error) {
	seed := tracker.Seed{
		ID:    uuid.New(),
		T:     0,
		X:     tracker.Location(seedX),
		Y:     tracker.Location(seedY),
		Theta: 0,
	}
	if err := ts.Seed(seed); err != nil {
		return demoResult{}, err
	}

	rate := cfg.GetDemoEventRateHz()
	duration := cfg.GetDemoDurationSeconds()
	n := int(rate * duration)
	dt := 1.0 / rate

	for i := 0; i < n; i++ {
		t := float64(i) * dt
		angle := 2 * math.Pi * t / duration
		ex := tracker.Location(seedX + orbitRadius*math.Cos(angle))
		ey := tracker.Location(seedY + orbitRadius*math.Sin(angle))

		if _, err := ts.PushEvent(seed.ID, t, ex, ey); err != nil {
			return demoResult{}, err
		}
		if realtime {
			clock.Sleep(time.Duration(dt * float64(time.Second)))
		}
	}

	tr := ts.Get(seed.ID)
	return demoResult{
		seedID:      seed.ID,
		eventsSent:  n,
		finalStatus: tr.Status(),
		finalPose:   tracker.Pose{T: tr.T(), X: tr.X(), Y: tr.Y(), Theta: tr.Theta()},
	}, nil
}
