// Command hastedemo drives a tracker against a synthetic, in-process event
// stream and logs every state change. It exists to exercise the tracker
// package end-to-end without requiring a real event camera recording; it is
// not a replacement for a production event-file ingestion pipeline.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/patchtrack/haste/internal/timeutil"
	"github.com/patchtrack/haste/internal/tracker"
	"github.com/patchtrack/haste/internal/trackerconfig"
	"github.com/patchtrack/haste/internal/version"
)

var (
	configPath       = flag.String("config", "", "path to a trackerconfig JSON file (optional)")
	variantFlag      = flag.String("variant", "", "override the configured variant")
	neighborhoodFlag = flag.Int("neighborhood", 0, "override the configured hypothesis neighborhood (7 or 11)")
	seedX            = flag.Float64("seed-x", 50, "synthetic feature seed X")
	seedY            = flag.Float64("seed-y", 50, "synthetic feature seed Y")
	radiusFlag       = flag.Float64("orbit-radius", 6, "radius in pixels of the synthetic orbiting feature")
	verboseFlag      = flag.Bool("verbose", false, "log every PushEvent classification, not just state changes")
	realtimeFlag     = flag.Bool("realtime", false, "pace event generation at the configured rate instead of running as fast as possible")
	versionFlag      = flag.Bool("version", false, "print version information and exit")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("hastedemo %s (commit %s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	cfg := trackerconfig.Empty()
	if *configPath != "" {
		loaded, err := trackerconfig.Load(*configPath)
		if err != nil {
			log.Fatalf("hastedemo: %v", err)
		}
		cfg = loaded
	}
	if *variantFlag != "" {
		cfg.Variant = variantFlag
	}
	if *neighborhoodFlag != 0 {
		cfg.HypothesisNeighborhood = neighborhoodFlag
	}
	if *verboseFlag {
		v := true
		cfg.LogVerbose = &v
	}

	kind, err := tracker.ParseVariantKind(cfg.GetVariant())
	if err != nil {
		log.Fatalf("hastedemo: %v", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	ts := tracker.NewTrackerSet(kind, cfg.GetHypothesisNeighborhood(), cfg.GetLogVerbose(), logger)

	n := int(cfg.GetDemoEventRateHz() * cfg.GetDemoDurationSeconds())
	logger.Printf("hastedemo: variant=%s neighborhood=%d events=%d seed=(%.1f, %.1f) realtime=%v",
		kind, cfg.GetHypothesisNeighborhood(), n, *seedX, *seedY, *realtimeFlag)

	result, err := runDemo(ts, cfg, *seedX, *seedY, *radiusFlag, timeutil.RealClock{}, *realtimeFlag)
	if err != nil {
		log.Fatalf("hastedemo: %v", err)
	}

	logger.Printf("hastedemo: final status=%s t=%.4f x=%.2f y=%.2f theta=%.4f",
		result.finalStatus, result.finalPose.T, result.finalPose.X, result.finalPose.Y, result.finalPose.Theta)
}
