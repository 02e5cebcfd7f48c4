package tracker

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Pose is a single timestamped tracker position, as observed via StateChange
// returns from PushEvent.
type Pose struct {
	T     Time
	X     Location
	Y     Location
	Theta Location
}

// Trajectory accumulates a tracker's pose history and reduces it to summary
// speed statistics. It is a diagnostics-only convenience built on top of the
// core tracker — nothing in internal/tracker's hot path depends on it.
//
// Grounded on the teacher's internal/lidar track summarization (speed
// percentiles over a track's point history), generalized from lidar tracks
// to tracker poses and re-based on gonum/stat's Quantile rather than a
// hand-rolled percentile function.
type Trajectory struct {
	poses []Pose
}

// NewTrajectory returns an empty trajectory.
func NewTrajectory() *Trajectory {
	return &Trajectory{}
}

// AddPose appends p to the trajectory. Poses must be supplied in
// non-decreasing T order.
func (tr *Trajectory) AddPose(p Pose) {
	tr.poses = append(tr.poses, p)
}

// Len reports the number of recorded poses.
func (tr *Trajectory) Len() int {
	return len(tr.poses)
}

// Summary holds the reduced statistics of a trajectory's per-segment speeds.
type Summary struct {
	MeanSpeed  float64
	P50Speed   float64
	P85Speed   float64
	P98Speed   float64
	PathLength float64
}

// Reduce computes a Summary over the trajectory's consecutive-pose speeds.
// Returns the zero Summary if fewer than two poses have been recorded.
func (tr *Trajectory) Reduce() Summary {
	if len(tr.poses) < 2 {
		return Summary{}
	}

	speeds := make([]float64, 0, len(tr.poses)-1)
	var pathLength float64
	for i := 1; i < len(tr.poses); i++ {
		prev, cur := tr.poses[i-1], tr.poses[i]
		dx := float64(cur.X - prev.X)
		dy := float64(cur.Y - prev.Y)
		dist := math.Hypot(dx, dy)
		pathLength += dist

		dt := cur.T - prev.T
		if dt <= 0 {
			continue
		}
		speeds = append(speeds, dist/dt)
	}
	if len(speeds) == 0 {
		return Summary{PathLength: pathLength}
	}

	sort.Float64s(speeds)
	return Summary{
		MeanSpeed:  stat.Mean(speeds, nil),
		P50Speed:   stat.Quantile(0.50, stat.Empirical, speeds, nil),
		P85Speed:   stat.Quantile(0.85, stat.Empirical, speeds, nil),
		P98Speed:   stat.Quantile(0.98, stat.Empirical, speeds, nil),
		PathLength: pathLength,
	}
}
