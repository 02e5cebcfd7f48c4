package tracker

import "fmt"

// VariantKind selects which scoring/template strategy a tracker uses.
type VariantKind int

const (
	VariantCorrelation VariantKind = iota
	VariantHasteCorrelation
	VariantHasteDifference
	VariantHasteDifferenceStar
)

func (v VariantKind) String() string {
	switch v {
	case VariantCorrelation:
		return "correlation"
	case VariantHasteCorrelation:
		return "haste_correlation"
	case VariantHasteDifference:
		return "haste_difference"
	case VariantHasteDifferenceStar:
		return "haste_difference_star"
	default:
		return "unknown"
	}
}

// ParseVariantKind parses one of the VariantKind.String() names.
func ParseVariantKind(s string) (VariantKind, error) {
	switch s {
	case "correlation":
		return VariantCorrelation, nil
	case "haste_correlation":
		return VariantHasteCorrelation, nil
	case "haste_difference":
		return VariantHasteDifference, nil
	case "haste_difference_star":
		return VariantHasteDifferenceStar, nil
	default:
		return 0, fmt.Errorf("tracker: unknown variant kind %q", s)
	}
}

// NewTracker constructs an uninitialized Tracker of the given kind, seeded at
// (t, x, y, theta), generating hypotheses from a neighborhood of k (7 or 11).
//
// Grounded on original_source/include/haste/app/tracking.hpp's createTracker,
// which switch-dispatches on a command-line-selected tracker name and
// hypothesis count.
func NewTracker(kind VariantKind, t Time, x, y, theta Location, k int) (Tracker, error) {
	if k != NumHypotheses7 && k != NumHypotheses11 {
		return nil, fmt.Errorf("tracker: hypothesis neighborhood must be %d or %d, got %d", NumHypotheses7, NumHypotheses11, k)
	}
	switch kind {
	case VariantCorrelation:
		return NewCorrelationTracker(t, x, y, theta, k), nil
	case VariantHasteCorrelation:
		return NewHasteCorrelationTracker(t, x, y, theta, k), nil
	case VariantHasteDifference:
		return NewHasteDifferenceTracker(t, x, y, theta, k), nil
	case VariantHasteDifferenceStar:
		return NewHasteDifferenceStarTracker(t, x, y, theta, k), nil
	default:
		return nil, fmt.Errorf("tracker: unknown variant kind %d", kind)
	}
}
