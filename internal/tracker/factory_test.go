package tracker

import (
	"fmt"
	"testing"
)

func TestParseVariantKind_RoundTripsString(t *testing.T) {
	kinds := []VariantKind{VariantCorrelation, VariantHasteCorrelation, VariantHasteDifference, VariantHasteDifferenceStar}
	for _, k := range kinds {
		parsed, err := ParseVariantKind(k.String())
		if err != nil {
			t.Errorf("ParseVariantKind(%q) returned error: %v", k.String(), err)
		}
		if parsed != k {
			t.Errorf("ParseVariantKind(%q) = %v, want %v", k.String(), parsed, k)
		}
	}
}

func TestParseVariantKind_UnknownNameErrors(t *testing.T) {
	if _, err := ParseVariantKind("not_a_variant"); err == nil {
		t.Error("expected error for unknown variant name")
	}
}

func TestNewTracker_ConstructsEachKind(t *testing.T) {
	cases := []struct {
		kind VariantKind
		want string
	}{
		{VariantCorrelation, "*tracker.CorrelationTracker"},
		{VariantHasteCorrelation, "*tracker.HasteCorrelationTracker"},
		{VariantHasteDifference, "*tracker.HasteDifferenceTracker"},
		{VariantHasteDifferenceStar, "*tracker.HasteDifferenceStarTracker"},
	}
	for _, c := range cases {
		tr, err := NewTracker(c.kind, 0, 1, 2, 0, NumHypotheses11)
		if err != nil {
			t.Fatalf("NewTracker(%v) returned error: %v", c.kind, err)
		}
		if tr == nil {
			t.Fatalf("NewTracker(%v) returned nil", c.kind)
		}
		if tr.Status() != StatusUninitialized {
			t.Errorf("NewTracker(%v) status = %v, want uninitialized", c.kind, tr.Status())
		}
		if got := fmt.Sprintf("%T", tr); got != c.want {
			t.Errorf("NewTracker(%v) concrete type = %s, want %s", c.kind, got, c.want)
		}
	}
}

// TestNewTracker_NeighborhoodSizeSelectsHypothesisCount is the end-to-end
// proof that a configured neighborhood size actually reaches the
// constructed hypothesis set, for every variant: a 7 asks for the
// 4-neighborhood+2-rotation generator, an 11 asks for the
// 8-neighborhood+2-rotation one, and nothing downstream silently
// substitutes the other.
func TestNewTracker_NeighborhoodSizeSelectsHypothesisCount(t *testing.T) {
	kinds := []VariantKind{VariantCorrelation, VariantHasteCorrelation, VariantHasteDifference, VariantHasteDifferenceStar}
	neighborhoods := []int{NumHypotheses7, NumHypotheses11}
	for _, kind := range kinds {
		for _, k := range neighborhoods {
			tr, err := NewTracker(kind, 0, 1, 2, 0, k)
			if err != nil {
				t.Fatalf("NewTracker(%v, k=%d) returned error: %v", kind, k, err)
			}
			if got := tr.NumHypotheses(); got != k {
				t.Errorf("NewTracker(%v, k=%d): constructed hypothesis set has %d hypotheses, want %d", kind, k, got, k)
			}
		}
	}
}

func TestNewTracker_UnknownKindErrors(t *testing.T) {
	if _, err := NewTracker(VariantKind(99), 0, 0, 0, 0, NumHypotheses11); err == nil {
		t.Error("expected error for unknown VariantKind")
	}
}

func TestNewTracker_InvalidNeighborhoodErrors(t *testing.T) {
	if _, err := NewTracker(VariantCorrelation, 0, 0, 0, 0, 9); err == nil {
		t.Error("expected error for neighborhood size other than 7 or 11")
	}
}
