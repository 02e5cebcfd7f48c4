package tracker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Seed is a parsed tracker-initialization request: a pose at which to plant
// a new tracker, optionally carrying a caller-assigned ID (otherwise one is
// generated).
type Seed struct {
	ID    uuid.UUID
	T     Time
	X     Location
	Y     Location
	Theta Location
}

// ParseSeed parses one line of the "t,x,y,theta[,id]" seed format: four
// required comma-separated numeric fields and an optional trailing UUID.
// When the id field is absent or empty, a random ID is generated.
//
// Grounded on original_source/include/haste/app/tracking.hpp's
// getTrackerStateFromString.
func ParseSeed(line string) (Seed, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != 4 && len(fields) != 5 {
		return Seed{}, fmt.Errorf("tracker: seed line %q: want 4 or 5 comma-separated fields, got %d", line, len(fields))
	}

	nums := make([]float64, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return Seed{}, fmt.Errorf("tracker: seed line %q: field %d: %w", line, i, err)
		}
		nums[i] = v
	}

	id := uuid.New()
	if len(fields) == 5 && strings.TrimSpace(fields[4]) != "" {
		parsed, err := uuid.Parse(strings.TrimSpace(fields[4]))
		if err != nil {
			return Seed{}, fmt.Errorf("tracker: seed line %q: id field: %w", line, err)
		}
		id = parsed
	}

	return Seed{
		ID:    id,
		T:     nums[0],
		X:     Location(nums[1]),
		Y:     Location(nums[2]),
		Theta: Location(nums[3]),
	}, nil
}
