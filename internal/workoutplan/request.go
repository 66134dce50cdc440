package workoutplan

import (
	"fmt"
	"slices"

	"github.com/2beens/fitcompanion/internal/calculators"
)

const (
	MinHeartRate       = 60
	MaxHeartRate       = 200
	MinDurationMinutes = 10
	MaxDurationMinutes = 180
	MinDays            = 1
	MaxDays            = 7
)

type Request struct {
	calculators.Profile
	HeartRate       float64 `json:"heartRate"`
	DurationMinutes float64 `json:"durationMinutes"`
	Days            int     `json:"days"`
	WorkoutType     string  `json:"workoutType"`
}

// Validate checks the request against the intake form bounds.
// An empty workout type is taken as "None".
func (r *Request) Validate() error {
	if err := r.Profile.Validate(); err != nil {
		return err
	}
	if r.HeartRate < MinHeartRate || r.HeartRate > MaxHeartRate {
		return fmt.Errorf("%w: heart rate %v not in [%d, %d]", calculators.ErrInvalidInput, r.HeartRate, MinHeartRate, MaxHeartRate)
	}
	if r.DurationMinutes < MinDurationMinutes || r.DurationMinutes > MaxDurationMinutes {
		return fmt.Errorf("%w: duration %v min not in [%d, %d]", calculators.ErrInvalidInput, r.DurationMinutes, MinDurationMinutes, MaxDurationMinutes)
	}
	if r.Days < MinDays || r.Days > MaxDays {
		return fmt.Errorf("%w: days %d not in [%d, %d]", calculators.ErrInvalidInput, r.Days, MinDays, MaxDays)
	}

	if r.WorkoutType == "" {
		r.WorkoutType = "None"
	}
	if !slices.Contains(calculators.WorkoutTypes(), r.WorkoutType) {
		return fmt.Errorf("%w: unknown workout type %q", calculators.ErrInvalidInput, r.WorkoutType)
	}

	return nil
}
