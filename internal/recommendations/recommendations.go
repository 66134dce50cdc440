package recommendations

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/2beens/fitcompanion/internal/calculators"
)

var (
	ErrNoRecommendation = errors.New("no recommendation for goal")
	ErrTargetOutOfRange = fmt.Errorf("%w: target calories out of range", calculators.ErrInvalidInput)
)

type Goal string

const (
	GoalUnknown        Goal = ""
	GoalLoseWeight     Goal = "LoseWeight"
	GoalMaintainWeight Goal = "MaintainWeight"
	GoalGainMuscle     Goal = "GainMuscle"
)

type Mood string

const (
	MoodUnknown   Mood = ""
	MoodStressed  Mood = "Stressed"
	MoodEnergetic Mood = "Energetic"
	MoodTired     Mood = "Tired"
	MoodNeutral   Mood = "Neutral"
)

type Recommendation struct {
	Exercise        string `json:"exercise"`
	DurationMinutes int    `json:"durationMinutes"`
}

type MoodBoost struct {
	Exercise string `json:"exercise"`
	Message  string `json:"message"`
}

var goalRecommendations = map[Goal][]Recommendation{
	GoalLoseWeight: {
		{Exercise: "Running", DurationMinutes: 30},
		{Exercise: "Cycling", DurationMinutes: 30},
		{Exercise: "HIIT", DurationMinutes: 20},
	},
	GoalMaintainWeight: {
		{Exercise: "Walking", DurationMinutes: 30},
		{Exercise: "Strength Training", DurationMinutes: 30},
		{Exercise: "Yoga", DurationMinutes: 30},
	},
	GoalGainMuscle: {
		{Exercise: "Weight Lifting", DurationMinutes: 45},
		{Exercise: "Resistance Bands", DurationMinutes: 30},
		{Exercise: "Protein Workout", DurationMinutes: 30},
	},
}

var moodBoosts = map[Mood]MoodBoost{
	MoodStressed:  {Exercise: "Yoga", Message: "A calming 20-min yoga session"},
	MoodEnergetic: {Exercise: "HIIT", Message: "A quick energizing HIIT"},
	MoodTired:     {Exercise: "Walking", Message: "A 30-min brisk walk to revive"},
	MoodNeutral:   {Exercise: "Stretching", Message: "Try a full-body stretch routine"},
}

// normalizeKey lowercases and drops spaces, dashes and underscores,
// so "Lose weight", "lose-weight" and "LoseWeight" are the same key.
func normalizeKey(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}

// ParseGoal returns GoalUnknown for unrecognized input.
func ParseGoal(s string) Goal {
	switch normalizeKey(s) {
	case "loseweight":
		return GoalLoseWeight
	case "maintainweight":
		return GoalMaintainWeight
	case "gainmuscle":
		return GoalGainMuscle
	default:
		return GoalUnknown
	}
}

// ParseMood returns MoodUnknown for unrecognized input.
func ParseMood(s string) Mood {
	switch normalizeKey(s) {
	case "stressed":
		return MoodStressed
	case "energetic":
		return MoodEnergetic
	case "tired":
		return MoodTired
	case "neutral":
		return MoodNeutral
	default:
		return MoodUnknown
	}
}

// ForGoal returns the ordered recommendations for the goal, empty for unknown goals.
func ForGoal(goal Goal) []Recommendation {
	recs := goalRecommendations[goal]
	return append([]Recommendation{}, recs...)
}

// ForMood returns the mood booster, or a zero MoodBoost for unknown moods.
func ForMood(mood Mood) MoodBoost {
	return moodBoosts[mood]
}

type calorieReference interface {
	AvgCalPerMin(activityType string) (float64, error)
}

// MinutesToBurn returns the minutes of the goal's first recommended exercise needed
// to burn targetCalories, and that exercise.
func MinutesToBurn(goal Goal, targetCalories float64, reference calorieReference) (float64, string, error) {
	if !calculators.IsPositiveFinite(targetCalories) {
		return 0, "", fmt.Errorf("%w: must be positive, got %v", ErrTargetOutOfRange, targetCalories)
	}

	recs := goalRecommendations[goal]
	if len(recs) == 0 {
		return 0, "", fmt.Errorf("%w: %q", ErrNoRecommendation, goal)
	}
	exercise := recs[0].Exercise

	avg, err := reference.AvgCalPerMin(exercise)
	if err != nil {
		return 0, exercise, err
	}
	if !calculators.IsPositiveFinite(avg) {
		return 0, exercise, fmt.Errorf("%w: %s burns %v kcal per minute", calculators.ErrInvalidInput, exercise, avg)
	}

	minutes := targetCalories / avg
	if math.IsInf(minutes, 0) {
		return 0, exercise, fmt.Errorf("%w: too large, got %v", ErrTargetOutOfRange, targetCalories)
	}

	return minutes, exercise, nil
}
