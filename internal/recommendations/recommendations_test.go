package recommendations

import (
	"fmt"
	"math"
	"testing"

	"github.com/2beens/fitcompanion/internal/activities"
	"github.com/2beens/fitcompanion/internal/calculators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testReference(t *testing.T) *activities.Reference {
	t.Helper()
	ref, err := activities.NewReference([]activities.Activity{
		{Type: "Running", AvgCalPerMin: 10},
		{Type: "Walking", AvgCalPerMin: 4},
		{Type: "Weight Lifting", AvgCalPerMin: 0},
	})
	require.NoError(t, err)
	return ref
}

func TestForGoal(t *testing.T) {
	assert.Equal(t, []Recommendation{
		{Exercise: "Running", DurationMinutes: 30},
		{Exercise: "Cycling", DurationMinutes: 30},
		{Exercise: "HIIT", DurationMinutes: 20},
	}, ForGoal(GoalLoseWeight))
	assert.Equal(t, []Recommendation{
		{Exercise: "Walking", DurationMinutes: 30},
		{Exercise: "Strength Training", DurationMinutes: 30},
		{Exercise: "Yoga", DurationMinutes: 30},
	}, ForGoal(GoalMaintainWeight))
	assert.Equal(t, []Recommendation{
		{Exercise: "Weight Lifting", DurationMinutes: 45},
		{Exercise: "Resistance Bands", DurationMinutes: 30},
		{Exercise: "Protein Workout", DurationMinutes: 30},
	}, ForGoal(GoalGainMuscle))
}

func TestForGoal_UnknownGoal(t *testing.T) {
	for _, goal := range []Goal{GoalUnknown, Goal("Run a marathon"), ParseGoal("bulk")} {
		recs := ForGoal(goal)
		assert.NotNil(t, recs)
		assert.Empty(t, recs)
	}
}

func TestForGoal_ReturnsCopy(t *testing.T) {
	recs := ForGoal(GoalLoseWeight)
	recs[0].Exercise = "Sleeping"
	assert.Equal(t, "Running", ForGoal(GoalLoseWeight)[0].Exercise)
}

func TestForMood(t *testing.T) {
	assert.Equal(t, MoodBoost{"Yoga", "A calming 20-min yoga session"}, ForMood(MoodStressed))
	assert.Equal(t, MoodBoost{"HIIT", "A quick energizing HIIT"}, ForMood(MoodEnergetic))
	assert.Equal(t, MoodBoost{"Walking", "A 30-min brisk walk to revive"}, ForMood(MoodTired))
	assert.Equal(t, MoodBoost{"Stretching", "Try a full-body stretch routine"}, ForMood(MoodNeutral))

	assert.Equal(t, MoodBoost{}, ForMood(MoodUnknown))
	assert.Equal(t, MoodBoost{}, ForMood(Mood("Hungry")))
}

func TestParseGoal(t *testing.T) {
	for in, want := range map[string]Goal{
		"Lose weight":     GoalLoseWeight,
		"lose-weight":     GoalLoseWeight,
		"LoseWeight":      GoalLoseWeight,
		"Maintain weight": GoalMaintainWeight,
		"maintain_weight": GoalMaintainWeight,
		"Gain muscle":     GoalGainMuscle,
		"":                GoalUnknown,
		"get shredded":    GoalUnknown,
	} {
		assert.Equal(t, want, ParseGoal(in), in)
	}
}

func TestParseMood(t *testing.T) {
	for in, want := range map[string]Mood{
		"Stressed":  MoodStressed,
		"energetic": MoodEnergetic,
		" TIRED ":   MoodTired,
		"Neutral":   MoodNeutral,
		"sad":       MoodUnknown,
	} {
		assert.Equal(t, want, ParseMood(in), in)
	}
}

func TestMinutesToBurn(t *testing.T) {
	ref := testReference(t)

	minutes, exercise, err := MinutesToBurn(GoalLoseWeight, 300, ref)
	require.NoError(t, err)
	assert.Equal(t, "Running", exercise)
	assert.Equal(t, 30.0, minutes)

	minutes, exercise, err = MinutesToBurn(GoalMaintainWeight, 100, ref)
	require.NoError(t, err)
	assert.Equal(t, "Walking", exercise)
	assert.Equal(t, 25.0, minutes)
}

func TestMinutesToBurn_Errors(t *testing.T) {
	ref := testReference(t)

	for _, target := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		_, _, err := MinutesToBurn(GoalLoseWeight, target, ref)
		assert.ErrorIs(t, err, ErrTargetOutOfRange)
		assert.ErrorIs(t, err, calculators.ErrInvalidInput)
	}

	// minutes overflow float64
	tinyRef, err := activities.NewReference([]activities.Activity{{Type: "Running", AvgCalPerMin: 1e-10}})
	require.NoError(t, err)
	_, _, err = MinutesToBurn(GoalLoseWeight, math.MaxFloat64, tinyRef)
	assert.ErrorIs(t, err, ErrTargetOutOfRange)

	_, _, err = MinutesToBurn(GoalUnknown, 300, ref)
	assert.ErrorIs(t, err, ErrNoRecommendation)

	// Weight Lifting burns 0 kcal/min in the test dataset
	_, exercise, err := MinutesToBurn(GoalGainMuscle, 300, ref)
	assert.ErrorIs(t, err, calculators.ErrInvalidInput)
	assert.Equal(t, "Weight Lifting", exercise)

	missingRef, err := activities.NewReference([]activities.Activity{{Type: "Yoga", AvgCalPerMin: 3}})
	require.NoError(t, err)
	_, exercise, err = MinutesToBurn(GoalLoseWeight, 300, missingRef)
	assert.ErrorIs(t, err, activities.ErrActivityNotFound)
	assert.Equal(t, "Running", exercise)

	_, _, err = MinutesToBurn(GoalLoseWeight, 300, failingReference{})
	assert.EqualError(t, err, "reference unavailable")
}

type failingReference struct{}

func (failingReference) AvgCalPerMin(string) (float64, error) {
	return 0, fmt.Errorf("reference unavailable")
}
