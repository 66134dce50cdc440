package workoutplan

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/2beens/fitcompanion/internal/calculators"
	"github.com/2beens/fitcompanion/internal/exercisedb"
	"github.com/2beens/fitcompanion/internal/telemetry/metrics"
	"github.com/2beens/fitcompanion/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

var (
	muscleGroups = []string{"hamstrings", "quadriceps", "chest", "back", "shoulders"}
	workoutTypes = []string{"Cycling", "Running", "Swimming", "Weight Training"}
)

const (
	minScore   = 0.3
	scoreRange = 0.4
)

// RandomSource is satisfied by *rand.Rand; implementations used by a Generator
// serving concurrent requests must be safe for concurrent use.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

// GlobalRandom uses the math/rand/v2 top-level functions, safe for concurrent use.
type GlobalRandom struct{}

func (GlobalRandom) Float64() float64 { return rand.Float64() }
func (GlobalRandom) IntN(n int) int   { return rand.IntN(n) }

//go:generate mockgen -source=$GOFILE -destination=fetcher_mocks_test.go -package=workoutplan_test

type exerciseFetcher interface {
	FetchByTarget(ctx context.Context, target string) ([]exercisedb.Exercise, error)
}

type Scores struct {
	Strength    float64 `json:"strength"`
	Endurance   float64 `json:"endurance"`
	Flexibility float64 `json:"flexibility"`
}

type Recommendation struct {
	Scores             Scores  `json:"scores"`
	RecommendedWorkout string  `json:"recommendedWorkout"`
	CaloriesBurned     float64 `json:"caloriesBurned"`
}

type Day struct {
	Day int `json:"day"`
	// muscle group the exercise was looked up for
	MuscleGroup string `json:"muscleGroup"`
	exercisedb.Exercise
}

type Plan struct {
	Recommendation
	Days []Day `json:"days"`
	// days without an exercise, because the lookup failed or found nothing
	OmittedDays []int `json:"omittedDays"`
}

type Generator struct {
	fetcher exerciseFetcher
	random  RandomSource
	metrics *metrics.Manager
}

func NewGenerator(fetcher exerciseFetcher, random RandomSource, metricsManager *metrics.Manager) *Generator {
	return &Generator{
		fetcher: fetcher,
		random:  random,
		metrics: metricsManager,
	}
}

// Recommend returns the calories burned for the request's workout, random
// fitness scores in [0.3, 0.7) and a random workout type.
func (g *Generator) Recommend(req Request) (*Recommendation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	calories, err := calculators.Calories(calculators.CaloriesParams{
		WeightKg:    req.WeightKg,
		HeightCm:    req.HeightCm,
		Age:         req.Age,
		HeartRate:   req.HeartRate,
		Minutes:     req.DurationMinutes,
		WorkoutType: req.WorkoutType,
	})
	if err != nil {
		return nil, fmt.Errorf("calories: %w", err)
	}

	return &Recommendation{
		Scores: Scores{
			Strength:    g.score(),
			Endurance:   g.score(),
			Flexibility: g.score(),
		},
		RecommendedWorkout: workoutTypes[g.random.IntN(len(workoutTypes))],
		CaloriesBurned:     calories.CaloriesTotal,
	}, nil
}

// Generate builds the recommendation plus one exercise per requested day.
// A day whose exercise lookup fails or returns nothing is omitted; it never
// fails the whole plan.
func (g *Generator) Generate(ctx context.Context, req Request) (*Plan, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workoutPlan.generate")
	defer span.End()

	recommendation, err := g.Recommend(req)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("days", req.Days))

	plan := &Plan{
		Recommendation: *recommendation,
		Days:           []Day{},
		OmittedDays:    []int{},
	}

	var fetchErrs error
	for day := 1; day <= req.Days; day++ {
		muscleGroup := muscleGroups[g.random.IntN(len(muscleGroups))]
		exercises, err := g.fetcher.FetchByTarget(ctx, muscleGroup)
		if err != nil {
			fetchErrs = multierr.Append(fetchErrs, fmt.Errorf("day %d [%s]: %w", day, muscleGroup, err))
			plan.OmittedDays = append(plan.OmittedDays, day)
			continue
		}
		if len(exercises) == 0 {
			log.Debugf("no exercises found for muscle group %s, omitting day %d", muscleGroup, day)
			plan.OmittedDays = append(plan.OmittedDays, day)
			continue
		}

		plan.Days = append(plan.Days, Day{
			Day:         day,
			MuscleGroup: muscleGroup,
			Exercise:    exercises[g.random.IntN(len(exercises))],
		})
	}

	if fetchErrs != nil {
		log.Warnf("workout plan: failed to fetch exercises for %d day(s): %s", len(multierr.Errors(fetchErrs)), fetchErrs)
	}

	g.metrics.CounterPlanDaysOmitted.Add(float64(len(plan.OmittedDays)))
	g.metrics.CounterPlansGenerated.Inc()

	return plan, nil
}

func (g *Generator) score() float64 {
	return minScore + scoreRange*g.random.Float64()
}
