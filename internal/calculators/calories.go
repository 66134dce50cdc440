package calculators

import (
	"fmt"
	"math"
)

// workout type -> extra kcal per minute
var workoutFactors = map[string]float64{
	"None":    0,
	"Yoga":    1,
	"Dancing": 2,
	"Cardio":  3,
	"HIIT":    4,
}

// WorkoutFactor returns the per-minute bonus for the workout type; unknown types get 0.
func WorkoutFactor(workoutType string) float64 {
	return workoutFactors[workoutType]
}

func WorkoutTypes() []string {
	return []string{"None", "Yoga", "Dancing", "Cardio", "HIIT"}
}

// CalorieEstimate is the calories burned for a given per-minute average and duration.
func CalorieEstimate(avgCalPerMin, durationMinutes float64) float64 {
	return avgCalPerMin * durationMinutes
}

type CaloriesParams struct {
	WeightKg    float64 `json:"weightKg"`
	HeightCm    float64 `json:"heightCm"`
	Age         int     `json:"age"`
	HeartRate   float64 `json:"heartRate"`
	Minutes     float64 `json:"minutes"`
	WorkoutType string  `json:"workoutType"`
}

type CaloriesResult struct {
	CaloriesTotal     float64 `json:"caloriesTotal"`
	CaloriesPerMinute float64 `json:"caloriesPerMinute"`
	BMI               float64 `json:"bmi"`
}

// Calories estimates the burn of a workout from heart rate, body weight and age:
//
//	perMin = heartRate*weight*0.0007 + age*0.01 + workoutFactor
//	total  = perMin * minutes (rounded to 2 decimals)
func Calories(params CaloriesParams) (CaloriesResult, error) {
	bmi, err := BMI(params.WeightKg, params.HeightCm)
	if err != nil {
		return CaloriesResult{}, err
	}
	if params.Minutes < 0 {
		return CaloriesResult{}, fmt.Errorf("%w: minutes must not be negative, got %v", ErrInvalidInput, params.Minutes)
	}

	perMin := params.HeartRate*params.WeightKg*0.0007 +
		float64(params.Age)*0.01 +
		WorkoutFactor(params.WorkoutType)

	return CaloriesResult{
		CaloriesTotal:     math.Round(perMin*params.Minutes*100) / 100,
		CaloriesPerMinute: perMin,
		BMI:               bmi,
	}, nil
}
