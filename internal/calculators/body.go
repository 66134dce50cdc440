package calculators

import (
	"fmt"
)

// BMI returns the body mass index in kg/m^2.
func BMI(weightKg, heightCm float64) (float64, error) {
	if heightCm <= 0 {
		return 0, fmt.Errorf("%w: height must be positive, got %v", ErrInvalidInput, heightCm)
	}
	heightM := heightCm / 100
	return weightKg / (heightM * heightM), nil
}

// BMR returns the basal metabolic rate (kcal/day) using Mifflin-St Jeor.
// Genders other than male and female get no sex offset.
func BMR(weightKg, heightCm float64, age int, gender Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	switch gender {
	case GenderMale:
		return base + 5
	case GenderFemale:
		return base - 161
	default:
		return base
	}
}

type HeartRateZone struct {
	MaxHeartRate int `json:"maxHeartRate"`
	Low          int `json:"zoneLow"`
	High         int `json:"zoneHigh"`
}

// TargetHeartRateZone returns the 50-85% training zone of the age predicted max heart rate.
// Bounds are truncated, not rounded.
func TargetHeartRateZone(age int) HeartRateZone {
	maxHR := 220 - age
	return HeartRateZone{
		MaxHeartRate: maxHR,
		Low:          int(0.5 * float64(maxHR)),
		High:         int(0.85 * float64(maxHR)),
	}
}

type ProfileMetrics struct {
	BMI float64 `json:"bmi"`
	BMR float64 `json:"bmr"`
	HeartRateZone
}

func MetricsForProfile(p Profile) (ProfileMetrics, error) {
	if err := p.Validate(); err != nil {
		return ProfileMetrics{}, err
	}

	bmi, err := BMI(p.WeightKg, p.HeightCm)
	if err != nil {
		return ProfileMetrics{}, err
	}

	return ProfileMetrics{
		BMI:           bmi,
		BMR:           BMR(p.WeightKg, p.HeightCm, p.Age, p.Gender),
		HeartRateZone: TargetHeartRateZone(p.Age),
	}, nil
}
