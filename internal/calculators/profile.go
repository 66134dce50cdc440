package calculators

import (
	"fmt"
	"strings"
)

type Gender string

const (
	GenderMale        Gender = "Male"
	GenderFemale      Gender = "Female"
	GenderUnspecified Gender = "Unspecified"
)

// ParseGender accepts the labels used by the intake form; anything else,
// including "Prefer not to say", is Unspecified.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return GenderMale
	case "female", "f":
		return GenderFemale
	default:
		return GenderUnspecified
	}
}

func (g *Gender) UnmarshalText(text []byte) error {
	*g = ParseGender(string(text))
	return nil
}

// Intake form bounds.
const (
	MinAge      = 5
	MaxAge      = 120
	MinHeightCm = 50
	MaxHeightCm = 300
	MinWeightKg = 20
	MaxWeightKg = 300
)

type Profile struct {
	Age      int     `json:"age"`
	HeightCm float64 `json:"heightCm"`
	WeightKg float64 `json:"weightKg"`
	Gender   Gender  `json:"gender"`
}

func (p Profile) Validate() error {
	if p.Age < MinAge || p.Age > MaxAge {
		return fmt.Errorf("%w: age %d not in [%d, %d]", ErrInvalidInput, p.Age, MinAge, MaxAge)
	}
	if p.HeightCm < MinHeightCm || p.HeightCm > MaxHeightCm {
		return fmt.Errorf("%w: height %.1f cm not in [%d, %d]", ErrInvalidInput, p.HeightCm, MinHeightCm, MaxHeightCm)
	}
	if p.WeightKg < MinWeightKg || p.WeightKg > MaxWeightKg {
		return fmt.Errorf("%w: weight %.1f kg not in [%d, %d]", ErrInvalidInput, p.WeightKg, MinWeightKg, MaxWeightKg)
	}
	return nil
}
