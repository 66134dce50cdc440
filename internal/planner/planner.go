package planner

import (
	"fmt"
	"math"

	"github.com/2beens/fitcompanion/internal/calculators"
)

const (
	KcalPerKg     = 7700
	SessionsCount = 5
)

type Session struct {
	Number      int     `json:"number"`
	DeficitKcal float64 `json:"deficitKcal"`
}

type WeightLossPlan struct {
	DesiredKg        float64   `json:"desiredKg"`
	TotalDeficitKcal float64   `json:"totalDeficitKcal"`
	PerSessionKcal   float64   `json:"perSessionKcal"`
	Sessions         []Session `json:"sessions"`
}

// PlanWeightLoss splits the calorie deficit needed to lose desiredKg evenly across the sessions.
func PlanWeightLoss(desiredKg float64) (*WeightLossPlan, error) {
	if !calculators.IsPositiveFinite(desiredKg) {
		return nil, fmt.Errorf("%w: desired weight change must be positive, got %v", calculators.ErrInvalidInput, desiredKg)
	}

	total := desiredKg * KcalPerKg
	if math.IsInf(total, 0) {
		return nil, fmt.Errorf("%w: desired weight change too large, got %v", calculators.ErrInvalidInput, desiredKg)
	}
	perSession := total / SessionsCount

	plan := &WeightLossPlan{
		DesiredKg:        desiredKg,
		TotalDeficitKcal: total,
		PerSessionKcal:   perSession,
		Sessions:         make([]Session, 0, SessionsCount),
	}
	for i := 1; i <= SessionsCount; i++ {
		plan.Sessions = append(plan.Sessions, Session{
			Number:      i,
			DeficitKcal: perSession,
		})
	}

	return plan, nil
}
