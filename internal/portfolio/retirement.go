package portfolio

import (
	"fmt"

	"github.com/Sarvajith2007/FINBOT/internal/models"
)

// RetirementAge is the assumed retirement age for goal math.
const RetirementAge = 65

// Strategy band thresholds over years to retirement.
const (
	aggressiveGrowthYears = 20 // strictly more than this
	balancedYears         = 10 // at least this
)

// RetirementStrategy maps the remaining horizon to a coarse posture:
// more than 20 years out is aggressive-growth, 10 to 20 is balanced,
// anything closer is capital-preservation.
func RetirementStrategy(age, yearsToRetirement int) (models.StrategyTag, error) {
	if age <= 0 {
		return "", fmt.Errorf("%w: age must be positive, got %d", models.ErrInvalidInput, age)
	}
	if yearsToRetirement < 0 {
		return "", fmt.Errorf("%w: years to retirement must be non-negative, got %d", models.ErrInvalidInput, yearsToRetirement)
	}

	switch {
	case yearsToRetirement > aggressiveGrowthYears:
		return models.StrategyAggressiveGrowth, nil
	case yearsToRetirement >= balancedYears:
		return models.StrategyBalanced, nil
	default:
		return models.StrategyCapitalPreservation, nil
	}
}

// RetirementNumbers are the conventional planning figures: spend 80% of
// current income per retirement year, save 25 times that, and put 15% of
// monthly income toward it.
type RetirementNumbers struct {
	YearsToRetirement  int     `json:"years_to_retirement"`
	AnnualNeed         float64 `json:"annual_need"`
	TotalGoal          float64 `json:"total_goal"`
	RecommendedMonthly float64 `json:"recommended_monthly"`
}

// PlanRetirement computes the planning figures for a profile. An age at or
// past RetirementAge yields zero years remaining, not an error.
func PlanRetirement(profile models.UserProfile) (RetirementNumbers, error) {
	if err := profile.Validate(); err != nil {
		return RetirementNumbers{}, err
	}

	years := RetirementAge - profile.Age
	if years < 0 {
		years = 0
	}

	annualNeed := profile.AnnualIncome * 0.8
	return RetirementNumbers{
		YearsToRetirement:  years,
		AnnualNeed:         round2(annualNeed),
		TotalGoal:          round2(annualNeed * 25),
		RecommendedMonthly: round2(profile.MonthlyIncome() * 0.15),
	}, nil
}
