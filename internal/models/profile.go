package models

import "fmt"

// RiskTolerance is the closed set of investor risk tiers.
type RiskTolerance string

const (
	RiskConservative RiskTolerance = "conservative"
	RiskModerate     RiskTolerance = "moderate"
	RiskAggressive   RiskTolerance = "aggressive"
)

// Valid reports whether the tier is one of the three known values.
func (r RiskTolerance) Valid() bool {
	switch r {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}
	return false
}

// SavingsGoal is a single named target the user is saving toward.
type SavingsGoal struct {
	Label        string  `json:"label"`
	TargetAmount float64 `json:"target_amount"`
	TargetDate   string  `json:"target_date,omitempty"` // YYYY-MM-DD
}

// UserProfile is the read-only snapshot of the user handed to the engine on
// each call. It is owned by the session store; the engine never retains a
// reference to it.
type UserProfile struct {
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	AnnualIncome  float64       `json:"annual_income"`
	RiskTolerance RiskTolerance `json:"risk_tolerance"`
	SavingsGoals  []SavingsGoal `json:"savings_goals,omitempty"`
}

// Validate checks the profile invariants: positive age, non-negative income,
// known risk tier.
func (p UserProfile) Validate() error {
	if p.Age <= 0 {
		return fmt.Errorf("%w: age must be positive, got %d", ErrInvalidInput, p.Age)
	}
	if p.AnnualIncome < 0 {
		return fmt.Errorf("%w: annual income must be non-negative, got %.2f", ErrInvalidInput, p.AnnualIncome)
	}
	if !p.RiskTolerance.Valid() {
		return fmt.Errorf("%w: unknown risk tolerance %q", ErrInvalidInput, p.RiskTolerance)
	}
	return nil
}

// MonthlyIncome is the profile's annual income scaled to a month.
func (p UserProfile) MonthlyIncome() float64 {
	return p.AnnualIncome / 12
}
