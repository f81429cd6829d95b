// Package calculator implements the pure numeric routines of the advisory
// engine: compound interest, fixed-payment amortization, and investment
// growth projection. Every function is a pure function of its arguments,
// with no shared state, so unsynchronized concurrent calls are safe.
package calculator

import (
	"fmt"
	"math"

	"github.com/Sarvajith2007/FINBOT/internal/models"
)

// round2 rounds a currency amount to cents.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CompoundInterest computes the future value of a principal compounded
// compoundsPerYear times per year for the given number of years:
//
//	finalValue = principal * (1 + rate/100/m)^(m*years)
//
// A zero rate returns the principal unchanged. Returns the final value and
// the interest earned on top of the principal.
func CompoundInterest(principal, annualRatePct float64, compoundsPerYear int, years float64) (finalValue, totalInterest float64, err error) {
	if principal < 0 {
		return 0, 0, fmt.Errorf("%w: principal must be non-negative, got %.2f", models.ErrInvalidInput, principal)
	}
	if compoundsPerYear <= 0 {
		return 0, 0, fmt.Errorf("%w: compounds per year must be positive, got %d", models.ErrInvalidInput, compoundsPerYear)
	}
	if years < 0 {
		return 0, 0, fmt.Errorf("%w: years must be non-negative, got %.2f", models.ErrInvalidInput, years)
	}

	periodicRate := annualRatePct / 100 / float64(compoundsPerYear)
	periods := float64(compoundsPerYear) * years

	finalValue = principal * math.Pow(1+periodicRate, periods)
	return round2(finalValue), round2(finalValue - principal), nil
}
