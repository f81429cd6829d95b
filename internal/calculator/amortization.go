package calculator

import (
	"fmt"
	"math"

	"github.com/Sarvajith2007/FINBOT/internal/models"
)

// AmortizationSchedule computes a standard fixed-payment amortization
// schedule for the given loan. The periodic payment is
//
//	principal * r / (1 - (1+r)^-n)   when r > 0
//	principal / n                    when r == 0 (straight-line)
//
// where r is the periodic rate and n the number of payments. Each row splits
// the payment into interest (balance * r) and principal; the final row
// absorbs any rounding residual so the remaining balance lands on exactly
// zero and the principal portions sum to the principal.
func AmortizationSchedule(params models.LoanParameters) (models.CalculationResult, error) {
	if params.Principal <= 0 {
		return models.CalculationResult{}, fmt.Errorf("%w: principal must be positive, got %.2f", models.ErrInvalidInput, params.Principal)
	}
	if params.AnnualRatePct < 0 {
		return models.CalculationResult{}, fmt.Errorf("%w: rate must be non-negative, got %.2f", models.ErrInvalidInput, params.AnnualRatePct)
	}
	if params.TermYears <= 0 {
		return models.CalculationResult{}, fmt.Errorf("%w: term must be positive, got %.2f years", models.ErrInvalidInput, params.TermYears)
	}
	if params.PaymentsPerYear <= 0 {
		return models.CalculationResult{}, fmt.Errorf("%w: payments per year must be positive, got %d", models.ErrInvalidInput, params.PaymentsPerYear)
	}

	n := int(math.Round(params.TermYears * float64(params.PaymentsPerYear)))
	if n < 1 {
		return models.CalculationResult{}, fmt.Errorf("%w: term of %.2f years at %d payments/year yields no payment periods",
			models.ErrInvalidInput, params.TermYears, params.PaymentsPerYear)
	}

	r := params.AnnualRatePct / 100 / float64(params.PaymentsPerYear)

	var payment float64
	if r > 0 {
		payment = params.Principal * r / (1 - math.Pow(1+r, -float64(n)))
	} else {
		payment = params.Principal / float64(n)
	}

	schedule := make([]models.ScheduleRow, 0, n)
	balance := params.Principal
	totalPaid := 0.0

	for period := 1; period <= n; period++ {
		interest := balance * r
		principalPortion := payment - interest
		rowPayment := payment

		// Last period clears whatever balance is left, so rounding drift
		// never leaves a residual.
		if period == n {
			principalPortion = balance
			rowPayment = principalPortion + interest
		}

		balance -= principalPortion
		totalPaid += rowPayment

		schedule = append(schedule, models.ScheduleRow{
			Period:           period,
			Payment:          rowPayment,
			PrincipalPortion: principalPortion,
			InterestPortion:  interest,
			RemainingBalance: balance,
		})
	}

	return models.CalculationResult{
		Schedule: schedule,
		Summary: models.CalculationSummary{
			TotalPaid:     round2(totalPaid),
			TotalInterest: round2(totalPaid - params.Principal),
		},
	}, nil
}
