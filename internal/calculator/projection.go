package calculator

import (
	"fmt"

	"github.com/Sarvajith2007/FINBOT/internal/models"
)

// InvestmentProjection projects the growth of an investment with monthly
// contributions over the given horizon, compounding monthly with each
// contribution added before that month's growth is applied. Returns one row
// per year; a zero-year horizon yields an empty sequence. The projection is
// deterministic: identical inputs always produce identical rows.
func InvestmentProjection(initialAmount, monthlyContribution, annualReturnPct float64, years int) ([]models.YearlyProjection, error) {
	if initialAmount < 0 {
		return nil, fmt.Errorf("%w: initial amount must be non-negative, got %.2f", models.ErrInvalidInput, initialAmount)
	}
	if monthlyContribution < 0 {
		return nil, fmt.Errorf("%w: monthly contribution must be non-negative, got %.2f", models.ErrInvalidInput, monthlyContribution)
	}
	if years < 0 {
		return nil, fmt.Errorf("%w: years must be non-negative, got %d", models.ErrInvalidInput, years)
	}

	monthlyRate := annualReturnPct / 100 / 12
	balance := initialAmount
	contributions := 0.0

	rows := make([]models.YearlyProjection, 0, years)
	for year := 1; year <= years; year++ {
		for month := 0; month < 12; month++ {
			balance += monthlyContribution
			contributions += monthlyContribution
			balance *= 1 + monthlyRate
		}
		rows = append(rows, models.YearlyProjection{
			Year:          year,
			Contributions: round2(contributions),
			Growth:        round2(balance - initialAmount - contributions),
			Balance:       round2(balance),
		})
	}
	return rows, nil
}
