// Package budget applies budget rules to income and classifies spending
// against them. The default rule is 50/30/20 (needs/wants/savings); any
// variant whose percentages sum to 100 is accepted.
package budget

import (
	"fmt"
	"math"

	"github.com/Sarvajith2007/FINBOT/internal/models"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Targets applies a budget rule to an annual income, producing the monthly
// target amount for each bucket. The rule is validated at entry: its three
// percentages must sum to 100 within the rounding tolerance.
func Targets(annualIncome float64, rule models.BudgetRule) (models.AllocationTarget, error) {
	if annualIncome < 0 {
		return models.AllocationTarget{}, fmt.Errorf("%w: annual income must be non-negative, got %.2f", models.ErrInvalidInput, annualIncome)
	}
	sum := rule.NeedsPct + rule.WantsPct + rule.SavingsPct
	if math.Abs(sum-100) > models.SumTolerance {
		return models.AllocationTarget{}, fmt.Errorf("%w: percentages sum to %.2f, want 100", models.ErrInvalidRule, sum)
	}

	monthly := annualIncome / 12
	return models.AllocationTarget{
		Rule:          rule,
		MonthlyIncome: round2(monthly),
		NeedsAmount:   round2(monthly * rule.NeedsPct / 100),
		WantsAmount:   round2(monthly * rule.WantsPct / 100),
		SavingsAmount: round2(monthly * rule.SavingsPct / 100),
	}, nil
}

// ClassifyExpenses aggregates a sequence of expense entries into per-bucket
// totals. Every entry's category must belong to the fixed taxonomy; an
// unknown category fails the whole call rather than producing a partial
// mapping. The result always contains all three buckets.
func ClassifyExpenses(entries []models.ExpenseEntry) (map[models.BudgetGroup]float64, error) {
	totals := map[models.BudgetGroup]float64{
		models.GroupNeeds:   0,
		models.GroupWants:   0,
		models.GroupSavings: 0,
	}
	for i, entry := range entries {
		if entry.Amount < 0 {
			return nil, fmt.Errorf("%w: entry %d has negative amount %.2f", models.ErrInvalidInput, i, entry.Amount)
		}
		group, ok := entry.Category.Group()
		if !ok {
			return nil, fmt.Errorf("%w: %q (entry %d)", models.ErrUnknownCategory, entry.Category, i)
		}
		totals[group] += entry.Amount
	}
	return totals, nil
}

// AnalyzeVariance compares actual bucket totals against the target
// allocation. Buckets are reported in declaration order (needs, wants,
// savings). A zero target with nonzero spending makes the percentage delta
// undefined; the entry is flagged instead of reporting an infinity.
func AnalyzeVariance(target models.AllocationTarget, actuals map[models.BudgetGroup]float64) []models.Variance {
	report := make([]models.Variance, 0, len(models.BudgetGroups))
	for _, group := range models.BudgetGroups {
		v := models.Variance{
			Group:        group,
			TargetAmount: target.Amount(group),
			ActualAmount: round2(actuals[group]),
		}
		switch {
		case v.TargetAmount == 0 && v.ActualAmount > 0:
			v.Undefined = true
		case v.TargetAmount == 0:
			v.DeltaPct = 0
		default:
			v.DeltaPct = round2((v.ActualAmount - v.TargetAmount) / v.TargetAmount * 100)
		}
		report = append(report, v)
	}
	return report
}

// EmergencyFundRange returns the conventional 3 and 6 month emergency fund
// targets for a monthly income.
func EmergencyFundRange(monthlyIncome float64) (low, high float64) {
	return round2(monthlyIncome * 3), round2(monthlyIncome * 6)
}
