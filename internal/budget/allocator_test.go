package budget

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/Sarvajith2007/FINBOT/internal/models"
)

func TestTargets(t *testing.T) {
	tests := []struct {
		name         string
		annualIncome float64
		rule         models.BudgetRule
		wantErr      error
		validateFunc func(t *testing.T, target models.AllocationTarget)
	}{
		{
			name:         "default 50/30/20 rule",
			annualIncome: 60000,
			rule:         models.DefaultRule,
			validateFunc: func(t *testing.T, target models.AllocationTarget) {
				if target.MonthlyIncome != 5000 {
					t.Errorf("monthly income = %v, want 5000", target.MonthlyIncome)
				}
				if target.NeedsAmount != 2500 || target.WantsAmount != 1500 || target.SavingsAmount != 1000 {
					t.Errorf("amounts = %v/%v/%v, want 2500/1500/1000",
						target.NeedsAmount, target.WantsAmount, target.SavingsAmount)
				}
			},
		},
		{
			name:         "variant rule summing to 100",
			annualIncome: 120000,
			rule:         models.BudgetRule{NeedsPct: 60, WantsPct: 20, SavingsPct: 20},
			validateFunc: func(t *testing.T, target models.AllocationTarget) {
				if target.NeedsAmount != 6000 {
					t.Errorf("needs amount = %v, want 6000", target.NeedsAmount)
				}
			},
		},
		{
			name:         "zero income yields zero targets",
			annualIncome: 0,
			rule:         models.DefaultRule,
			validateFunc: func(t *testing.T, target models.AllocationTarget) {
				if target.NeedsAmount != 0 || target.WantsAmount != 0 || target.SavingsAmount != 0 {
					t.Errorf("amounts = %+v, want all zero", target)
				}
			},
		},
		{
			name:         "rule not summing to 100 rejected",
			annualIncome: 60000,
			rule:         models.BudgetRule{NeedsPct: 50, WantsPct: 30, SavingsPct: 30},
			wantErr:      models.ErrInvalidRule,
		},
		{
			name:         "negative income rejected",
			annualIncome: -1,
			rule:         models.DefaultRule,
			wantErr:      models.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := Targets(tt.annualIncome, tt.rule)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			// Rule percentages always sum to 100 on the way out.
			sum := target.Rule.NeedsPct + target.Rule.WantsPct + target.Rule.SavingsPct
			if math.Abs(sum-100) > models.SumTolerance {
				t.Errorf("rule sum = %v, want 100", sum)
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, target)
			}
		})
	}
}

func TestClassifyExpenses(t *testing.T) {
	now := time.Now()
	entries := []models.ExpenseEntry{
		{Category: models.CategoryHousing, Amount: 1200, Timestamp: now},
		{Category: models.CategoryFood, Amount: 300, Timestamp: now},
		{Category: models.CategoryDining, Amount: 150, Timestamp: now},
		{Category: models.CategoryRetirement, Amount: 400, Timestamp: now},
	}

	totals, err := ClassifyExpenses(entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals[models.GroupNeeds] != 1500 {
		t.Errorf("needs total = %v, want 1500", totals[models.GroupNeeds])
	}
	if totals[models.GroupWants] != 150 {
		t.Errorf("wants total = %v, want 150", totals[models.GroupWants])
	}
	if totals[models.GroupSavings] != 400 {
		t.Errorf("savings total = %v, want 400", totals[models.GroupSavings])
	}

	// Idempotent: a second call over the same sequence gives the same totals.
	again, err := ClassifyExpenses(entries)
	if err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
	for group, total := range totals {
		if again[group] != total {
			t.Errorf("second call %s = %v, want %v", group, again[group], total)
		}
	}
}

func TestClassifyExpensesEmpty(t *testing.T) {
	totals, err := ClassifyExpenses(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// All three buckets present even with no entries.
	for _, group := range models.BudgetGroups {
		if total, ok := totals[group]; !ok || total != 0 {
			t.Errorf("%s = %v (present %v), want 0", group, total, ok)
		}
	}
}

func TestClassifyExpensesUnknownCategory(t *testing.T) {
	entries := []models.ExpenseEntry{
		{Category: models.CategoryHousing, Amount: 1200},
		{Category: models.ExpenseCategory("crypto"), Amount: 50},
	}
	totals, err := ClassifyExpenses(entries)
	if !errors.Is(err, models.ErrUnknownCategory) {
		t.Fatalf("error = %v, want ErrUnknownCategory", err)
	}
	if totals != nil {
		t.Errorf("totals = %v, want nil (no partial mapping)", totals)
	}
}

func TestAnalyzeVariance(t *testing.T) {
	target, err := Targets(60000, models.DefaultRule)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Targets: needs 2500, wants 1500, savings 1000.
	actuals := map[models.BudgetGroup]float64{
		models.GroupNeeds:   2750, // +10%
		models.GroupWants:   1500, // on target
		models.GroupSavings: 800,  // -20%
	}

	report := AnalyzeVariance(target, actuals)
	if len(report) != 3 {
		t.Fatalf("report length = %d, want 3", len(report))
	}
	if report[0].Group != models.GroupNeeds || report[1].Group != models.GroupWants || report[2].Group != models.GroupSavings {
		t.Errorf("report order = %v/%v/%v, want needs/wants/savings",
			report[0].Group, report[1].Group, report[2].Group)
	}
	if math.Abs(report[0].DeltaPct-10) > 0.01 {
		t.Errorf("needs delta = %v, want 10", report[0].DeltaPct)
	}
	if report[1].DeltaPct != 0 {
		t.Errorf("wants delta = %v, want 0", report[1].DeltaPct)
	}
	if math.Abs(report[2].DeltaPct-(-20)) > 0.01 {
		t.Errorf("savings delta = %v, want -20", report[2].DeltaPct)
	}
}

func TestAnalyzeVarianceZeroTarget(t *testing.T) {
	target, err := Targets(0, models.DefaultRule)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	report := AnalyzeVariance(target, map[models.BudgetGroup]float64{
		models.GroupNeeds: 500,
	})

	needs := report[0]
	if !needs.Undefined {
		t.Error("needs variance with zero target and spending should be undefined")
	}
	if math.IsInf(needs.DeltaPct, 0) || math.IsNaN(needs.DeltaPct) {
		t.Errorf("delta = %v, must not be Inf or NaN", needs.DeltaPct)
	}

	wants := report[1]
	if wants.Undefined || wants.DeltaPct != 0 {
		t.Errorf("zero target and zero spending should report delta 0, got %+v", wants)
	}
}

func TestSuggestSavings(t *testing.T) {
	report := []models.Variance{
		{Group: models.GroupNeeds, TargetAmount: 2500, ActualAmount: 2600, DeltaPct: 4},
		{Group: models.GroupWants, TargetAmount: 1500, ActualAmount: 1950, DeltaPct: 30},
		{Group: models.GroupSavings, TargetAmount: 1000, ActualAmount: 850, DeltaPct: -15},
	}

	tips := SuggestSavings(report)
	if len(tips) != 2 {
		t.Fatalf("tips = %d (%v), want 2", len(tips), tips)
	}
	// Declaration order: the wants tip precedes the savings tip, and the
	// 30% overspend picks the severe wants rule.
	if tips[0] != tipRules[2].tip {
		t.Errorf("first tip = %q, want severe wants rule", tips[0])
	}
	if tips[1] != tipRules[5].tip {
		t.Errorf("second tip = %q, want mild savings shortfall rule", tips[1])
	}

	// Deterministic: same report, same tips.
	again := SuggestSavings(report)
	if len(again) != len(tips) || again[0] != tips[0] || again[1] != tips[1] {
		t.Errorf("second call returned %v, want %v", again, tips)
	}
}

func TestSuggestSavingsAllWithinTargets(t *testing.T) {
	report := []models.Variance{
		{Group: models.GroupNeeds, DeltaPct: -2},
		{Group: models.GroupWants, DeltaPct: 5},
		{Group: models.GroupSavings, DeltaPct: 3},
	}
	if tips := SuggestSavings(report); len(tips) != 0 {
		t.Errorf("tips = %v, want none when every bucket is inside its band", tips)
	}
}

func TestBreakdownSumsToBucket(t *testing.T) {
	for _, group := range models.BudgetGroups {
		lines := Breakdown(group, 1000)
		var pctSum, amountSum float64
		for _, line := range lines {
			pctSum += line.Pct
			amountSum += line.Amount
		}
		if math.Abs(pctSum-100) > models.SumTolerance {
			t.Errorf("%s split percentages sum to %v, want 100", group, pctSum)
		}
		if math.Abs(amountSum-1000) > 0.01 {
			t.Errorf("%s split amounts sum to %v, want 1000", group, amountSum)
		}
	}
}

func TestEmergencyFundRange(t *testing.T) {
	low, high := EmergencyFundRange(5000)
	if low != 15000 || high != 30000 {
		t.Errorf("range = %v/%v, want 15000/30000", low, high)
	}
}
