// Package advisor is the single entry point of the advisory engine. It
// dispatches structured requests to the calculator, budget, and portfolio
// modules and assembles their output into one result shape for the chat/UI
// layer to render. Topics form a closed enumeration; free text never reaches
// this boundary.
package advisor

import (
	"fmt"

	"github.com/Sarvajith2007/FINBOT/internal/budget"
	"github.com/Sarvajith2007/FINBOT/internal/calculator"
	"github.com/Sarvajith2007/FINBOT/internal/knowledge"
	"github.com/Sarvajith2007/FINBOT/internal/models"
	"github.com/Sarvajith2007/FINBOT/internal/portfolio"
)

// Topic identifies which module a request is for.
type Topic string

const (
	TopicBudget     Topic = "budget"
	TopicInvestment Topic = "investment"
	TopicCalculator Topic = "calculator"
	TopicRetirement Topic = "retirement"
	TopicGeneral    Topic = "general"
)

// CalculationKind selects which calculator a TopicCalculator request runs.
type CalculationKind string

const (
	CalcCompound   CalculationKind = "compound"
	CalcLoan       CalculationKind = "loan"
	CalcMortgage   CalculationKind = "mortgage"
	CalcProjection CalculationKind = "projection"
)

// Params is the flat parameter set accompanying a request. Which fields are
// read depends on the topic; everything is validated by the module that
// consumes it.
type Params struct {
	// Calculator parameters.
	Calculation         CalculationKind `json:"calculation,omitempty"`
	Principal           float64         `json:"principal,omitempty"`
	AnnualRatePct       float64         `json:"annual_rate_pct,omitempty"`
	CompoundsPerYear    int             `json:"compounds_per_year,omitempty"`
	Years               float64         `json:"years,omitempty"`
	TermYears           float64         `json:"term_years,omitempty"`
	PaymentsPerYear     int             `json:"payments_per_year,omitempty"`
	MonthlyContribution float64         `json:"monthly_contribution,omitempty"`
	HomePrice           float64         `json:"home_price,omitempty"`
	DownPayment         float64         `json:"down_payment,omitempty"`

	// Budget parameters.
	Expenses []models.ExpenseEntry `json:"expenses,omitempty"`
	Rule     *models.BudgetRule    `json:"rule,omitempty"`

	// Investment parameters.
	Holdings       models.Holdings `json:"holdings,omitempty"`
	DriftThreshold float64         `json:"drift_threshold,omitempty"`

	// General-topic free text, matched against the knowledge tables only.
	Question string `json:"question,omitempty"`
}

// Request is one engine invocation: a topic, a read-only profile snapshot,
// and the flat parameters.
type Request struct {
	Topic   Topic              `json:"topic"`
	Profile models.UserProfile `json:"profile"`
	Params  Params             `json:"params"`
}

// Result is the structured output handed back to the caller: headline
// figures, an ordered sequence of short advisory strings, and whichever
// typed payloads the topic produced. The caller owns formatting and
// persistence; the engine retains nothing.
type Result struct {
	Topic   Topic              `json:"topic"`
	Figures map[string]float64 `json:"figures,omitempty"`
	Advice  []string           `json:"advice"`

	Targets    *models.AllocationTarget                      `json:"targets,omitempty"`
	Variance   []models.Variance                             `json:"variance,omitempty"`
	Breakdown  map[models.BudgetGroup][]budget.SubAllocation `json:"breakdown,omitempty"`
	Allocation *models.PortfolioAllocation                   `json:"allocation,omitempty"`
	Drift      []models.DriftEntry                           `json:"drift,omitempty"`
	Strategy   models.StrategyTag                            `json:"strategy,omitempty"`
	Retirement *portfolio.RetirementNumbers                  `json:"retirement,omitempty"`
	Result     *models.CalculationResult                     `json:"result,omitempty"`
	Projection []models.YearlyProjection                     `json:"projection,omitempty"`
}

// HandleRequest dispatches a request to the module its topic names. Topics
// outside the enumeration fail with ErrUnsupportedTopic; all module errors
// propagate unchanged. The profile is never mutated.
func HandleRequest(req Request) (*Result, error) {
	switch req.Topic {
	case TopicBudget:
		return handleBudget(req)
	case TopicInvestment:
		return handleInvestment(req)
	case TopicCalculator:
		return handleCalculator(req)
	case TopicRetirement:
		return handleRetirement(req)
	case TopicGeneral:
		return handleGeneral(req)
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnsupportedTopic, req.Topic)
	}
}

func handleBudget(req Request) (*Result, error) {
	if err := req.Profile.Validate(); err != nil {
		return nil, err
	}

	rule := models.DefaultRule
	if req.Params.Rule != nil {
		rule = *req.Params.Rule
	}

	targets, err := budget.Targets(req.Profile.AnnualIncome, rule)
	if err != nil {
		return nil, err
	}
	actuals, err := budget.ClassifyExpenses(req.Params.Expenses)
	if err != nil {
		return nil, err
	}
	report := budget.AnalyzeVariance(targets, actuals)
	tips := budget.SuggestSavings(report)

	breakdown := make(map[models.BudgetGroup][]budget.SubAllocation, len(models.BudgetGroups))
	for _, group := range models.BudgetGroups {
		breakdown[group] = budget.Breakdown(group, targets.Amount(group))
	}

	efLow, efHigh := budget.EmergencyFundRange(targets.MonthlyIncome)

	advice := []string{fmt.Sprintf("With a monthly income of %.2f, the %.0f/%.0f/%.0f rule targets %.2f for needs, %.2f for wants, and %.2f for savings.",
		targets.MonthlyIncome, rule.NeedsPct, rule.WantsPct, rule.SavingsPct,
		targets.NeedsAmount, targets.WantsAmount, targets.SavingsAmount)}
	if len(req.Params.Expenses) > 0 && len(tips) == 0 {
		advice = append(advice, "Spending is within target across all three buckets. Keep it up.")
	}
	advice = append(advice, tips...)

	return &Result{
		Topic: TopicBudget,
		Figures: map[string]float64{
			"monthly_income":      targets.MonthlyIncome,
			"needs_target":        targets.NeedsAmount,
			"wants_target":        targets.WantsAmount,
			"savings_target":      targets.SavingsAmount,
			"emergency_fund_low":  efLow,
			"emergency_fund_high": efHigh,
		},
		Advice:    advice,
		Targets:   &targets,
		Variance:  report,
		Breakdown: breakdown,
	}, nil
}

func handleInvestment(req Request) (*Result, error) {
	if err := req.Profile.Validate(); err != nil {
		return nil, err
	}

	alloc, err := portfolio.RecommendAllocation(req.Profile.RiskTolerance, req.Profile.Age)
	if err != nil {
		return nil, err
	}
	expected := portfolio.ExpectedReturn(alloc)

	result := &Result{
		Topic: TopicInvestment,
		Figures: map[string]float64{
			"stocks_pct":          alloc.StocksPct,
			"bonds_pct":           alloc.BondsPct,
			"cash_pct":            alloc.CashPct,
			"expected_return_pct": expected,
		},
		Advice: []string{
			fmt.Sprintf("For a %s investor aged %d: %.0f%% stocks, %.0f%% bonds, %.0f%% cash.",
				req.Profile.RiskTolerance, req.Profile.Age, alloc.StocksPct, alloc.BondsPct, alloc.CashPct),
			fmt.Sprintf("Historical expected return for this mix is about %.1f%% per year.", expected),
		},
		Allocation: &alloc,
	}

	if len(req.Params.Holdings) > 0 {
		drift, err := portfolio.DetectRebalanceDrift(req.Params.Holdings, alloc, req.Params.DriftThreshold)
		if err != nil {
			return nil, err
		}
		result.Drift = drift
		for _, entry := range drift {
			if entry.Action != models.ActionHold {
				result.Advice = append(result.Advice,
					fmt.Sprintf("%s: %s (currently %.1f%%, target %.1f%%).",
						entry.AssetClass, entry.Action, entry.CurrentPct, entry.TargetPct))
			}
		}
	}

	return result, nil
}

func handleCalculator(req Request) (*Result, error) {
	p := req.Params
	result := &Result{Topic: TopicCalculator}

	switch p.Calculation {
	case CalcCompound:
		final, interest, err := calculator.CompoundInterest(p.Principal, p.AnnualRatePct, p.CompoundsPerYear, p.Years)
		if err != nil {
			return nil, err
		}
		result.Figures = map[string]float64{"final_value": final, "total_interest": interest}
		result.Result = &models.CalculationResult{
			Summary: models.CalculationSummary{FinalValue: final, TotalInterest: interest, TotalPaid: p.Principal},
		}
		result.Advice = []string{fmt.Sprintf("%.2f at %.2f%% compounded %d times a year grows to %.2f over %.0f years (%.2f in interest).",
			p.Principal, p.AnnualRatePct, p.CompoundsPerYear, final, p.Years, interest)}

	case CalcLoan:
		calc, err := calculator.AmortizationSchedule(models.LoanParameters{
			Principal:       p.Principal,
			AnnualRatePct:   p.AnnualRatePct,
			TermYears:       p.TermYears,
			PaymentsPerYear: p.PaymentsPerYear,
		})
		if err != nil {
			return nil, err
		}
		payment := calc.Schedule[0].Payment
		result.Figures = map[string]float64{
			"payment":        payment,
			"total_paid":     calc.Summary.TotalPaid,
			"total_interest": calc.Summary.TotalInterest,
		}
		result.Result = &calc
		result.Advice = []string{fmt.Sprintf("A %.2f loan at %.2f%% over %.0f years costs %.2f per period; %.2f total interest.",
			p.Principal, p.AnnualRatePct, p.TermYears, payment, calc.Summary.TotalInterest)}

	case CalcMortgage:
		principal := p.HomePrice - p.DownPayment
		if p.HomePrice <= 0 || principal <= 0 {
			return nil, fmt.Errorf("%w: home price %.2f with down payment %.2f leaves no loan principal",
				models.ErrInvalidInput, p.HomePrice, p.DownPayment)
		}
		calc, err := calculator.AmortizationSchedule(models.LoanParameters{
			Principal:       principal,
			AnnualRatePct:   p.AnnualRatePct,
			TermYears:       p.TermYears,
			PaymentsPerYear: p.PaymentsPerYear,
		})
		if err != nil {
			return nil, err
		}
		payment := calc.Schedule[0].Payment
		downPct := p.DownPayment / p.HomePrice * 100
		result.Figures = map[string]float64{
			"loan_amount":      principal,
			"payment":          payment,
			"total_interest":   calc.Summary.TotalInterest,
			"down_payment_pct": downPct,
		}
		result.Result = &calc
		result.Advice = []string{fmt.Sprintf("Borrowing %.2f (%.1f%% down) at %.2f%% over %.0f years: %.2f per period, %.2f total interest.",
			principal, downPct, p.AnnualRatePct, p.TermYears, payment, calc.Summary.TotalInterest)}

	case CalcProjection:
		rows, err := calculator.InvestmentProjection(p.Principal, p.MonthlyContribution, p.AnnualRatePct, int(p.Years))
		if err != nil {
			return nil, err
		}
		result.Projection = rows
		if len(rows) > 0 {
			last := rows[len(rows)-1]
			result.Figures = map[string]float64{
				"final_balance":       last.Balance,
				"total_contributions": last.Contributions,
				"total_growth":        last.Growth,
			}
			result.Advice = []string{fmt.Sprintf("Contributing %.2f monthly at %.2f%%: %.2f after %d years, of which %.2f is growth.",
				p.MonthlyContribution, p.AnnualRatePct, last.Balance, last.Year, last.Growth)}
		} else {
			result.Advice = []string{"A zero-year horizon has nothing to project."}
		}

	default:
		return nil, fmt.Errorf("%w: unknown calculation kind %q", models.ErrInvalidInput, p.Calculation)
	}

	return result, nil
}

func handleRetirement(req Request) (*Result, error) {
	numbers, err := portfolio.PlanRetirement(req.Profile)
	if err != nil {
		return nil, err
	}
	strategy, err := portfolio.RetirementStrategy(req.Profile.Age, numbers.YearsToRetirement)
	if err != nil {
		return nil, err
	}
	alloc, err := portfolio.RecommendAllocation(req.Profile.RiskTolerance, req.Profile.Age)
	if err != nil {
		return nil, err
	}

	return &Result{
		Topic: TopicRetirement,
		Figures: map[string]float64{
			"years_to_retirement": float64(numbers.YearsToRetirement),
			"annual_need":         numbers.AnnualNeed,
			"total_goal":          numbers.TotalGoal,
			"recommended_monthly": numbers.RecommendedMonthly,
		},
		Advice: []string{
			fmt.Sprintf("%d years to retirement: plan for %.2f per year, a total goal of %.2f.",
				numbers.YearsToRetirement, numbers.AnnualNeed, numbers.TotalGoal),
			fmt.Sprintf("Recommended posture: %s. Aim to put away %.2f per month.", strategy, numbers.RecommendedMonthly),
		},
		Strategy:   strategy,
		Retirement: &numbers,
		Allocation: &alloc,
	}, nil
}

func handleGeneral(req Request) (*Result, error) {
	return &Result{
		Topic:  TopicGeneral,
		Advice: knowledge.Lookup(req.Params.Question),
	}, nil
}
