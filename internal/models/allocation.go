package models

// SumTolerance is the rounding tolerance, in percentage points, allowed when
// checking that an allocation's parts sum to 100. It matches the 0.01
// currency tolerance used across the calculators.
const SumTolerance = 0.01

// BudgetRule is a needs/wants/savings percentage split. The three values must
// sum to 100 within SumTolerance; rules are validated at entry, never fixed up.
type BudgetRule struct {
	NeedsPct   float64 `json:"needs_pct"`
	WantsPct   float64 `json:"wants_pct"`
	SavingsPct float64 `json:"savings_pct"`
}

// DefaultRule is the classic 50/30/20 rule.
var DefaultRule = BudgetRule{NeedsPct: 50, WantsPct: 30, SavingsPct: 20}

// Pct returns the rule percentage for a bucket.
func (r BudgetRule) Pct(g BudgetGroup) float64 {
	switch g {
	case GroupNeeds:
		return r.NeedsPct
	case GroupWants:
		return r.WantsPct
	case GroupSavings:
		return r.SavingsPct
	}
	return 0
}

// AllocationTarget is a budget rule applied to a concrete monthly income:
// the rule percentages plus the currency amount each bucket gets.
type AllocationTarget struct {
	Rule          BudgetRule `json:"rule"`
	MonthlyIncome float64    `json:"monthly_income"`
	NeedsAmount   float64    `json:"needs_amount"`
	WantsAmount   float64    `json:"wants_amount"`
	SavingsAmount float64    `json:"savings_amount"`
}

// Amount returns the monthly target amount for a bucket.
func (t AllocationTarget) Amount(g BudgetGroup) float64 {
	switch g {
	case GroupNeeds:
		return t.NeedsAmount
	case GroupWants:
		return t.WantsAmount
	case GroupSavings:
		return t.SavingsAmount
	}
	return 0
}

// Variance compares one bucket's actual spending against its target.
// When the target amount is zero the percentage delta is undefined; Undefined
// is set instead of emitting an infinite or NaN DeltaPct.
type Variance struct {
	Group        BudgetGroup `json:"group"`
	TargetAmount float64     `json:"target_amount"`
	ActualAmount float64     `json:"actual_amount"`
	DeltaPct     float64     `json:"delta_pct"`
	Undefined    bool        `json:"undefined,omitempty"`
}

// AssetClass is one of the three portfolio buckets.
type AssetClass string

const (
	AssetStocks AssetClass = "stocks"
	AssetBonds  AssetClass = "bonds"
	AssetCash   AssetClass = "cash"
)

// AssetClasses lists the buckets in reporting order.
var AssetClasses = []AssetClass{AssetStocks, AssetBonds, AssetCash}

// PortfolioAllocation is a stocks/bonds/cash percentage split summing to 100
// within SumTolerance.
type PortfolioAllocation struct {
	StocksPct float64 `json:"stocks_pct"`
	BondsPct  float64 `json:"bonds_pct"`
	CashPct   float64 `json:"cash_pct"`
}

// Pct returns the allocation percentage for an asset class.
func (a PortfolioAllocation) Pct(c AssetClass) float64 {
	switch c {
	case AssetStocks:
		return a.StocksPct
	case AssetBonds:
		return a.BondsPct
	case AssetCash:
		return a.CashPct
	}
	return 0
}

// Holdings is a portfolio snapshot keyed by asset class. Values may be
// percentages or currency amounts; drift detection normalizes them before
// comparing against a target allocation.
type Holdings map[AssetClass]float64

// RebalanceAction is the recommendation for one asset class.
type RebalanceAction string

const (
	ActionBuy  RebalanceAction = "buy"
	ActionSell RebalanceAction = "sell"
	ActionHold RebalanceAction = "hold"
)

// DriftEntry is the drift report for a single asset class.
type DriftEntry struct {
	AssetClass AssetClass      `json:"asset_class"`
	CurrentPct float64         `json:"current_pct"`
	TargetPct  float64         `json:"target_pct"`
	Action     RebalanceAction `json:"action"`
}

// StrategyTag is the coarse retirement posture derived from the years left
// until retirement.
type StrategyTag string

const (
	StrategyAggressiveGrowth    StrategyTag = "aggressive-growth"
	StrategyBalanced            StrategyTag = "balanced"
	StrategyCapitalPreservation StrategyTag = "capital-preservation"
)
