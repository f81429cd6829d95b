// Package portfolio maps risk tiers and investor age to target asset
// allocations, detects rebalancing drift, and derives retirement posture.
// All lookup tables are immutable package-level constants so the
// sums-to-100 invariant is enforceable in one place.
package portfolio

import (
	"fmt"
	"math"

	"github.com/Sarvajith2007/FINBOT/internal/models"
)

// Base allocations per risk tier, before the age glide path.
var baseAllocations = map[models.RiskTolerance]models.PortfolioAllocation{
	models.RiskConservative: {StocksPct: 30, BondsPct: 60, CashPct: 10},
	models.RiskModerate:     {StocksPct: 50, BondsPct: 40, CashPct: 10},
	models.RiskAggressive:   {StocksPct: 70, BondsPct: 20, CashPct: 10},
}

// stockFloors is the minimum stock percentage per tier; the glide path never
// pushes stocks below the floor.
var stockFloors = map[models.RiskTolerance]float64{
	models.RiskConservative: 20,
	models.RiskModerate:     25,
	models.RiskAggressive:   30,
}

const (
	// glideStartAge is the age at which the glide path begins.
	glideStartAge = 30
	// glideStepPct is shifted from stocks to bonds per full decade past
	// glideStartAge.
	glideStepPct = 5.0
)

// Historical average annual returns used for the expected-return estimate.
const (
	stocksReturnPct = 8.5
	bondsReturnPct  = 4.0
	cashReturnPct   = 2.0
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RecommendAllocation returns the target allocation for a risk tier and age.
// The base tier allocation is glide-path adjusted: glideStepPct moves from
// stocks to bonds for every full decade past glideStartAge, stocks never drop
// below the tier's floor, and the result is renormalized to sum to 100.
func RecommendAllocation(tier models.RiskTolerance, age int) (models.PortfolioAllocation, error) {
	if !tier.Valid() {
		return models.PortfolioAllocation{}, fmt.Errorf("%w: unknown risk tolerance %q", models.ErrInvalidInput, tier)
	}
	if age <= 0 {
		return models.PortfolioAllocation{}, fmt.Errorf("%w: age must be positive, got %d", models.ErrInvalidInput, age)
	}

	base := baseAllocations[tier]

	decades := 0
	if age > glideStartAge {
		decades = (age - glideStartAge) / 10
	}

	stocks := base.StocksPct - glideStepPct*float64(decades)
	if floor := stockFloors[tier]; stocks < floor {
		stocks = floor
	}
	shifted := base.StocksPct - stocks

	alloc := models.PortfolioAllocation{
		StocksPct: stocks,
		BondsPct:  base.BondsPct + shifted,
		CashPct:   base.CashPct,
	}
	return renormalize(alloc), nil
}

// renormalize corrects rounding drift by adding the residual to the largest
// bucket so the three percentages sum to exactly 100.
func renormalize(a models.PortfolioAllocation) models.PortfolioAllocation {
	residual := 100 - (a.StocksPct + a.BondsPct + a.CashPct)
	if residual == 0 {
		return a
	}
	switch {
	case a.StocksPct >= a.BondsPct && a.StocksPct >= a.CashPct:
		a.StocksPct += residual
	case a.BondsPct >= a.CashPct:
		a.BondsPct += residual
	default:
		a.CashPct += residual
	}
	return a
}

// ExpectedReturn estimates the portfolio's annual return by weighting the
// historical asset-class averages with the allocation.
func ExpectedReturn(a models.PortfolioAllocation) float64 {
	return round2((a.StocksPct*stocksReturnPct + a.BondsPct*bondsReturnPct + a.CashPct*cashReturnPct) / 100)
}
