package portfolio

import (
	"fmt"

	"github.com/Sarvajith2007/FINBOT/internal/models"
)

// DefaultDriftThreshold is the drift, in percentage points, past which a
// rebalance is recommended.
const DefaultDriftThreshold = 5.0

// DetectRebalanceDrift compares current holdings against a target allocation
// and returns one entry per asset class, in fixed order. Holdings are
// normalized to percentages first, so they may be supplied as currency
// amounts or as percentages that do not quite sum to 100; holdings summing to
// zero cannot be normalized and are rejected. A zero threshold selects
// DefaultDriftThreshold; drift within the threshold is reported as hold.
func DetectRebalanceDrift(holdings models.Holdings, target models.PortfolioAllocation, threshold float64) ([]models.DriftEntry, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("%w: drift threshold must be non-negative, got %.2f", models.ErrInvalidInput, threshold)
	}
	if threshold == 0 {
		threshold = DefaultDriftThreshold
	}

	var sum float64
	for _, class := range models.AssetClasses {
		value := holdings[class]
		if value < 0 {
			return nil, fmt.Errorf("%w: %s holding is negative (%.2f)", models.ErrInvalidHoldings, class, value)
		}
		sum += value
	}
	if sum == 0 {
		return nil, fmt.Errorf("%w: holdings sum to zero, cannot normalize", models.ErrInvalidHoldings)
	}

	entries := make([]models.DriftEntry, 0, len(models.AssetClasses))
	for _, class := range models.AssetClasses {
		currentPct := holdings[class] / sum * 100
		targetPct := target.Pct(class)

		action := models.ActionHold
		switch drift := currentPct - targetPct; {
		case drift > threshold:
			action = models.ActionSell
		case drift < -threshold:
			action = models.ActionBuy
		}

		entries = append(entries, models.DriftEntry{
			AssetClass: class,
			CurrentPct: round2(currentPct),
			TargetPct:  targetPct,
			Action:     action,
		})
	}
	return entries, nil
}
