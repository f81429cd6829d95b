package budget

import "github.com/Sarvajith2007/FINBOT/internal/models"

// tipRule fires when a bucket's spending deviates past a threshold.
// Overspend rules use DeltaPct > threshold; shortfall rules (savings) use
// DeltaPct < -threshold. Rules for the same bucket are ordered most-severe
// first so only the most specific one fires.
type tipRule struct {
	group     models.BudgetGroup
	threshold float64
	shortfall bool
	tip       string
}

// tipRules is scanned bucket by bucket in declaration order (needs, wants,
// savings), so the output order is deterministic for a given report.
var tipRules = []tipRule{
	{models.GroupNeeds, 25, false,
		"Needs are running more than a quarter over target. Housing and transportation are the biggest levers: consider refinancing, roommates, or downsizing."},
	{models.GroupNeeds, 10, false,
		"Needs are over target. Shop around for insurance and utilities, and renegotiate recurring bills annually."},
	{models.GroupWants, 25, false,
		"Wants are far over target. Audit subscriptions, pause the non-essentials, and apply a 24-hour rule before discretionary purchases."},
	{models.GroupWants, 10, false,
		"Wants are over target. Trimming dining out and entertainment is the quickest way back inside the 30% band."},
	{models.GroupSavings, 25, true,
		"Savings are running far below target. Automate a payday transfer so saving happens before spending can."},
	{models.GroupSavings, 0, true,
		"Savings are short of target. Pay yourself first: move the savings amount out the day income arrives."},
}

// SuggestSavings turns a variance report into an ordered list of tips. For
// each bucket the first matching rule fires; a bucket with spending but no
// target (undefined variance) matches its most severe overspend rule. Buckets
// within their targets produce no tip.
func SuggestSavings(report []models.Variance) []string {
	byGroup := make(map[models.BudgetGroup]models.Variance, len(report))
	for _, v := range report {
		byGroup[v.Group] = v
	}

	var tips []string
	for _, group := range models.BudgetGroups {
		v, ok := byGroup[group]
		if !ok {
			continue
		}
		for _, rule := range tipRules {
			if rule.group != group {
				continue
			}
			var fires bool
			if rule.shortfall {
				fires = !v.Undefined && v.DeltaPct < -rule.threshold
			} else {
				fires = v.Undefined || v.DeltaPct > rule.threshold
			}
			if fires {
				tips = append(tips, rule.tip)
				break
			}
		}
	}
	return tips
}

// SubAllocation is one line of a bucket's suggested internal split.
type SubAllocation struct {
	Label  string  `json:"label"`
	Pct    float64 `json:"pct"`
	Amount float64 `json:"amount"`
}

// subSplits is the suggested split inside each bucket, percentages of the
// bucket amount. Each bucket's percentages sum to 100.
var subSplits = map[models.BudgetGroup][]struct {
	label string
	pct   float64
}{
	models.GroupNeeds: {
		{"housing", 40}, {"food", 20}, {"transportation", 15},
		{"utilities", 10}, {"insurance", 10}, {"other", 5},
	},
	models.GroupWants: {
		{"entertainment", 30}, {"dining out", 25}, {"shopping", 20},
		{"hobbies", 15}, {"travel", 10},
	},
	models.GroupSavings: {
		{"emergency fund", 30}, {"retirement", 40}, {"other goals", 30},
	},
}

// Breakdown expands a bucket's monthly amount into its suggested internal
// split, in fixed declaration order.
func Breakdown(group models.BudgetGroup, monthlyAmount float64) []SubAllocation {
	split := subSplits[group]
	lines := make([]SubAllocation, 0, len(split))
	for _, s := range split {
		lines = append(lines, SubAllocation{
			Label:  s.label,
			Pct:    s.pct,
			Amount: round2(monthlyAmount * s.pct / 100),
		})
	}
	return lines
}
