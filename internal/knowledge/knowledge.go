// Package knowledge holds the fixed advice tables behind the general topic.
// Lookup is a deterministic first-match scan over keyword rules declared in
// priority order; unmatched input gets the default guidance.
package knowledge

import "strings"

// entry pairs trigger keywords with the advice lines they unlock.
type entry struct {
	keywords []string
	advice   []string
}

// entries are scanned in order; the first entry with a matching keyword wins.
var entries = []entry{
	{
		keywords: []string{"hello", "hi ", "hey"},
		advice: []string{
			"Hello! I can help with budgeting, investing, saving, debt management, and retirement planning.",
			"Try asking about creating a budget, an investment portfolio, or a loan calculation.",
		},
	},
	{
		keywords: []string{"emergency fund", "emergency"},
		advice: []string{
			"An emergency fund is your financial safety net: aim for 3 to 6 months of expenses.",
			"Start with a $1,000 milestone, then automate monthly transfers into a high-yield savings account.",
			"Keep it separate from your checking account, and only touch it for true emergencies.",
		},
	},
	{
		keywords: []string{"debt", "credit card", "pay off", "loan payoff"},
		advice: []string{
			"Two proven payoff strategies: snowball (smallest balance first, best for momentum) and avalanche (highest rate first, saves the most interest).",
			"Priority order: high-interest credit cards, personal loans, auto loans, student loans, then mortgage.",
			"Never miss minimum payments, and keep an emergency fund so new debt doesn't replace old debt.",
		},
	},
	{
		keywords: []string{"save", "saving"},
		advice: []string{
			"Pay yourself first: automate savings the day income arrives.",
			"The 50/30/20 rule is a solid default: 50% needs, 30% wants, 20% savings.",
			"Break large goals into monthly targets and track progress monthly.",
		},
	},
	{
		keywords: []string{"invest", "stock", "bond", "portfolio"},
		advice: []string{
			"Before investing: build an emergency fund, pay off high-interest debt, and capture any employer 401(k) match.",
			"Low-cost index funds and target-date funds are the simplest diversified starting points.",
			"Time in the market beats timing the market; stay invested and rebalance annually.",
		},
	},
	{
		keywords: []string{"retirement", "401k", "401(k)", "ira", "pension"},
		advice: []string{
			"Rule of thumb: save 10-15% of income for retirement, starting as early as possible.",
			"Priority order: 401(k) up to the employer match, then IRA, then 401(k) to the annual limit.",
			"The 25x rule sizes your goal: 25 times the annual spending you expect in retirement.",
		},
	},
	{
		keywords: []string{"budget"},
		advice: []string{
			"Track everything for a month first; you can't manage what you don't measure.",
			"Use the 50/30/20 rule to split income into needs, wants, and savings, then review monthly.",
		},
	},
}

// defaultAdvice is returned when nothing matches.
var defaultAdvice = []string{
	"I can help with budgeting, investing, saving, debt, retirement planning, and financial calculations.",
	"Try something specific, like \"how do I create a budget?\" or \"what should my portfolio look like?\".",
}

// Lookup returns the advice lines for a free-text question. The scan is
// deterministic; identical input always yields identical advice.
func Lookup(input string) []string {
	lower := strings.ToLower(input)
	for _, e := range entries {
		for _, kw := range e.keywords {
			if strings.Contains(lower, kw) {
				return e.advice
			}
		}
	}
	return defaultAdvice
}
