package models

import "time"

// BudgetGroup is one of the three 50/30/20 buckets.
type BudgetGroup string

const (
	GroupNeeds   BudgetGroup = "needs"
	GroupWants   BudgetGroup = "wants"
	GroupSavings BudgetGroup = "savings"
)

// BudgetGroups lists the buckets in declaration order. Rule tables and
// variance reports iterate in this order so output is deterministic.
var BudgetGroups = []BudgetGroup{GroupNeeds, GroupWants, GroupSavings}

// ExpenseCategory is a fine-grained spending category. The taxonomy is fixed;
// entries outside it are rejected with ErrUnknownCategory rather than merged
// into a catch-all.
type ExpenseCategory string

const (
	CategoryHousing        ExpenseCategory = "housing"
	CategoryFood           ExpenseCategory = "food"
	CategoryTransportation ExpenseCategory = "transportation"
	CategoryHealthcare     ExpenseCategory = "healthcare"
	CategoryUtilities      ExpenseCategory = "utilities"
	CategoryInsurance      ExpenseCategory = "insurance"
	CategoryDebtPayments   ExpenseCategory = "debt_payments"
	CategoryEntertainment  ExpenseCategory = "entertainment"
	CategoryDining         ExpenseCategory = "dining"
	CategoryShopping       ExpenseCategory = "shopping"
	CategoryHobbies        ExpenseCategory = "hobbies"
	CategoryTravel         ExpenseCategory = "travel"
	CategoryEmergencyFund  ExpenseCategory = "emergency_fund"
	CategoryRetirement     ExpenseCategory = "retirement"
	CategoryGoalSavings    ExpenseCategory = "goal_savings"
)

// categoryGroups maps every known category to its budget bucket. A category
// belongs to exactly one bucket; the buckets are exhaustive over the taxonomy.
var categoryGroups = map[ExpenseCategory]BudgetGroup{
	CategoryHousing:        GroupNeeds,
	CategoryFood:           GroupNeeds,
	CategoryTransportation: GroupNeeds,
	CategoryHealthcare:     GroupNeeds,
	CategoryUtilities:      GroupNeeds,
	CategoryInsurance:      GroupNeeds,
	CategoryDebtPayments:   GroupNeeds,
	CategoryEntertainment:  GroupWants,
	CategoryDining:         GroupWants,
	CategoryShopping:       GroupWants,
	CategoryHobbies:        GroupWants,
	CategoryTravel:         GroupWants,
	CategoryEmergencyFund:  GroupSavings,
	CategoryRetirement:     GroupSavings,
	CategoryGoalSavings:    GroupSavings,
}

// Group returns the budget bucket for the category and whether the category
// is part of the taxonomy at all.
func (c ExpenseCategory) Group() (BudgetGroup, bool) {
	g, ok := categoryGroups[c]
	return g, ok
}

// ExpenseEntry is a single spending record collected by the session layer and
// passed to the budget allocator as part of an ordered sequence.
type ExpenseEntry struct {
	Category    ExpenseCategory `json:"category"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}
