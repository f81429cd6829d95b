package models

// LoanParameters describes an amortized product. Principal and term must be
// positive; the rate may be zero, which selects straight-line amortization.
type LoanParameters struct {
	Principal       float64 `json:"principal"`
	AnnualRatePct   float64 `json:"annual_rate_pct"`
	TermYears       float64 `json:"term_years"`
	PaymentsPerYear int     `json:"payments_per_year"`
}

// ScheduleRow is one period of an amortization schedule. The payment splits
// into an interest portion (balance times periodic rate) and a principal
// portion; the final row's RemainingBalance is exactly zero.
type ScheduleRow struct {
	Period           int     `json:"period"`
	Payment          float64 `json:"payment"`
	PrincipalPortion float64 `json:"principal_portion"`
	InterestPortion  float64 `json:"interest_portion"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// CalculationSummary aggregates a calculation's headline numbers.
type CalculationSummary struct {
	TotalPaid     float64 `json:"total_paid"`
	TotalInterest float64 `json:"total_interest"`
	FinalValue    float64 `json:"final_value"`
}

// CalculationResult is the immutable output of a single calculator call:
// an ordered schedule (amortized products only) plus summary figures. It is
// created, returned, and discarded by the caller; the engine keeps nothing.
type CalculationResult struct {
	Schedule []ScheduleRow      `json:"schedule,omitempty"`
	Summary  CalculationSummary `json:"summary"`
}

// YearlyProjection is one year of an investment growth projection.
// Contributions and Growth are cumulative; Balance = initial amount +
// Contributions + Growth.
type YearlyProjection struct {
	Year          int     `json:"year"`
	Contributions float64 `json:"contributions"`
	Growth        float64 `json:"growth"`
	Balance       float64 `json:"balance"`
}
