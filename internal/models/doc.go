// Package models defines the core domain types for the FINBOT advisory engine.
//
// # Model Groups
//
//   - Profile: UserProfile and SavingsGoal, supplied fresh on every call by
//     the session layer; the engine only ever sees read-only snapshots.
//   - Expenses: ExpenseEntry and the fixed needs/wants/savings taxonomy used
//     by the budget allocator.
//   - Allocations: AllocationTarget (budget) and PortfolioAllocation
//     (investments). Both carry the invariant that their percentages sum to
//     100 within a 0.01 rounding tolerance.
//   - Calculations: LoanParameters in, CalculationResult (schedule + summary)
//     and YearlyProjection rows out. Results are immutable once produced and
//     live for a single call.
//
// # Design Principles
//
//  1. **Caller-owned state**: nothing in this package is retained by the
//     engine across calls; there is no hidden shared mutable state.
//  2. **Strict taxonomies**: categories, risk tiers, and topics are closed
//     enumerations validated at the boundary, never free strings.
//  3. **Typed errors**: the sentinels in errors.go are the whole failure
//     taxonomy; modules wrap them with context and callers match with
//     errors.Is.
package models
