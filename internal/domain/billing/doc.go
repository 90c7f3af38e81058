// Package billing provides the domain model for condominium billing: meter-based
// utility charges, association dues, penalty accrual and payment allocation.
//
// Calculators are pure functions over explicitly passed settings and are safe for
// concurrent use. The only stateful operation is payment allocation, which mutates
// Bill and AdvanceBalance aggregates for a single unit; callers must serialize it
// per unit and persist its result atomically.
//
// Key Aggregates:
//   - RateSettings: the tenant's current rate snapshot and billing schedule
//   - Bill: charges for one unit and billing month (or an opening balance)
//   - Payment: money received for a unit, split into components
//   - AdvanceBalance: per-unit credit for dues and utilities
//
// Value Objects:
//   - BillingMonth, PeriodInfo, WaterSchedule, BillPayment, PenaltyResult
package billing
