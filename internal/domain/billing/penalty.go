package billing

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PenaltyInput is one unpaid bill as seen by the penalty calculator.
type PenaltyInput struct {
	BillID       uuid.UUID
	BillingMonth BillingMonth
	DueDate      time.Time
	Principal    decimal.Decimal // electric + water + dues still owed
}

// PenaltyLine is one step of the penalty breakdown.
type PenaltyLine struct {
	BillID        uuid.UUID       `json:"bill_id"`
	BillingMonth  BillingMonth    `json:"billing_month"`
	Principal     decimal.Decimal `json:"principal"`
	MonthsOverdue int             `json:"months_overdue"`
	StepPenalty   decimal.Decimal `json:"step_penalty"`
	Cumulative    decimal.Decimal `json:"cumulative"`
}

// PenaltyResult is the total compounded penalty and how it accrued.
type PenaltyResult struct {
	Total     decimal.Decimal `json:"total"`
	Breakdown []PenaltyLine   `json:"breakdown"`
}

// CalculatePenalty compounds penalty across the unit's overdue backlog.
//
// Only bills due strictly before asOf count, oldest billing month first. The
// first bill accrues principal × rate. Each later bill folds its own
// principal × rate into the running total and the combined base accrues
// again: base = running + principal × rate; running = base + base × rate.
func CalculatePenalty(bills []PenaltyInput, rate decimal.Decimal, asOf time.Time) PenaltyResult {
	cutoff := truncateDay(asOf)
	overdue := make([]PenaltyInput, 0, len(bills))
	for _, b := range bills {
		if truncateDay(b.DueDate).Before(cutoff) {
			overdue = append(overdue, b)
		}
	}
	sort.SliceStable(overdue, func(i, j int) bool {
		if overdue[i].BillingMonth != overdue[j].BillingMonth {
			return overdue[i].BillingMonth.Before(overdue[j].BillingMonth)
		}
		return overdue[i].DueDate.Before(overdue[j].DueDate)
	})

	result := PenaltyResult{Total: decimal.Zero, Breakdown: make([]PenaltyLine, 0, len(overdue))}
	running := decimal.Zero
	for i, b := range overdue {
		var step decimal.Decimal
		if i == 0 {
			step = b.Principal.Mul(rate)
			running = step
		} else {
			base := running.Add(b.Principal.Mul(rate))
			step = base.Mul(rate)
			running = base.Add(step)
		}
		result.Breakdown = append(result.Breakdown, PenaltyLine{
			BillID:        b.BillID,
			BillingMonth:  b.BillingMonth,
			Principal:     b.Principal,
			MonthsOverdue: MonthsOverdue(b.DueDate, asOf),
			StepPenalty:   step,
			Cumulative:    running,
		})
	}
	result.Total = running
	return result
}
