package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Components are the charge lines of a bill.
type Components struct {
	Electric          decimal.Decimal `json:"electric"`
	Water             decimal.Decimal `json:"water"`
	Dues              decimal.Decimal `json:"dues"`
	Parking           decimal.Decimal `json:"parking"`
	SpecialAssessment decimal.Decimal `json:"special_assessment"`
	Penalty           decimal.Decimal `json:"penalty"`
	OtherCharges      decimal.Decimal `json:"other_charges"`
}

func (c Components) lines() []decimal.Decimal {
	return []decimal.Decimal{c.Electric, c.Water, c.Dues, c.Parking, c.SpecialAssessment, c.Penalty, c.OtherCharges}
}

// Rounded returns the components rounded to currency precision
func (c Components) Rounded() Components {
	return Components{
		Electric:          valueobject.RoundCurrency(c.Electric),
		Water:             valueobject.RoundCurrency(c.Water),
		Dues:              valueobject.RoundCurrency(c.Dues),
		Parking:           valueobject.RoundCurrency(c.Parking),
		SpecialAssessment: valueobject.RoundCurrency(c.SpecialAssessment),
		Penalty:           valueobject.RoundCurrency(c.Penalty),
		OtherCharges:      valueobject.RoundCurrency(c.OtherCharges),
	}
}

// Gross sums the components grouped by allocation category.
func (c Components) Gross() CategoryAmounts {
	return CategoryAmounts{
		Electric:          c.Electric,
		Water:             c.Water,
		Dues:              c.Dues.Add(c.Parking),
		Penalty:           c.Penalty.Add(c.OtherCharges),
		SpecialAssessment: c.SpecialAssessment,
	}
}

// Credits reduce what a bill charges.
type Credits struct {
	Discount                decimal.Decimal `json:"discount"`
	AdvanceDuesApplied      decimal.Decimal `json:"advance_dues_applied"`
	AdvanceUtilitiesApplied decimal.Decimal `json:"advance_utilities_applied"`
}

// Total sums every credit
func (c Credits) Total() decimal.Decimal {
	return c.Discount.Add(c.AdvanceDuesApplied).Add(c.AdvanceUtilitiesApplied)
}

// discountOrder is the order a discount is netted against categories.
var discountOrder = []Category{
	CategoryDues,
	CategorySpecialAssessment,
	CategoryPenalty,
	CategoryWater,
	CategoryElectric,
}

// Bill is the charges for one unit and billing month.
type Bill struct {
	shared.TenantAggregateRoot
	UnitID        uuid.UUID
	BillNumber    string
	BillType      BillType
	BillingMonth  BillingMonth
	Components    Components
	Credits       Credits
	Paid          CategoryAmounts
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	Balance       decimal.Decimal
	Status        BillStatus
	StatementDate time.Time
	DueDate       time.Time
}

// NewBill creates a regular bill dated from the billing period.
func NewBill(tenantID, unitID uuid.UUID, period PeriodInfo, components Components, credits Credits) (*Bill, error) {
	return newBill(tenantID, unitID, BillTypeRegular, period.BillingMonth, period.StatementDate, period.DueDate, components, credits)
}

// NewOpeningBalanceBill seeds a legacy balance as a bill. It follows the same
// balance-driven status rule as regular bills.
func NewOpeningBalanceBill(tenantID, unitID uuid.UUID, month BillingMonth, dueDate time.Time, components Components) (*Bill, error) {
	return newBill(tenantID, unitID, BillTypeOpeningBalance, month, dueDate, dueDate, components, Credits{})
}

func newBill(tenantID, unitID uuid.UUID, billType BillType, month BillingMonth, statement, due time.Time, components Components, credits Credits) (*Bill, error) {
	if unitID == uuid.Nil {
		return nil, shared.NewValidationError("unit id is required")
	}
	for _, line := range components.lines() {
		if line.IsNegative() {
			return nil, shared.NewValidationError("bill component %s must not be negative", line)
		}
	}
	if credits.Discount.IsNegative() || credits.AdvanceDuesApplied.IsNegative() || credits.AdvanceUtilitiesApplied.IsNegative() {
		return nil, shared.NewValidationError("bill credits must not be negative")
	}

	b := &Bill{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		UnitID:              unitID,
		BillType:            billType,
		BillingMonth:        month,
		Components:          components.Rounded(),
		Credits: Credits{
			Discount:                valueobject.RoundCurrency(credits.Discount),
			AdvanceDuesApplied:      valueobject.RoundCurrency(credits.AdvanceDuesApplied),
			AdvanceUtilitiesApplied: valueobject.RoundCurrency(credits.AdvanceUtilitiesApplied),
		},
		StatementDate: statement.UTC(),
		DueDate:       due.UTC(),
	}
	b.BillNumber = b.defaultBillNumber()
	if err := b.RecomputeTotal(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bill) defaultBillNumber() string {
	prefix := "SOA"
	if b.BillType == BillTypeOpeningBalance {
		prefix = "OB"
	}
	short := strings.ToUpper(strings.ReplaceAll(b.UnitID.String(), "-", "")[:8])
	return fmt.Sprintf("%s-%04d%02d-%s", prefix, b.BillingMonth.Year, int(b.BillingMonth.Month), short)
}

// Billed returns the charged amount per category after credits.
// Advance dues reduce dues, advance utilities reduce electric then water, and the
// discount is netted in discountOrder. Credits larger than the charges are rejected.
func (b *Bill) Billed() (CategoryAmounts, error) {
	billed := b.Components.Gross()

	remaining := netCredit(&billed, b.Credits.AdvanceDuesApplied, CategoryDues)
	if remaining.IsPositive() {
		return CategoryAmounts{}, shared.NewValidationError("advance dues applied %s exceeds dues charged", b.Credits.AdvanceDuesApplied)
	}
	remaining = netCredit(&billed, b.Credits.AdvanceUtilitiesApplied, CategoryElectric, CategoryWater)
	if remaining.IsPositive() {
		return CategoryAmounts{}, shared.NewValidationError("advance utilities applied %s exceeds utilities charged", b.Credits.AdvanceUtilitiesApplied)
	}
	remaining = netCredit(&billed, b.Credits.Discount, discountOrder...)
	if remaining.IsPositive() {
		return CategoryAmounts{}, shared.NewValidationError("discount %s exceeds bill charges", b.Credits.Discount)
	}
	return billed, nil
}

// netCredit subtracts credit from the categories in order and returns what is left of it.
func netCredit(amounts *CategoryAmounts, credit decimal.Decimal, order ...Category) decimal.Decimal {
	for _, c := range order {
		if !credit.IsPositive() {
			break
		}
		take := decimal.Min(credit, amounts.Get(c))
		amounts.Set(c, amounts.Get(c).Sub(take))
		credit = credit.Sub(take)
	}
	return credit
}

// RecomputeTotal derives total, balance and status from components, credits and paid amounts.
func (b *Bill) RecomputeTotal() error {
	billed, err := b.Billed()
	if err != nil {
		return err
	}
	b.TotalAmount = billed.Total()
	b.PaidAmount = b.Paid.Total()
	b.refreshBalance()
	return nil
}

func (b *Bill) refreshBalance() {
	b.Balance = valueobject.ClampZero(b.TotalAmount.Sub(b.PaidAmount))
	b.Status = StatusFor(b.Balance, b.PaidAmount)
}

// CheckConsistency verifies stored totals against the components they derive from.
func (b *Bill) CheckConsistency() error {
	billed, err := b.Billed()
	if err != nil {
		return shared.NewConsistencyError("bill %s: %s", b.BillNumber, err.Error())
	}
	total := billed.Total()
	if !valueobject.RoundCurrency(total).Equal(valueobject.RoundCurrency(b.TotalAmount)) {
		return shared.NewConsistencyError("bill %s: stored total %s does not match components %s", b.BillNumber, b.TotalAmount, total)
	}
	if !b.Paid.Total().Equal(b.PaidAmount) {
		return shared.NewConsistencyError("bill %s: paid amount %s does not match category payments %s", b.BillNumber, b.PaidAmount, b.Paid.Total())
	}
	expected := valueobject.ClampZero(b.TotalAmount.Sub(b.PaidAmount))
	if !expected.Equal(b.Balance) {
		return shared.NewConsistencyError("bill %s: balance %s does not equal total - paid %s", b.BillNumber, b.Balance, expected)
	}
	if b.Paid.HasNegative() {
		return shared.NewConsistencyError("bill %s: negative category payment", b.BillNumber)
	}
	return nil
}

// Outstanding returns what is still owed in a category.
func (b *Bill) Outstanding(c Category) decimal.Decimal {
	billed, err := b.Billed()
	if err != nil {
		return decimal.Zero
	}
	return valueobject.ClampZero(billed.Get(c).Sub(b.Paid.Get(c)))
}

// OutstandingByCategory returns Outstanding for every category.
func (b *Bill) OutstandingByCategory() CategoryAmounts {
	var out CategoryAmounts
	for _, c := range Categories {
		out.Set(c, b.Outstanding(c))
	}
	return out
}

// PenaltyPrincipal is the outstanding electric, water and dues. Special
// assessment, other charges and earlier penalties never accrue penalty.
func (b *Bill) PenaltyPrincipal() decimal.Decimal {
	return b.Outstanding(CategoryElectric).Add(b.Outstanding(CategoryWater)).Add(b.Outstanding(CategoryDues))
}

// PenaltyInput returns the bill as an input to CalculatePenalty.
func (b *Bill) PenaltyInput() PenaltyInput {
	return PenaltyInput{
		BillID:       b.ID,
		BillingMonth: b.BillingMonth,
		DueDate:      b.DueDate,
		Principal:    b.PenaltyPrincipal(),
	}
}

// IsOutstanding reports whether payments can still be applied
func (b *Bill) IsOutstanding() bool {
	return b.Status.IsOutstanding()
}

// EffectiveStatus returns OVERDUE for unsettled bills past their due date.
func (b *Bill) EffectiveStatus(asOf time.Time) BillStatus {
	if b.Status != BillStatusPaid && truncateDay(asOf).After(truncateDay(b.DueDate)) {
		return BillStatusOverdue
	}
	return b.Status
}

// ApplyAllocation records a payment allocation against the bill.
func (b *Bill) ApplyAllocation(amounts CategoryAmounts) error {
	if amounts.HasNegative() {
		return shared.NewValidationError("allocation amounts must not be negative")
	}
	for _, c := range Categories {
		if amounts.Get(c).GreaterThan(b.Outstanding(c)) {
			return shared.NewConsistencyError("bill %s: allocation of %s to %s exceeds outstanding %s",
				b.BillNumber, amounts.Get(c), c, b.Outstanding(c))
		}
	}
	b.Paid = b.Paid.Add(amounts)
	b.PaidAmount = b.Paid.Total()
	b.refreshBalance()
	b.IncrementVersion()
	return nil
}

// ReverseAllocation removes a previously applied allocation, used when a payment is voided.
func (b *Bill) ReverseAllocation(amounts CategoryAmounts) error {
	next := b.Paid.Sub(amounts)
	if next.HasNegative() {
		return shared.NewConsistencyError("bill %s: reversal exceeds amounts paid", b.BillNumber)
	}
	b.Paid = next
	b.PaidAmount = b.Paid.Total()
	b.refreshBalance()
	b.IncrementVersion()
	return nil
}
