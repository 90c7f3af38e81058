package billing

import (
	"context"
	"errors"
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/domain/billing"
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared/valueobject"
	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Operation names used for lock metrics and error counters
const (
	OpUpdateRates    = "update_rates"
	OpRecordReading  = "record_reading"
	OpGenerateBill   = "generate_bill"
	OpOpeningBalance = "opening_balance"
	OpPostPayment    = "post_payment"
	OpVoidPayment    = "void_payment"
)

// DefaultLedgerLimit is how many advance ledger entries GetAdvanceBalance returns
const DefaultLedgerLimit = 50

// UnitLocker serializes billing writes on one unit.
type UnitLocker interface {
	// Acquire blocks until the unit is free or returns a ConcurrencyError.
	Acquire(ctx context.Context, tenantID, unitID uuid.UUID) (func(ctx context.Context) error, error)
}

// Metrics receives billing measurements. *telemetry.BillingMetrics implements it.
type Metrics interface {
	RecordPaymentPosted(ctx context.Context, tenantID uuid.UUID, method string, total decimal.Decimal)
	RecordPaymentVoided(ctx context.Context, tenantID uuid.UUID)
	RecordAdvanceOverflow(ctx context.Context, tenantID uuid.UUID, bucket string, amount decimal.Decimal)
	RecordBillGenerated(ctx context.Context, tenantID uuid.UUID, billType string)
	RecordLockWait(ctx context.Context, operation string, d time.Duration, acquired bool)
	RecordOperationError(ctx context.Context, operation, code string)
}

// RateDefaults builds the rate snapshot a tenant gets before saving its own.
type RateDefaults func(tenantID uuid.UUID) *billing.RateSettings

// BillingService orchestrates charge computation, bill generation and payment posting.
// Every write that touches a unit's money takes the unit lock first and then runs
// in one transaction.
type BillingService struct {
	repos   Repositories
	txScope TransactionScope
	locker  UnitLocker
	metrics Metrics
	logger  *zap.Logger
	rates   RateDefaults
	now     func() time.Time
}

// NewBillingService creates a new BillingService
func NewBillingService(repos Repositories, txScope TransactionScope, locker UnitLocker) *BillingService {
	return &BillingService{
		repos:   repos,
		txScope: txScope,
		locker:  locker,
		metrics: noopMetrics{},
		logger:  zap.NewNop(),
		rates:   billing.DefaultRateSettings,
		now:     time.Now,
	}
}

// SetLogger sets the service logger
func (s *BillingService) SetLogger(l *zap.Logger) {
	if l != nil {
		s.logger = l
	}
}

// SetMetrics sets the metrics sink
func (s *BillingService) SetMetrics(m Metrics) {
	if m != nil {
		s.metrics = m
	}
}

// SetRateDefaults overrides the seeded rate snapshot
func (s *BillingService) SetRateDefaults(fn RateDefaults) {
	if fn != nil {
		s.rates = fn
	}
}

// SetClock overrides the time source, used by tests
func (s *BillingService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// ---------------------------------------------------------------------------
// Calculators
// ---------------------------------------------------------------------------

// ComputeUtilityCharge prices a consumption under the tenant's current rates.
func (s *BillingService) ComputeUtilityCharge(ctx context.Context, tenantID uuid.UUID, req UtilityChargeRequest) (*UtilityChargeResponse, error) {
	settings, _, err := s.currentRates(ctx, s.repos.Rates, tenantID)
	if err != nil {
		return nil, err
	}
	class := billing.CustomerClass(req.CustomerClass)
	if class == "" {
		class = billing.CustomerClassResidential
	}
	charge, err := billing.ComputeUtilityCharge(billing.UtilityType(req.Utility), req.Consumption, settings, class)
	if err != nil {
		return nil, err
	}
	return &UtilityChargeResponse{
		Utility:       req.Utility,
		CustomerClass: string(class),
		Consumption:   req.Consumption,
		Charge:        charge,
		RoundedCharge: valueobject.RoundCurrency(charge),
	}, nil
}

// ComputeDuesCharge prices association dues and parking for the given areas.
func (s *BillingService) ComputeDuesCharge(ctx context.Context, tenantID uuid.UUID, req DuesChargeRequest) (*DuesChargeResponse, error) {
	settings, _, err := s.currentRates(ctx, s.repos.Rates, tenantID)
	if err != nil {
		return nil, err
	}
	dues, err := billing.ComputeDuesCharge(req.Area, settings.DuesRate)
	if err != nil {
		return nil, err
	}
	parkingRate := settings.EffectiveParkingRate()
	parking, err := billing.ComputeParkingCharge(req.ParkingArea, parkingRate)
	if err != nil {
		return nil, err
	}
	return &DuesChargeResponse{
		Area:        req.Area,
		DuesRate:    settings.DuesRate,
		Dues:        dues,
		ParkingArea: req.ParkingArea,
		ParkingRate: parkingRate,
		Parking:     parking,
		Total:       dues.Add(parking),
	}, nil
}

// GetPeriodInfo derives a billing month's dates from the tenant's schedule.
func (s *BillingService) GetPeriodInfo(ctx context.Context, tenantID uuid.UUID, month string) (*PeriodInfoResponse, error) {
	bm, err := billing.ParseBillingMonth(month)
	if err != nil {
		return nil, err
	}
	settings, _, err := s.currentRates(ctx, s.repos.Rates, tenantID)
	if err != nil {
		return nil, err
	}
	period, err := billing.GetBillingPeriodInfo(bm, settings.Schedule)
	if err != nil {
		return nil, err
	}
	resp := ToPeriodInfoResponse(period)
	return &resp, nil
}

// ---------------------------------------------------------------------------
// Rates
// ---------------------------------------------------------------------------

// GetRates returns the tenant's rate snapshot, or the defaults when none was saved.
func (s *BillingService) GetRates(ctx context.Context, tenantID uuid.UUID) (*RateSettingsResponse, error) {
	settings, isDefault, err := s.currentRates(ctx, s.repos.Rates, tenantID)
	if err != nil {
		return nil, err
	}
	resp := ToRateSettingsResponse(settings, isDefault)
	return &resp, nil
}

// UpdateRates validates and replaces the tenant's rate snapshot.
func (s *BillingService) UpdateRates(ctx context.Context, tenantID uuid.UUID, req UpdateRatesRequest) (*RateSettingsResponse, error) {
	var updated *billing.RateSettings
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		settings, _, err := s.currentRates(ctx, repos.Rates(), tenantID)
		if err != nil {
			return err
		}
		if req.Version != nil && *req.Version != settings.Version {
			return shared.NewConcurrencyError("rate settings were changed by someone else, reload and retry", shared.ErrConcurrencyConflict)
		}
		if err := settings.Update(req.toDomain()); err != nil {
			return err
		}
		if err := repos.Rates().Save(ctx, settings); err != nil {
			return err
		}
		updated = settings
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, OpUpdateRates, err)
	}

	s.log(ctx).Info("rate settings updated",
		zap.String("tenant_id", tenantID.String()),
		zap.Int("version", updated.Version),
		zap.String("penalty_rate", updated.PenaltyRate.String()),
	)
	resp := ToRateSettingsResponse(updated, false)
	return &resp, nil
}

// currentRates loads the stored snapshot, falling back to the seeded defaults.
func (s *BillingService) currentRates(ctx context.Context, repo billing.RateSettingsRepository, tenantID uuid.UUID) (*billing.RateSettings, bool, error) {
	settings, err := repo.FindByTenant(ctx, tenantID)
	if err == nil {
		return settings, false, nil
	}
	if shared.IsNotFound(err) {
		return s.rates(tenantID), true, nil
	}
	return nil, false, err
}

// ---------------------------------------------------------------------------
// Units and readings
// ---------------------------------------------------------------------------

// CreateUnit registers a billable unit. A duplicate code is a CONFLICT.
func (s *BillingService) CreateUnit(ctx context.Context, tenantID uuid.UUID, req CreateUnitRequest) (*UnitResponse, error) {
	unit, err := billing.NewUnit(tenantID, req.Code, req.OwnerName, billing.CustomerClass(req.CustomerClass), req.Area, req.ParkingArea)
	if err != nil {
		return nil, err
	}
	if err := s.repos.Units.Save(ctx, unit); err != nil {
		return nil, err
	}
	resp := ToUnitResponse(unit)
	return &resp, nil
}

// GetUnit returns a unit by ID
func (s *BillingService) GetUnit(ctx context.Context, tenantID, unitID uuid.UUID) (*UnitResponse, error) {
	unit, err := s.repos.Units.FindByID(ctx, tenantID, unitID)
	if err != nil {
		return nil, err
	}
	resp := ToUnitResponse(unit)
	return &resp, nil
}

// RecordReading stores a unit's reading for a month, replacing any earlier
// reading of the same utility and month.
func (s *BillingService) RecordReading(ctx context.Context, tenantID, unitID uuid.UUID, req RecordReadingRequest) (*MeterReadingResponse, error) {
	month, err := billing.ParseBillingMonth(req.BillingMonth)
	if err != nil {
		return nil, err
	}
	utility := billing.UtilityType(req.Utility)
	if !utility.IsValid() {
		return nil, shared.NewValidationError("unknown utility %q", req.Utility)
	}

	var reading *billing.MeterReading
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.Units().FindByID(ctx, tenantID, unitID); err != nil {
			return err
		}
		previous, err := s.previousReading(ctx, repos.Readings(), tenantID, unitID, utility, month, req.Previous)
		if err != nil {
			return err
		}
		reading, err = billing.NewMeterReading(tenantID, unitID, utility, month, previous, req.Present)
		if err != nil {
			return err
		}
		return repos.Readings().Save(ctx, reading)
	})
	if err != nil {
		return nil, s.fail(ctx, OpRecordReading, err)
	}
	resp := ToMeterReadingResponse(reading)
	return &resp, nil
}

func (s *BillingService) previousReading(ctx context.Context, repo billing.MeterReadingRepository, tenantID, unitID uuid.UUID, utility billing.UtilityType, month billing.BillingMonth, given *decimal.Decimal) (decimal.Decimal, error) {
	if given != nil {
		return *given, nil
	}
	last, err := repo.FindLatestBefore(ctx, tenantID, unitID, utility, month)
	if err != nil {
		if shared.IsNotFound(err) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return last.Present, nil
}

// optionalReading returns nil when the month has no reading for the utility.
func optionalReading(ctx context.Context, repo billing.MeterReadingRepository, tenantID, unitID uuid.UUID, utility billing.UtilityType, month billing.BillingMonth) (*billing.MeterReading, error) {
	reading, err := repo.FindForMonth(ctx, tenantID, unitID, utility, month)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return reading, nil
}

// ---------------------------------------------------------------------------
// Bills
// ---------------------------------------------------------------------------

// GenerateBill produces a unit's regular bill for a month. It prices the
// month's readings, tops up penalty on the unit's overdue backlog and draws
// the new charges down from the advance balance.
func (s *BillingService) GenerateBill(ctx context.Context, tenantID, unitID uuid.UUID, req GenerateBillRequest) (*GenerateBillResponse, error) {
	month, err := billing.ParseBillingMonth(req.BillingMonth)
	if err != nil {
		return nil, err
	}
	ctx = s.unitContext(ctx, unitID)

	var generated *billing.GeneratedBill
	var advance *billing.AdvanceBalance
	err = s.withUnitLock(ctx, OpGenerateBill, tenantID, unitID, func() error {
		return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
			unit, err := repos.Units().FindByID(ctx, tenantID, unitID)
			if err != nil {
				return err
			}
			if !unit.Active {
				return shared.NewValidationError("unit %s is inactive", unit.Code)
			}
			settings, _, err := s.currentRates(ctx, repos.Rates(), tenantID)
			if err != nil {
				return err
			}
			period, err := billing.GetBillingPeriodInfo(month, settings.Schedule)
			if err != nil {
				return err
			}

			if _, err := repos.Bills().FindByUnitAndMonth(ctx, tenantID, unitID, month, billing.BillTypeRegular); err == nil {
				return shared.NewConflictError("bill for unit %s and %s already exists", unit.Code, month)
			} else if !shared.IsNotFound(err) {
				return err
			}

			electric, err := optionalReading(ctx, repos.Readings(), tenantID, unitID, billing.UtilityElectric, month)
			if err != nil {
				return err
			}
			water, err := optionalReading(ctx, repos.Readings(), tenantID, unitID, billing.UtilityWater, month)
			if err != nil {
				return err
			}
			prior, err := repos.Bills().FindOutstandingForUpdate(ctx, tenantID, unitID)
			if err != nil {
				return err
			}
			advance, err = repos.Advances().FindByUnitForUpdate(ctx, tenantID, unitID)
			if err != nil {
				return err
			}

			generated, err = billing.GenerateBill(billing.GenerationInput{
				Unit:              unit,
				Period:            period,
				Settings:          settings,
				ElectricReading:   electric,
				WaterReading:      water,
				PriorBills:        prior,
				SpecialAssessment: req.SpecialAssessment,
				OtherCharges:      req.OtherCharges,
				Discount:          req.Discount,
				Advance:           advance,
			})
			if err != nil {
				return err
			}
			if err := repos.Bills().Create(ctx, generated.Bill); err != nil {
				return err
			}
			if len(advance.PendingTransactions()) > 0 {
				return repos.Advances().Save(ctx, advance)
			}
			return nil
		})
	})
	if err != nil {
		return nil, s.fail(ctx, OpGenerateBill, err)
	}

	bill := generated.Bill
	s.metrics.RecordBillGenerated(ctx, tenantID, string(bill.BillType))
	s.log(ctx).Info("bill generated",
		zap.String("bill_number", bill.BillNumber),
		zap.String("billing_month", bill.BillingMonth.String()),
		zap.String("total", bill.TotalAmount.String()),
		zap.String("penalty", bill.Components.Penalty.String()),
	)
	return &GenerateBillResponse{
		Bill:           ToBillResponse(bill, s.now()),
		Penalty:        generated.Penalty,
		AdvanceBalance: advance.Amounts(),
	}, nil
}

// CreateOpeningBalance seeds a unit's legacy balance as an OPENING_BALANCE bill.
func (s *BillingService) CreateOpeningBalance(ctx context.Context, tenantID, unitID uuid.UUID, req OpeningBalanceRequest) (*BillResponse, error) {
	month, err := billing.ParseBillingMonth(req.BillingMonth)
	if err != nil {
		return nil, err
	}

	ctx = s.unitContext(ctx, unitID)

	var bill *billing.Bill
	err = s.withUnitLock(ctx, OpOpeningBalance, tenantID, unitID, func() error {
		return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
			if _, err := repos.Units().FindByID(ctx, tenantID, unitID); err != nil {
				return err
			}
			var err error
			bill, err = billing.NewOpeningBalanceBill(tenantID, unitID, month, req.DueDate, billing.Components{
				Electric:          req.Electric,
				Water:             req.Water,
				Dues:              req.Dues,
				Penalty:           req.Penalty,
				SpecialAssessment: req.SpecialAssessment,
				OtherCharges:      req.OtherCharges,
			})
			if err != nil {
				return err
			}
			return repos.Bills().Create(ctx, bill)
		})
	})
	if err != nil {
		return nil, s.fail(ctx, OpOpeningBalance, err)
	}
	s.metrics.RecordBillGenerated(ctx, tenantID, string(bill.BillType))
	resp := ToBillResponse(bill, s.now())
	return &resp, nil
}

// ListBills returns a unit's statement of account. Status OVERDUE selects
// unsettled bills past their due date as of the query's as_of day.
func (s *BillingService) ListBills(ctx context.Context, tenantID, unitID uuid.UUID, q ListBillsQuery) (*BillListResponse, error) {
	asOf, err := s.asOfDate(q.AsOf)
	if err != nil {
		return nil, err
	}
	if _, err := s.repos.Units.FindByID(ctx, tenantID, unitID); err != nil {
		return nil, err
	}

	filter := billing.BillFilter{Filter: shared.Filter{Page: q.Page, PageSize: q.PageSize, OrderDir: q.OrderDir}}
	switch billing.BillStatus(q.Status) {
	case "":
	case billing.BillStatusOverdue:
		cutoff := asOf.Truncate(24 * time.Hour)
		filter.DueBefore = &cutoff
	default:
		status := billing.BillStatus(q.Status)
		if !status.IsValid() {
			return nil, shared.NewValidationError("unknown bill status %q", q.Status)
		}
		filter.Status = &status
	}
	if q.BillType != "" {
		bt := billing.BillType(q.BillType)
		if !bt.IsValid() {
			return nil, shared.NewValidationError("unknown bill type %q", q.BillType)
		}
		filter.BillType = &bt
	}
	if q.FromMonth != "" {
		from, err := billing.ParseBillingMonth(q.FromMonth)
		if err != nil {
			return nil, err
		}
		filter.FromMonth = &from
	}
	if q.ToMonth != "" {
		to, err := billing.ParseBillingMonth(q.ToMonth)
		if err != nil {
			return nil, err
		}
		filter.ToMonth = &to
	}

	bills, err := s.repos.Bills.FindByUnit(ctx, tenantID, unitID, filter)
	if err != nil {
		return nil, err
	}
	resp := &BillListResponse{
		Bills:            make([]BillResponse, 0, len(bills)),
		TotalOutstanding: decimal.Zero,
		AsOf:             asOf,
	}
	for _, b := range bills {
		resp.Bills = append(resp.Bills, ToBillResponse(b, asOf))
		resp.TotalOutstanding = resp.TotalOutstanding.Add(b.Balance)
	}
	return resp, nil
}

// PreviewPenalty computes the compounded penalty on a unit's unsettled bills
// as of a date without persisting anything.
func (s *BillingService) PreviewPenalty(ctx context.Context, tenantID, unitID uuid.UUID, asOfDay string) (*PenaltyPreviewResponse, error) {
	asOf, err := s.asOfDate(asOfDay)
	if err != nil {
		return nil, err
	}
	if _, err := s.repos.Units.FindByID(ctx, tenantID, unitID); err != nil {
		return nil, err
	}
	settings, _, err := s.currentRates(ctx, s.repos.Rates, tenantID)
	if err != nil {
		return nil, err
	}

	inputs := make([]billing.PenaltyInput, 0)
	filter := billing.BillFilter{Filter: shared.Filter{Page: 1, PageSize: 500}}
	for {
		bills, err := s.repos.Bills.FindByUnit(ctx, tenantID, unitID, filter)
		if err != nil {
			return nil, err
		}
		for _, b := range bills {
			if b.IsOutstanding() {
				inputs = append(inputs, b.PenaltyInput())
			}
		}
		if len(bills) < filter.PageSize {
			break
		}
		filter.Page++
	}

	result := billing.CalculatePenalty(inputs, settings.PenaltyRate, asOf)
	return &PenaltyPreviewResponse{
		UnitID:      unitID,
		AsOf:        asOf,
		PenaltyRate: settings.PenaltyRate,
		Total:       result.Total,
		Rounded:     valueobject.RoundCurrency(result.Total),
		Breakdown:   result.Breakdown,
	}, nil
}

// asOfDate parses a YYYY-MM-DD day, defaulting to today.
func (s *BillingService) asOfDate(day string) (time.Time, error) {
	if day == "" {
		return s.now().UTC(), nil
	}
	t, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return time.Time{}, shared.NewValidationError("invalid as_of date %q, expected YYYY-MM-DD", day)
	}
	return t, nil
}

// ---------------------------------------------------------------------------
// Payments
// ---------------------------------------------------------------------------

// PostPayment allocates a payment over the unit's outstanding bills, oldest
// first, and moves what is left into the advance balance. Bills, payment,
// allocations and advance are stored in one transaction.
func (s *BillingService) PostPayment(ctx context.Context, tenantID, unitID uuid.UUID, req PostPaymentRequest) (*PaymentResponse, error) {
	receivedAt := s.now()
	if req.ReceivedAt != nil {
		receivedAt = *req.ReceivedAt
	}
	method := billing.PaymentMethod(req.Method)
	if method == "" {
		method = billing.PaymentMethodCash
	}
	payment, err := billing.NewPayment(tenantID, unitID, req.ReferenceNumber, method, req.PaymentComponents, req.TotalAmount, receivedAt)
	if err != nil {
		return nil, s.fail(ctx, OpPostPayment, err)
	}
	payment.Remark = req.Remark
	ctx = s.unitContext(ctx, unitID)

	var result *billing.AllocationResult
	var advance *billing.AdvanceBalance
	err = s.withUnitLock(ctx, OpPostPayment, tenantID, unitID, func() error {
		return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
			if _, err := repos.Units().FindByID(ctx, tenantID, unitID); err != nil {
				return err
			}
			exists, err := repos.Payments().ExistsByReference(ctx, tenantID, unitID, payment.ReferenceNumber)
			if err != nil {
				return err
			}
			if exists {
				return shared.NewConflictError("payment reference %s already posted for this unit", payment.ReferenceNumber)
			}

			bills, err := repos.Bills().FindOutstandingForUpdate(ctx, tenantID, unitID)
			if err != nil {
				return err
			}
			result, err = billing.AllocatePayment(unitID, payment, bills)
			if err != nil {
				return err
			}

			for _, b := range result.UpdatedBills {
				if err := repos.Bills().SaveWithLock(ctx, b); err != nil {
					return err
				}
			}
			if err := repos.Payments().Create(ctx, payment); err != nil {
				return err
			}
			if err := repos.Payments().CreateBillPayments(ctx, result.BillPayments); err != nil {
				return err
			}

			advance, err = repos.Advances().FindByUnitForUpdate(ctx, tenantID, unitID)
			if err != nil {
				return err
			}
			if err := advance.ApplyDelta(result.AdvanceDelta, billing.AdvanceSourcePayment, payment.ID); err != nil {
				return err
			}
			if len(advance.PendingTransactions()) > 0 {
				return repos.Advances().Save(ctx, advance)
			}
			return nil
		})
	})
	if err != nil {
		return nil, s.fail(ctx, OpPostPayment, err)
	}

	s.metrics.RecordPaymentPosted(ctx, tenantID, string(payment.Method), payment.TotalAmount)
	s.metrics.RecordAdvanceOverflow(ctx, tenantID, string(billing.AdvanceBucketDues), result.Overflow.Dues)
	s.metrics.RecordAdvanceOverflow(ctx, tenantID, string(billing.AdvanceBucketUtilities), result.Overflow.Utilities)
	s.log(ctx).Info("payment posted",
		zap.String("reference", payment.ReferenceNumber),
		zap.String("total", payment.TotalAmount.String()),
		zap.Int("bills_touched", len(result.UpdatedBills)),
		zap.String("advance_dues", result.AdvanceDelta.Dues.String()),
		zap.String("advance_utilities", result.AdvanceDelta.Utilities.String()),
	)

	resp := ToPaymentResponse(payment, result.BillPayments, result.AdvanceDelta, advance.Amounts())
	return &resp, nil
}

// VoidPayment reverses a posted payment: its allocations come off the bills
// and whatever it put into the advance balance is taken back out. When that
// advance has already been drawn down the void is refused.
func (s *BillingService) VoidPayment(ctx context.Context, tenantID, paymentID uuid.UUID, req VoidPaymentRequest) (*PaymentResponse, error) {
	// The unit is needed for the lock before the transaction starts.
	found, err := s.repos.Payments.FindByID(ctx, tenantID, paymentID)
	if err != nil {
		return nil, err
	}
	unitID := found.UnitID
	ctx = s.unitContext(ctx, unitID)

	var payment *billing.Payment
	var allocations []billing.BillPayment
	var taken billing.AdvanceAmounts
	var advance *billing.AdvanceBalance
	err = s.withUnitLock(ctx, OpVoidPayment, tenantID, unitID, func() error {
		return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
			var err error
			payment, err = repos.Payments().FindByIDForUpdate(ctx, tenantID, paymentID)
			if err != nil {
				return err
			}
			if err := payment.Void(req.Reason, s.now()); err != nil {
				return err
			}

			allocations, err = repos.Payments().FindBillPayments(ctx, tenantID, payment.ID)
			if err != nil {
				return err
			}
			ids := make([]uuid.UUID, 0, len(allocations))
			for _, bp := range allocations {
				ids = append(ids, bp.BillID)
			}
			bills, err := repos.Bills().FindByIDsForUpdate(ctx, tenantID, ids)
			if err != nil {
				return err
			}
			reversed, err := billing.ReversePayment(payment, allocations, bills)
			if err != nil {
				return err
			}
			for _, b := range reversed {
				if err := repos.Bills().SaveWithLock(ctx, b); err != nil {
					return err
				}
			}
			if err := repos.Payments().SaveWithLock(ctx, payment); err != nil {
				return err
			}

			taken = creditedAdvance(payment, allocations)
			advance, err = repos.Advances().FindByUnitForUpdate(ctx, tenantID, unitID)
			if err != nil {
				return err
			}
			if err := advance.Debit(billing.AdvanceBucketDues, taken.Dues, billing.AdvanceSourcePaymentVoid, payment.ID); err != nil {
				return err
			}
			if err := advance.Debit(billing.AdvanceBucketUtilities, taken.Utilities, billing.AdvanceSourcePaymentVoid, payment.ID); err != nil {
				return err
			}
			if len(advance.PendingTransactions()) > 0 {
				return repos.Advances().Save(ctx, advance)
			}
			return nil
		})
	})
	if err != nil {
		return nil, s.fail(ctx, OpVoidPayment, err)
	}

	s.metrics.RecordPaymentVoided(ctx, tenantID)
	s.log(ctx).Info("payment voided",
		zap.String("reference", payment.ReferenceNumber),
		zap.String("reason", payment.VoidReason),
		zap.Int("bills_touched", len(allocations)),
	)
	resp := ToPaymentResponse(payment, allocations, taken, advance.Amounts())
	return &resp, nil
}

// creditedAdvance rebuilds what a payment put into the advance balance from
// its components and its allocations, routed the same way allocation does.
func creditedAdvance(payment *billing.Payment, allocations []billing.BillPayment) billing.AdvanceAmounts {
	applied := billing.CategoryAmounts{}
	for _, bp := range allocations {
		applied = applied.Add(bp.Amounts)
	}
	left := payment.Components.Allocatable().Sub(applied)
	overflow := billing.AdvanceAmounts{
		Utilities: left.Electric.Add(left.Water),
		Dues:      left.Dues.Add(left.Penalty).Add(left.SpecialAssessment),
	}
	return overflow.Add(payment.Components.ExplicitAdvance())
}

// ---------------------------------------------------------------------------
// Advance balance
// ---------------------------------------------------------------------------

// GetAdvanceBalance returns the unit's advance buckets and its latest ledger entries.
func (s *BillingService) GetAdvanceBalance(ctx context.Context, tenantID, unitID uuid.UUID, limit int) (*AdvanceBalanceResponse, error) {
	if _, err := s.repos.Units.FindByID(ctx, tenantID, unitID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLedgerLimit
	}
	balance, err := s.repos.Advances.FindByUnit(ctx, tenantID, unitID)
	if err != nil {
		return nil, err
	}
	ledger, err := s.repos.Advances.FindTransactions(ctx, tenantID, unitID, limit)
	if err != nil {
		return nil, err
	}
	resp := ToAdvanceBalanceResponse(balance, ledger)
	return &resp, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// log returns the request logger when the caller attached one, else the service logger.
func (s *BillingService) log(ctx context.Context) *zap.Logger {
	return logger.FromContextOr(ctx, s.logger)
}

// unitContext tags the context logger, and through it the SQL log, with the unit.
func (s *BillingService) unitContext(ctx context.Context, unitID uuid.UUID) context.Context {
	ctx = logger.WithContext(ctx, s.log(ctx))
	return logger.WithUnitID(ctx, unitID.String())
}

// withUnitLock runs fn while holding the unit lock.
func (s *BillingService) withUnitLock(ctx context.Context, operation string, tenantID, unitID uuid.UUID, fn func() error) error {
	start := time.Now()
	release, err := s.locker.Acquire(ctx, tenantID, unitID)
	s.metrics.RecordLockWait(ctx, operation, time.Since(start), err == nil)
	if err != nil {
		return err
	}
	defer func() {
		// Release even when the request context is already cancelled.
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.log(ctx).Warn("failed to release unit lock",
				zap.String("operation", operation),
				zap.Error(err),
			)
		}
	}()
	return fn()
}

// fail counts the error and logs unexpected ones before returning it.
func (s *BillingService) fail(ctx context.Context, operation string, err error) error {
	code := shared.ErrorCode(err)
	if code == "" {
		code = "INTERNAL"
	}
	s.metrics.RecordOperationError(ctx, operation, code)

	log := s.log(ctx)
	var de *shared.DomainError
	switch {
	case errors.As(err, &de) && de.Code == shared.CodeConsistency:
		log.Error("billing data inconsistent", zap.String("operation", operation), zap.Error(err))
	case code == "INTERNAL":
		log.Error("billing operation failed", zap.String("operation", operation), zap.Error(err))
	default:
		log.Debug("billing operation rejected", zap.String("operation", operation), zap.String("code", code), zap.Error(err))
	}
	return err
}

type noopMetrics struct{}

func (noopMetrics) RecordPaymentPosted(context.Context, uuid.UUID, string, decimal.Decimal) {}
func (noopMetrics) RecordPaymentVoided(context.Context, uuid.UUID) {}
func (noopMetrics) RecordAdvanceOverflow(context.Context, uuid.UUID, string, decimal.Decimal) {}
func (noopMetrics) RecordBillGenerated(context.Context, uuid.UUID, string) {}
func (noopMetrics) RecordLockWait(context.Context, string, time.Duration, bool) {}
func (noopMetrics) RecordOperationError(context.Context, string, string) {}
