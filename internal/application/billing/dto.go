package billing

import (
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UtilityChargeRequest asks for the charge of a consumption under the tenant's rates
type UtilityChargeRequest struct {
	Utility       string          `json:"utility" binding:"required,oneof=ELECTRIC WATER"`
	Consumption   decimal.Decimal `json:"consumption"`
	CustomerClass string          `json:"customer_class" binding:"omitempty,oneof=RESIDENTIAL COMMERCIAL"`
}

// UtilityChargeResponse carries the unrounded charge and its currency rounding
type UtilityChargeResponse struct {
	Utility       string          `json:"utility"`
	CustomerClass string          `json:"customer_class"`
	Consumption   decimal.Decimal `json:"consumption"`
	Charge        decimal.Decimal `json:"charge"`
	RoundedCharge decimal.Decimal `json:"rounded_charge"`
}

// DuesChargeRequest asks for dues and parking of the given areas
type DuesChargeRequest struct {
	Area        decimal.Decimal `json:"area"`
	ParkingArea decimal.Decimal `json:"parking_area"`
}

// DuesChargeResponse represents association dues and parking for an area
type DuesChargeResponse struct {
	Area        decimal.Decimal `json:"area"`
	DuesRate    decimal.Decimal `json:"dues_rate"`
	Dues        decimal.Decimal `json:"dues"`
	ParkingArea decimal.Decimal `json:"parking_area"`
	ParkingRate decimal.Decimal `json:"parking_rate"`
	Parking     decimal.Decimal `json:"parking"`
	Total       decimal.Decimal `json:"total"`
}

// PeriodInfoResponse represents the key dates of a billing month
type PeriodInfoResponse struct {
	BillingMonth     string    `json:"billing_month"`
	Display          string    `json:"display"`
	ReadingStart     time.Time `json:"reading_start"`
	ReadingEnd       time.Time `json:"reading_end"`
	GenerationDate   time.Time `json:"generation_date"`
	StatementDate    time.Time `json:"statement_date"`
	DueDate          time.Time `json:"due_date"`
	PenaltyStartDate time.Time `json:"penalty_start_date"`
}

// ToPeriodInfoResponse converts domain PeriodInfo to the response DTO
func ToPeriodInfoResponse(p billing.PeriodInfo) PeriodInfoResponse {
	return PeriodInfoResponse{
		BillingMonth:     p.BillingMonth.String(),
		Display:          p.BillingMonth.Display(),
		ReadingStart:     p.ReadingStart,
		ReadingEnd:       p.ReadingEnd,
		GenerationDate:   p.GenerationDate,
		StatementDate:    p.StatementDate,
		DueDate:          p.DueDate,
		PenaltyStartDate: p.PenaltyStartDate,
	}
}

// RateSettingsResponse represents the tenant's current rate snapshot
type RateSettingsResponse struct {
	TenantID              uuid.UUID                `json:"tenant_id"`
	ElectricRate          decimal.Decimal          `json:"electric_rate"`
	ElectricMinimumCharge decimal.Decimal          `json:"electric_minimum_charge"`
	DuesRate              decimal.Decimal          `json:"dues_rate"`
	ParkingRate           decimal.Decimal          `json:"parking_rate"`
	PenaltyRate           decimal.Decimal          `json:"penalty_rate"`
	ResidentialWater      billing.WaterSchedule    `json:"residential_water"`
	CommercialWater       billing.WaterSchedule    `json:"commercial_water"`
	Schedule              billing.ScheduleSettings `json:"schedule"`
	Version               int                      `json:"version"`
	// IsDefault is true when the tenant has never saved its own rates
	IsDefault bool      `json:"is_default"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToRateSettingsResponse converts domain RateSettings to the response DTO
func ToRateSettingsResponse(r *billing.RateSettings, isDefault bool) RateSettingsResponse {
	return RateSettingsResponse{
		TenantID:              r.TenantID,
		ElectricRate:          r.ElectricRate,
		ElectricMinimumCharge: r.ElectricMinimumCharge,
		DuesRate:              r.DuesRate,
		ParkingRate:           r.ParkingRate,
		PenaltyRate:           r.PenaltyRate,
		ResidentialWater:      r.ResidentialWater,
		CommercialWater:       r.CommercialWater,
		Schedule:              r.Schedule,
		Version:               r.Version,
		IsDefault:             isDefault,
		UpdatedAt:             r.UpdatedAt,
	}
}

// UpdateRatesRequest replaces the whole rate snapshot
type UpdateRatesRequest struct {
	ElectricRate          decimal.Decimal          `json:"electric_rate"`
	ElectricMinimumCharge decimal.Decimal          `json:"electric_minimum_charge"`
	DuesRate              decimal.Decimal          `json:"dues_rate"`
	ParkingRate           decimal.Decimal          `json:"parking_rate"`
	PenaltyRate           decimal.Decimal          `json:"penalty_rate"`
	ResidentialWater      billing.WaterSchedule    `json:"residential_water"`
	CommercialWater       billing.WaterSchedule    `json:"commercial_water"`
	Schedule              billing.ScheduleSettings `json:"schedule"`
	// Version, when set, must match the stored snapshot
	Version *int `json:"version"`
}

func (r UpdateRatesRequest) toDomain() billing.RateSettings {
	return billing.RateSettings{
		ElectricRate:          r.ElectricRate,
		ElectricMinimumCharge: r.ElectricMinimumCharge,
		DuesRate:              r.DuesRate,
		ParkingRate:           r.ParkingRate,
		PenaltyRate:           r.PenaltyRate,
		ResidentialWater:      r.ResidentialWater,
		CommercialWater:       r.CommercialWater,
		Schedule:              r.Schedule,
	}
}

// CreateUnitRequest registers a billable unit
type CreateUnitRequest struct {
	Code          string          `json:"code" binding:"required,max=30"`
	OwnerName     string          `json:"owner_name" binding:"max=200"`
	CustomerClass string          `json:"customer_class" binding:"required,oneof=RESIDENTIAL COMMERCIAL"`
	Area          decimal.Decimal `json:"area"`
	ParkingArea   decimal.Decimal `json:"parking_area"`
}

// UnitResponse represents a unit in API responses
type UnitResponse struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	OwnerName     string          `json:"owner_name"`
	CustomerClass string          `json:"customer_class"`
	Area          decimal.Decimal `json:"area"`
	ParkingArea   decimal.Decimal `json:"parking_area"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToUnitResponse converts a domain Unit to the response DTO
func ToUnitResponse(u *billing.Unit) UnitResponse {
	return UnitResponse{
		ID:            u.ID,
		Code:          u.Code,
		OwnerName:     u.OwnerName,
		CustomerClass: string(u.CustomerClass),
		Area:          u.Area,
		ParkingArea:   u.ParkingArea,
		Active:        u.Active,
		CreatedAt:     u.CreatedAt,
	}
}

// RecordReadingRequest stores a meter reading. When Previous is omitted the
// present value of the latest earlier reading is used, or zero for a new meter.
type RecordReadingRequest struct {
	Utility      string           `json:"utility" binding:"required,oneof=ELECTRIC WATER"`
	BillingMonth string           `json:"billing_month" binding:"required,billing_month"`
	Previous     *decimal.Decimal `json:"previous"`
	Present      decimal.Decimal  `json:"present"`
}

// MeterReadingResponse represents a stored reading
type MeterReadingResponse struct {
	ID           uuid.UUID       `json:"id"`
	UnitID       uuid.UUID       `json:"unit_id"`
	Utility      string          `json:"utility"`
	BillingMonth string          `json:"billing_month"`
	Previous     decimal.Decimal `json:"previous"`
	Present      decimal.Decimal `json:"present"`
	Consumption  decimal.Decimal `json:"consumption"`
}

// ToMeterReadingResponse converts a domain MeterReading to the response DTO
func ToMeterReadingResponse(r *billing.MeterReading) MeterReadingResponse {
	return MeterReadingResponse{
		ID:           r.ID,
		UnitID:       r.UnitID,
		Utility:      string(r.Utility),
		BillingMonth: r.BillingMonth.String(),
		Previous:     r.Previous,
		Present:      r.Present,
		Consumption:  r.Consumption(),
	}
}

// GenerateBillRequest generates the regular bill of a month
type GenerateBillRequest struct {
	BillingMonth      string          `json:"billing_month" binding:"required,billing_month"`
	SpecialAssessment decimal.Decimal `json:"special_assessment"`
	OtherCharges      decimal.Decimal `json:"other_charges"`
	Discount          decimal.Decimal `json:"discount"`
}

// OpeningBalanceRequest seeds a legacy balance carried over from a previous system
type OpeningBalanceRequest struct {
	BillingMonth      string          `json:"billing_month" binding:"required,billing_month"`
	DueDate           time.Time       `json:"due_date" binding:"required"`
	Electric          decimal.Decimal `json:"electric"`
	Water             decimal.Decimal `json:"water"`
	Dues              decimal.Decimal `json:"dues"`
	Penalty           decimal.Decimal `json:"penalty"`
	SpecialAssessment decimal.Decimal `json:"special_assessment"`
	OtherCharges      decimal.Decimal `json:"other_charges"`
}

// BillResponse represents a bill in API responses
type BillResponse struct {
	ID            uuid.UUID               `json:"id"`
	UnitID        uuid.UUID               `json:"unit_id"`
	BillNumber    string                  `json:"bill_number"`
	BillType      string                  `json:"bill_type"`
	BillingMonth  string                  `json:"billing_month"`
	Components    billing.Components      `json:"components"`
	Credits       billing.Credits         `json:"credits"`
	Paid          billing.CategoryAmounts `json:"paid"`
	Outstanding   billing.CategoryAmounts `json:"outstanding"`
	TotalAmount   decimal.Decimal         `json:"total_amount"`
	PaidAmount    decimal.Decimal         `json:"paid_amount"`
	Balance       decimal.Decimal         `json:"balance"`
	Status        string                  `json:"status"`
	StatementDate time.Time               `json:"statement_date"`
	DueDate       time.Time               `json:"due_date"`
	Version       int                     `json:"version"`
	CreatedAt     time.Time               `json:"created_at"`
}

// ToBillResponse converts a domain Bill to the response DTO. Status is the
// effective status as of asOf, so unsettled bills past due read OVERDUE.
func ToBillResponse(b *billing.Bill, asOf time.Time) BillResponse {
	return BillResponse{
		ID:            b.ID,
		UnitID:        b.UnitID,
		BillNumber:    b.BillNumber,
		BillType:      string(b.BillType),
		BillingMonth:  b.BillingMonth.String(),
		Components:    b.Components,
		Credits:       b.Credits,
		Paid:          b.Paid,
		Outstanding:   b.OutstandingByCategory(),
		TotalAmount:   b.TotalAmount,
		PaidAmount:    b.PaidAmount,
		Balance:       b.Balance,
		Status:        string(b.EffectiveStatus(asOf)),
		StatementDate: b.StatementDate,
		DueDate:       b.DueDate,
		Version:       b.Version,
		CreatedAt:     b.CreatedAt,
	}
}

// GenerateBillResponse is a generated bill with the penalty detail behind its penalty line
type GenerateBillResponse struct {
	Bill    BillResponse          `json:"bill"`
	Penalty billing.PenaltyResult `json:"penalty"`
	// AdvanceBalance is what is left in the advance buckets after the draw-down
	AdvanceBalance billing.AdvanceAmounts `json:"advance_balance"`
}

// ListBillsQuery filters a unit's statement of account
type ListBillsQuery struct {
	Status    string `form:"status" binding:"omitempty,oneof=UNPAID PARTIAL PAID OVERDUE"`
	BillType  string `form:"bill_type" binding:"omitempty,oneof=REGULAR OPENING_BALANCE"`
	FromMonth string `form:"from_month" binding:"omitempty,billing_month"`
	ToMonth   string `form:"to_month" binding:"omitempty,billing_month"`
	AsOf      string `form:"as_of" binding:"omitempty,datetime=2006-01-02"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=500"`
	OrderDir  string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// BillListResponse is a page of bills with unit-level totals
type BillListResponse struct {
	Bills            []BillResponse  `json:"bills"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	AsOf             time.Time       `json:"as_of"`
}

// PenaltyPreviewResponse is the penalty a unit would owe as of a date
type PenaltyPreviewResponse struct {
	UnitID      uuid.UUID             `json:"unit_id"`
	AsOf        time.Time             `json:"as_of"`
	PenaltyRate decimal.Decimal       `json:"penalty_rate"`
	Total       decimal.Decimal       `json:"total"`
	Rounded     decimal.Decimal       `json:"rounded"`
	Breakdown   []billing.PenaltyLine `json:"breakdown"`
}

// PostPaymentRequest posts a payment split into its fixed components
type PostPaymentRequest struct {
	ReferenceNumber string `json:"reference_number" binding:"required,max=64"`
	Method          string `json:"method" binding:"omitempty,oneof=CASH CHECK BANK_TRANSFER ONLINE"`
	billing.PaymentComponents
	TotalAmount decimal.Decimal `json:"total_amount"`
	ReceivedAt  *time.Time      `json:"received_at"`
	Remark      string          `json:"remark" binding:"max=500"`
}

// BillPaymentResponse is the part of a payment applied to one bill
type BillPaymentResponse struct {
	ID      uuid.UUID               `json:"id"`
	BillID  uuid.UUID               `json:"bill_id"`
	Amounts billing.CategoryAmounts `json:"amounts"`
	Total   decimal.Decimal         `json:"total"`
}

// ToBillPaymentResponses converts allocations to response DTOs
func ToBillPaymentResponses(allocations []billing.BillPayment) []BillPaymentResponse {
	out := make([]BillPaymentResponse, 0, len(allocations))
	for _, bp := range allocations {
		out = append(out, BillPaymentResponse{
			ID:      bp.ID,
			BillID:  bp.BillID,
			Amounts: bp.Amounts,
			Total:   bp.Total,
		})
	}
	return out
}

// PaymentResponse represents a posted or voided payment
type PaymentResponse struct {
	ID              uuid.UUID                 `json:"id"`
	UnitID          uuid.UUID                 `json:"unit_id"`
	ReferenceNumber string                    `json:"reference_number"`
	Method          string                    `json:"method"`
	Components      billing.PaymentComponents `json:"components"`
	TotalAmount     decimal.Decimal           `json:"total_amount"`
	ReceivedAt      time.Time                 `json:"received_at"`
	Status          string                    `json:"status"`
	VoidedAt        *time.Time                `json:"voided_at,omitempty"`
	VoidReason      string                    `json:"void_reason,omitempty"`
	Remark          string                    `json:"remark,omitempty"`
	Allocations     []BillPaymentResponse     `json:"allocations"`
	// AdvanceDelta is what the payment moved into (or, on void, out of) the advance buckets
	AdvanceDelta   billing.AdvanceAmounts `json:"advance_delta"`
	AdvanceBalance billing.AdvanceAmounts `json:"advance_balance"`
}

// ToPaymentResponse converts a domain Payment to the response DTO
func ToPaymentResponse(p *billing.Payment, allocations []billing.BillPayment, delta, balance billing.AdvanceAmounts) PaymentResponse {
	return PaymentResponse{
		ID:              p.ID,
		UnitID:          p.UnitID,
		ReferenceNumber: p.ReferenceNumber,
		Method:          string(p.Method),
		Components:      p.Components,
		TotalAmount:     p.TotalAmount,
		ReceivedAt:      p.ReceivedAt,
		Status:          string(p.Status),
		VoidedAt:        p.VoidedAt,
		VoidReason:      p.VoidReason,
		Remark:          p.Remark,
		Allocations:     ToBillPaymentResponses(allocations),
		AdvanceDelta:    delta,
		AdvanceBalance:  balance,
	}
}

// VoidPaymentRequest voids a posted payment
type VoidPaymentRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// AdvanceTransactionResponse is one advance ledger entry
type AdvanceTransactionResponse struct {
	ID              uuid.UUID       `json:"id"`
	Bucket          string          `json:"bucket"`
	TransactionType string          `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
	BalanceBefore   decimal.Decimal `json:"balance_before"`
	BalanceAfter    decimal.Decimal `json:"balance_after"`
	SourceType      string          `json:"source_type"`
	SourceID        uuid.UUID       `json:"source_id"`
	TransactionDate time.Time       `json:"transaction_date"`
}

// AdvanceBalanceResponse is a unit's advance balance with its latest ledger entries
type AdvanceBalanceResponse struct {
	UnitID       uuid.UUID                    `json:"unit_id"`
	Dues         decimal.Decimal              `json:"dues"`
	Utilities    decimal.Decimal              `json:"utilities"`
	Total        decimal.Decimal              `json:"total"`
	Version      int                          `json:"version"`
	Transactions []AdvanceTransactionResponse `json:"transactions"`
}

// ToAdvanceBalanceResponse converts a domain AdvanceBalance and its ledger to the response DTO
func ToAdvanceBalanceResponse(a *billing.AdvanceBalance, ledger []billing.AdvanceTransaction) AdvanceBalanceResponse {
	txs := make([]AdvanceTransactionResponse, 0, len(ledger))
	for _, t := range ledger {
		txs = append(txs, AdvanceTransactionResponse{
			ID:              t.ID,
			Bucket:          string(t.Bucket),
			TransactionType: string(t.TransactionType),
			Amount:          t.Amount,
			BalanceBefore:   t.BalanceBefore,
			BalanceAfter:    t.BalanceAfter,
			SourceType:      string(t.SourceType),
			SourceID:        t.SourceID,
			TransactionDate: t.TransactionDate,
		})
	}
	return AdvanceBalanceResponse{
		UnitID:       a.UnitID,
		Dues:         a.Dues,
		Utilities:    a.Utilities,
		Total:        a.Amounts().Total(),
		Version:      a.Version,
		Transactions: txs,
	}
}
