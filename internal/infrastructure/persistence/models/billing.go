package models

import (
	"fmt"
	"time"

	"github.com/doorscomputers/megatower-sub002/internal/domain/billing"
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitModel is the persistence model for the Unit aggregate root.
type UnitModel struct {
	BaseModel
	TenantID      uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_unit_tenant_code,priority:1"`
	Version       int                   `gorm:"not null;default:1"`
	Code          string                `gorm:"type:varchar(30);not null;uniqueIndex:idx_unit_tenant_code,priority:2"`
	OwnerName     string                `gorm:"type:varchar(200);not null"`
	CustomerClass billing.CustomerClass `gorm:"type:varchar(20);not null"`
	Area          decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	ParkingArea   decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	Active        bool                  `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (UnitModel) TableName() string {
	return "units"
}

// ToDomain converts the persistence model to a domain Unit.
func (m *UnitModel) ToDomain() *billing.Unit {
	return &billing.Unit{
		TenantAggregateRoot: shared.TenantAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{BaseEntity: m.BaseModel.ToDomain(), Version: m.Version},
			TenantID:          m.TenantID,
		},
		Code:          m.Code,
		OwnerName:     m.OwnerName,
		CustomerClass: m.CustomerClass,
		Area:          m.Area,
		ParkingArea:   m.ParkingArea,
		Active:        m.Active,
	}
}

// UnitModelFromDomain creates a persistence model from a domain Unit.
func UnitModelFromDomain(u *billing.Unit) *UnitModel {
	m := &UnitModel{
		TenantID:      u.TenantID,
		Version:       u.Version,
		Code:          u.Code,
		OwnerName:     u.OwnerName,
		CustomerClass: u.CustomerClass,
		Area:          u.Area,
		ParkingArea:   u.ParkingArea,
		Active:        u.Active,
	}
	m.FromDomainBaseEntity(u.BaseEntity)
	return m
}

// WaterScheduleColumns flattens a water schedule into columns.
type WaterScheduleColumns struct {
	Tier1Max  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Tier2Max  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Tier3Max  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Tier4Max  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Tier5Max  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Tier6Max  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Tier1Fee  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Tier2Fee  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Tier3Fee  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Tier4Rate decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Tier5Rate decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Tier6Rate decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Tier7Rate decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

func waterColumnsFromDomain(w billing.WaterSchedule) WaterScheduleColumns {
	return WaterScheduleColumns(w)
}

func (c WaterScheduleColumns) toDomain() billing.WaterSchedule {
	return billing.WaterSchedule(c)
}

// RateSettingsModel is the persistence model for a tenant's rate snapshot.
type RateSettingsModel struct {
	BaseModel
	TenantID              uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex"`
	Version               int                  `gorm:"not null;default:1"`
	ElectricRate          decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	ElectricMinimumCharge decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	DuesRate              decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	ParkingRate           decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	PenaltyRate           decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	ResidentialWater      WaterScheduleColumns `gorm:"embedded;embeddedPrefix:res_water_"`
	CommercialWater       WaterScheduleColumns `gorm:"embedded;embeddedPrefix:com_water_"`
	ReadingDay            int                  `gorm:"not null"`
	BillingDay            int                  `gorm:"not null"`
	StatementDelayDays    int                  `gorm:"not null"`
	DueDateDelayDays      int                  `gorm:"not null"`
	GracePeriodDays       int                  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (RateSettingsModel) TableName() string {
	return "rate_settings"
}

// ToDomain converts the persistence model to domain RateSettings.
func (m *RateSettingsModel) ToDomain() *billing.RateSettings {
	return &billing.RateSettings{
		TenantAggregateRoot: shared.TenantAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{BaseEntity: m.BaseModel.ToDomain(), Version: m.Version},
			TenantID:          m.TenantID,
		},
		ElectricRate:          m.ElectricRate,
		ElectricMinimumCharge: m.ElectricMinimumCharge,
		DuesRate:              m.DuesRate,
		ParkingRate:           m.ParkingRate,
		PenaltyRate:           m.PenaltyRate,
		ResidentialWater:      m.ResidentialWater.toDomain(),
		CommercialWater:       m.CommercialWater.toDomain(),
		Schedule: billing.ScheduleSettings{
			ReadingDay:         m.ReadingDay,
			BillingDay:         m.BillingDay,
			StatementDelayDays: m.StatementDelayDays,
			DueDateDelayDays:   m.DueDateDelayDays,
			GracePeriodDays:    m.GracePeriodDays,
		},
	}
}

// RateSettingsModelFromDomain creates a persistence model from domain RateSettings.
func RateSettingsModelFromDomain(r *billing.RateSettings) *RateSettingsModel {
	m := &RateSettingsModel{
		TenantID:              r.TenantID,
		Version:               r.Version,
		ElectricRate:          r.ElectricRate,
		ElectricMinimumCharge: r.ElectricMinimumCharge,
		DuesRate:              r.DuesRate,
		ParkingRate:           r.ParkingRate,
		PenaltyRate:           r.PenaltyRate,
		ResidentialWater:      waterColumnsFromDomain(r.ResidentialWater),
		CommercialWater:       waterColumnsFromDomain(r.CommercialWater),
		ReadingDay:            r.Schedule.ReadingDay,
		BillingDay:            r.Schedule.BillingDay,
		StatementDelayDays:    r.Schedule.StatementDelayDays,
		DueDateDelayDays:      r.Schedule.DueDateDelayDays,
		GracePeriodDays:       r.Schedule.GracePeriodDays,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}

// MeterReadingModel is the persistence model for a monthly meter reading.
type MeterReadingModel struct {
	TenantAggregateModel
	UnitID          uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_reading_unit_utility_month,priority:1"`
	Utility         billing.UtilityType `gorm:"type:varchar(20);not null;uniqueIndex:idx_reading_unit_utility_month,priority:2"`
	BillingMonth    string              `gorm:"type:varchar(7);not null;uniqueIndex:idx_reading_unit_utility_month,priority:3"`
	PreviousReading decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	PresentReading  decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
	Consumption     decimal.Decimal     `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (MeterReadingModel) TableName() string {
	return "meter_readings"
}

// ToDomain converts the persistence model to a domain MeterReading.
func (m *MeterReadingModel) ToDomain() (*billing.MeterReading, error) {
	month, err := parseMonthColumn(m.BillingMonth)
	if err != nil {
		return nil, err
	}
	return &billing.MeterReading{
		TenantAggregateRoot: m.TenantAggregateRoot(),
		UnitID:              m.UnitID,
		Utility:             m.Utility,
		BillingMonth:        month,
		Previous:            m.PreviousReading,
		Present:             m.PresentReading,
	}, nil
}

// MeterReadingModelFromDomain creates a persistence model from a domain MeterReading.
func MeterReadingModelFromDomain(r *billing.MeterReading) *MeterReadingModel {
	m := &MeterReadingModel{
		UnitID:          r.UnitID,
		Utility:         r.Utility,
		BillingMonth:    r.BillingMonth.String(),
		PreviousReading: r.Previous,
		PresentReading:  r.Present,
		Consumption:     r.Consumption(),
	}
	m.FromDomainTenantAggregateRoot(r.TenantAggregateRoot)
	return m
}

// BillModel is the persistence model for the Bill aggregate root.
// Component, credit and paid amounts are stored as one column each.
type BillModel struct {
	TenantAggregateModel
	UnitID       uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_bill_unit_month_type,priority:1"`
	BillNumber   string           `gorm:"type:varchar(40);not null;index"`
	BillType     billing.BillType `gorm:"type:varchar(20);not null;uniqueIndex:idx_bill_unit_month_type,priority:3"`
	BillingMonth string           `gorm:"type:varchar(7);not null;uniqueIndex:idx_bill_unit_month_type,priority:2"`

	ElectricAmount          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	WaterAmount             decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	DuesAmount              decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ParkingAmount           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SpecialAssessmentAmount decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PenaltyAmount           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	OtherCharges            decimal.Decimal `gorm:"type:decimal(18,4);not null"`

	Discount                decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	AdvanceDuesApplied      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	AdvanceUtilitiesApplied decimal.Decimal `gorm:"type:decimal(18,4);not null"`

	PaidElectric          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaidWater             decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaidDues              decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaidPenalty           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PaidSpecialAssessment decimal.Decimal `gorm:"type:decimal(18,4);not null"`

	TotalAmount   decimal.Decimal    `gorm:"type:decimal(18,4);not null"`
	PaidAmount    decimal.Decimal    `gorm:"type:decimal(18,4);not null"`
	Balance       decimal.Decimal    `gorm:"type:decimal(18,4);not null"`
	Status        billing.BillStatus `gorm:"type:varchar(20);not null;default:'UNPAID';index"`
	StatementDate time.Time          `gorm:"not null"`
	DueDate       time.Time          `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (BillModel) TableName() string {
	return "bills"
}

// ToDomain converts the persistence model to a domain Bill.
func (m *BillModel) ToDomain() (*billing.Bill, error) {
	month, err := parseMonthColumn(m.BillingMonth)
	if err != nil {
		return nil, err
	}
	return &billing.Bill{
		TenantAggregateRoot: m.TenantAggregateRoot(),
		UnitID:              m.UnitID,
		BillNumber:          m.BillNumber,
		BillType:            m.BillType,
		BillingMonth:        month,
		Components: billing.Components{
			Electric:          m.ElectricAmount,
			Water:             m.WaterAmount,
			Dues:              m.DuesAmount,
			Parking:           m.ParkingAmount,
			SpecialAssessment: m.SpecialAssessmentAmount,
			Penalty:           m.PenaltyAmount,
			OtherCharges:      m.OtherCharges,
		},
		Credits: billing.Credits{
			Discount:                m.Discount,
			AdvanceDuesApplied:      m.AdvanceDuesApplied,
			AdvanceUtilitiesApplied: m.AdvanceUtilitiesApplied,
		},
		Paid: billing.CategoryAmounts{
			Electric:          m.PaidElectric,
			Water:             m.PaidWater,
			Dues:              m.PaidDues,
			Penalty:           m.PaidPenalty,
			SpecialAssessment: m.PaidSpecialAssessment,
		},
		TotalAmount:   m.TotalAmount,
		PaidAmount:    m.PaidAmount,
		Balance:       m.Balance,
		Status:        m.Status,
		StatementDate: m.StatementDate.UTC(),
		DueDate:       m.DueDate.UTC(),
	}, nil
}

// BillModelFromDomain creates a persistence model from a domain Bill.
func BillModelFromDomain(b *billing.Bill) *BillModel {
	m := &BillModel{
		UnitID:                  b.UnitID,
		BillNumber:              b.BillNumber,
		BillType:                b.BillType,
		BillingMonth:            b.BillingMonth.String(),
		ElectricAmount:          b.Components.Electric,
		WaterAmount:             b.Components.Water,
		DuesAmount:              b.Components.Dues,
		ParkingAmount:           b.Components.Parking,
		SpecialAssessmentAmount: b.Components.SpecialAssessment,
		PenaltyAmount:           b.Components.Penalty,
		OtherCharges:            b.Components.OtherCharges,
		Discount:                b.Credits.Discount,
		AdvanceDuesApplied:      b.Credits.AdvanceDuesApplied,
		AdvanceUtilitiesApplied: b.Credits.AdvanceUtilitiesApplied,
		PaidElectric:            b.Paid.Electric,
		PaidWater:               b.Paid.Water,
		PaidDues:                b.Paid.Dues,
		PaidPenalty:             b.Paid.Penalty,
		PaidSpecialAssessment:   b.Paid.SpecialAssessment,
		TotalAmount:             b.TotalAmount,
		PaidAmount:              b.PaidAmount,
		Balance:                 b.Balance,
		Status:                  b.Status,
		StatementDate:           b.StatementDate,
		DueDate:                 b.DueDate,
	}
	m.FromDomainTenantAggregateRoot(b.TenantAggregateRoot)
	return m
}

// PaymentModel is the persistence model for the Payment aggregate root.
type PaymentModel struct {
	TenantAggregateModel
	UnitID          uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex:idx_payment_unit_reference,priority:1"`
	ReferenceNumber string                `gorm:"type:varchar(64);not null;uniqueIndex:idx_payment_unit_reference,priority:2"`
	Method          billing.PaymentMethod `gorm:"type:varchar(20);not null"`

	ElectricAmount          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	WaterAmount             decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	DuesAmount              decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PenaltyAmount           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SpecialAssessmentAmount decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	AdvanceDuesAmount       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	AdvanceUtilitiesAmount  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	OtherAdvanceAmount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`

	TotalAmount decimal.Decimal       `gorm:"type:decimal(18,4);not null"`
	ReceivedAt  time.Time             `gorm:"not null;index"`
	Status      billing.PaymentStatus `gorm:"type:varchar(20);not null;default:'POSTED'"`
	VoidedAt    *time.Time
	VoidReason  string `gorm:"type:varchar(500)"`
	Remark      string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment.
func (m *PaymentModel) ToDomain() *billing.Payment {
	p := &billing.Payment{
		TenantAggregateRoot: m.TenantAggregateRoot(),
		UnitID:              m.UnitID,
		ReferenceNumber:     m.ReferenceNumber,
		Method:              m.Method,
		Components: billing.PaymentComponents{
			Electric:          m.ElectricAmount,
			Water:             m.WaterAmount,
			Dues:              m.DuesAmount,
			Penalty:           m.PenaltyAmount,
			SpecialAssessment: m.SpecialAssessmentAmount,
			AdvanceDues:       m.AdvanceDuesAmount,
			AdvanceUtilities:  m.AdvanceUtilitiesAmount,
			OtherAdvance:      m.OtherAdvanceAmount,
		},
		TotalAmount: m.TotalAmount,
		ReceivedAt:  m.ReceivedAt.UTC(),
		Status:      m.Status,
		VoidReason:  m.VoidReason,
		Remark:      m.Remark,
	}
	if m.VoidedAt != nil {
		at := m.VoidedAt.UTC()
		p.VoidedAt = &at
	}
	return p
}

// PaymentModelFromDomain creates a persistence model from a domain Payment.
func PaymentModelFromDomain(p *billing.Payment) *PaymentModel {
	m := &PaymentModel{
		UnitID:                  p.UnitID,
		ReferenceNumber:         p.ReferenceNumber,
		Method:                  p.Method,
		ElectricAmount:          p.Components.Electric,
		WaterAmount:             p.Components.Water,
		DuesAmount:              p.Components.Dues,
		PenaltyAmount:           p.Components.Penalty,
		SpecialAssessmentAmount: p.Components.SpecialAssessment,
		AdvanceDuesAmount:       p.Components.AdvanceDues,
		AdvanceUtilitiesAmount:  p.Components.AdvanceUtilities,
		OtherAdvanceAmount:      p.Components.OtherAdvance,
		TotalAmount:             p.TotalAmount,
		ReceivedAt:              p.ReceivedAt,
		Status:                  p.Status,
		VoidedAt:                p.VoidedAt,
		VoidReason:              p.VoidReason,
		Remark:                  p.Remark,
	}
	m.FromDomainTenantAggregateRoot(p.TenantAggregateRoot)
	return m
}

// BillPaymentModel is an immutable allocation row linking a payment to a bill.
type BillPaymentModel struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primary_key"`
	TenantID                uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentID               uuid.UUID       `gorm:"type:uuid;not null;index"`
	BillID                  uuid.UUID       `gorm:"type:uuid;not null;index"`
	UnitID                  uuid.UUID       `gorm:"type:uuid;not null"`
	ElectricAmount          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	WaterAmount             decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	DuesAmount              decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PenaltyAmount           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SpecialAssessmentAmount decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalAmount             decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt               time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (BillPaymentModel) TableName() string {
	return "bill_payments"
}

// ToDomain converts the persistence model to a domain BillPayment.
func (m *BillPaymentModel) ToDomain() billing.BillPayment {
	return billing.BillPayment{
		ID:        m.ID,
		TenantID:  m.TenantID,
		PaymentID: m.PaymentID,
		BillID:    m.BillID,
		UnitID:    m.UnitID,
		Amounts: billing.CategoryAmounts{
			Electric:          m.ElectricAmount,
			Water:             m.WaterAmount,
			Dues:              m.DuesAmount,
			Penalty:           m.PenaltyAmount,
			SpecialAssessment: m.SpecialAssessmentAmount,
		},
		Total:     m.TotalAmount,
		CreatedAt: m.CreatedAt.UTC(),
	}
}

// BillPaymentModelFromDomain creates a persistence model from a domain BillPayment.
func BillPaymentModelFromDomain(bp billing.BillPayment) *BillPaymentModel {
	return &BillPaymentModel{
		ID:                      bp.ID,
		TenantID:                bp.TenantID,
		PaymentID:               bp.PaymentID,
		BillID:                  bp.BillID,
		UnitID:                  bp.UnitID,
		ElectricAmount:          bp.Amounts.Electric,
		WaterAmount:             bp.Amounts.Water,
		DuesAmount:              bp.Amounts.Dues,
		PenaltyAmount:           bp.Amounts.Penalty,
		SpecialAssessmentAmount: bp.Amounts.SpecialAssessment,
		TotalAmount:             bp.Total,
		CreatedAt:               bp.CreatedAt,
	}
}

// AdvanceBalanceModel is the persistence model for a unit's advance balance.
type AdvanceBalanceModel struct {
	TenantAggregateModel
	UnitID           uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	DuesBalance      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UtilitiesBalance decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (AdvanceBalanceModel) TableName() string {
	return "advance_balances"
}

// ToDomain converts the persistence model to a domain AdvanceBalance.
func (m *AdvanceBalanceModel) ToDomain() *billing.AdvanceBalance {
	return &billing.AdvanceBalance{
		TenantAggregateRoot: m.TenantAggregateRoot(),
		UnitID:              m.UnitID,
		Dues:                m.DuesBalance,
		Utilities:           m.UtilitiesBalance,
	}
}

// AdvanceBalanceModelFromDomain creates a persistence model from a domain AdvanceBalance.
func AdvanceBalanceModelFromDomain(a *billing.AdvanceBalance) *AdvanceBalanceModel {
	m := &AdvanceBalanceModel{
		UnitID:           a.UnitID,
		DuesBalance:      a.Dues,
		UtilitiesBalance: a.Utilities,
	}
	m.FromDomainTenantAggregateRoot(a.TenantAggregateRoot)
	return m
}

// AdvanceTransactionModel is an append-only advance ledger row.
type AdvanceTransactionModel struct {
	BaseModel
	TenantID        uuid.UUID                      `gorm:"type:uuid;not null;index"`
	UnitID          uuid.UUID                      `gorm:"type:uuid;not null;index"`
	Bucket          billing.AdvanceBucket          `gorm:"type:varchar(20);not null"`
	TransactionType billing.AdvanceTransactionType `gorm:"type:varchar(10);not null"`
	Amount          decimal.Decimal                `gorm:"type:decimal(18,4);not null"`
	BalanceBefore   decimal.Decimal                `gorm:"type:decimal(18,4);not null"`
	BalanceAfter    decimal.Decimal                `gorm:"type:decimal(18,4);not null"`
	SourceType      billing.AdvanceSourceType      `gorm:"type:varchar(20);not null"`
	SourceID        uuid.UUID                      `gorm:"type:uuid;not null;index"`
	TransactionDate time.Time                      `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (AdvanceTransactionModel) TableName() string {
	return "advance_transactions"
}

// ToDomain converts the persistence model to a domain AdvanceTransaction.
func (m *AdvanceTransactionModel) ToDomain() billing.AdvanceTransaction {
	return billing.AdvanceTransaction{
		BaseEntity:      m.BaseModel.ToDomain(),
		TenantID:        m.TenantID,
		UnitID:          m.UnitID,
		Bucket:          m.Bucket,
		TransactionType: m.TransactionType,
		Amount:          m.Amount,
		BalanceBefore:   m.BalanceBefore,
		BalanceAfter:    m.BalanceAfter,
		SourceType:      m.SourceType,
		SourceID:        m.SourceID,
		TransactionDate: m.TransactionDate.UTC(),
	}
}

// AdvanceTransactionModelFromDomain creates a persistence model from a ledger entry.
func AdvanceTransactionModelFromDomain(t billing.AdvanceTransaction) *AdvanceTransactionModel {
	m := &AdvanceTransactionModel{
		TenantID:        t.TenantID,
		UnitID:          t.UnitID,
		Bucket:          t.Bucket,
		TransactionType: t.TransactionType,
		Amount:          t.Amount,
		BalanceBefore:   t.BalanceBefore,
		BalanceAfter:    t.BalanceAfter,
		SourceType:      t.SourceType,
		SourceID:        t.SourceID,
		TransactionDate: t.TransactionDate,
	}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}

// AllModels lists every billing model, in dependency order, for AutoMigrate in tests.
func AllModels() []any {
	return []any{
		&UnitModel{},
		&RateSettingsModel{},
		&MeterReadingModel{},
		&BillModel{},
		&PaymentModel{},
		&BillPaymentModel{},
		&AdvanceBalanceModel{},
		&AdvanceTransactionModel{},
	}
}

func parseMonthColumn(s string) (billing.BillingMonth, error) {
	month, err := billing.ParseBillingMonth(s)
	if err != nil {
		return billing.BillingMonth{}, fmt.Errorf("corrupt billing_month column %q: %w", s, err)
	}
	return month, nil
}
