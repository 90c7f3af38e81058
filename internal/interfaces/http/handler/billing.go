package handler

import (
	"context"
	"strconv"

	billingapp "github.com/doorscomputers/megatower-sub002/internal/application/billing"
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/doorscomputers/megatower-sub002/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BillingService is the application surface the billing handler drives
type BillingService interface {
	ComputeUtilityCharge(ctx context.Context, tenantID uuid.UUID, req billingapp.UtilityChargeRequest) (*billingapp.UtilityChargeResponse, error)
	ComputeDuesCharge(ctx context.Context, tenantID uuid.UUID, req billingapp.DuesChargeRequest) (*billingapp.DuesChargeResponse, error)
	GetPeriodInfo(ctx context.Context, tenantID uuid.UUID, month string) (*billingapp.PeriodInfoResponse, error)
	GetRates(ctx context.Context, tenantID uuid.UUID) (*billingapp.RateSettingsResponse, error)
	UpdateRates(ctx context.Context, tenantID uuid.UUID, req billingapp.UpdateRatesRequest) (*billingapp.RateSettingsResponse, error)
	CreateUnit(ctx context.Context, tenantID uuid.UUID, req billingapp.CreateUnitRequest) (*billingapp.UnitResponse, error)
	GetUnit(ctx context.Context, tenantID, unitID uuid.UUID) (*billingapp.UnitResponse, error)
	RecordReading(ctx context.Context, tenantID, unitID uuid.UUID, req billingapp.RecordReadingRequest) (*billingapp.MeterReadingResponse, error)
	GenerateBill(ctx context.Context, tenantID, unitID uuid.UUID, req billingapp.GenerateBillRequest) (*billingapp.GenerateBillResponse, error)
	CreateOpeningBalance(ctx context.Context, tenantID, unitID uuid.UUID, req billingapp.OpeningBalanceRequest) (*billingapp.BillResponse, error)
	ListBills(ctx context.Context, tenantID, unitID uuid.UUID, q billingapp.ListBillsQuery) (*billingapp.BillListResponse, error)
	PreviewPenalty(ctx context.Context, tenantID, unitID uuid.UUID, asOfDay string) (*billingapp.PenaltyPreviewResponse, error)
	PostPayment(ctx context.Context, tenantID, unitID uuid.UUID, req billingapp.PostPaymentRequest) (*billingapp.PaymentResponse, error)
	VoidPayment(ctx context.Context, tenantID, paymentID uuid.UUID, req billingapp.VoidPaymentRequest) (*billingapp.PaymentResponse, error)
	GetAdvanceBalance(ctx context.Context, tenantID, unitID uuid.UUID, limit int) (*billingapp.AdvanceBalanceResponse, error)
}

// defaultLedgerLimit is how many advance ledger entries the balance endpoint returns
const defaultLedgerLimit = 20

// BillingHandler handles the billing API endpoints
type BillingHandler struct {
	BaseHandler
	svc BillingService
}

// NewBillingHandler creates a new BillingHandler
func NewBillingHandler(svc BillingService) *BillingHandler {
	return &BillingHandler{svc: svc}
}

// RegisterRoutes mounts the billing endpoints on rg
func (h *BillingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/periods/:month", h.GetPeriodInfo)
	rg.POST("/charges/utility", h.ComputeUtilityCharge)
	rg.POST("/charges/dues", h.ComputeDuesCharge)
	rg.GET("/rates", h.GetRates)
	rg.PUT("/rates", h.UpdateRates)

	rg.POST("/units", h.CreateUnit)
	units := rg.Group("/units/:unit_id")
	units.GET("", h.GetUnit)
	units.POST("/readings", h.RecordReading)
	units.POST("/bills", h.GenerateBill)
	units.GET("/bills", h.ListBills)
	units.POST("/opening-balance", h.CreateOpeningBalance)
	units.GET("/penalty", h.PreviewPenalty)
	units.POST("/payments", h.PostPayment)
	units.GET("/advance-balance", h.GetAdvanceBalance)

	rg.POST("/payments/:payment_id/void", h.VoidPayment)
}

// GetPeriodInfo godoc
// @ID           getPeriodInfo
// @Summary      Get billing period dates
// @Description  Returns the reading window, generation, statement, due and penalty start dates of a billing month
// @Tags         billing-periods
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID" format(uuid)
// @Param        month path string true "Billing month (YYYY-MM)" example(2025-03)
// @Success      200 {object} dto.Response{data=billingapp.PeriodInfoResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /billing/periods/{month} [get]
func (h *BillingHandler) GetPeriodInfo(c *gin.Context) {
	resp, err := h.svc.GetPeriodInfo(c.Request.Context(), middleware.GetTenantID(c), c.Param("month"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ComputeUtilityCharge godoc
// @ID           computeUtilityCharge
// @Summary      Price a utility consumption
// @Description  Computes the electric or water charge for a consumption with the tenant's current rates. Nothing is stored
// @Tags         billing-charges
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID" format(uuid)
// @Param        request body billingapp.UtilityChargeRequest true "Utility charge request"
// @Success      200 {object} dto.Response{data=billingapp.UtilityChargeResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /billing/charges/utility [post]
func (h *BillingHandler) ComputeUtilityCharge(c *gin.Context) {
	var req billingapp.UtilityChargeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.ComputeUtilityCharge(c.Request.Context(), middleware.GetTenantID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ComputeDuesCharge godoc
// @ID           computeDuesCharge
// @Summary      Price association dues
// @Description  Computes dues and parking for a floor area with the tenant's current rates. Nothing is stored
// @Tags         billing-charges
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID" format(uuid)
// @Param        request body billingapp.DuesChargeRequest true "Dues charge request"
// @Success      200 {object} dto.Response{data=billingapp.DuesChargeResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /billing/charges/dues [post]
func (h *BillingHandler) ComputeDuesCharge(c *gin.Context) {
	var req billingapp.DuesChargeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.ComputeDuesCharge(c.Request.Context(), middleware.GetTenantID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetRates godoc
// @ID           getRates
// @Summary      Get rate settings
// @Description  Returns the tenant's current rate snapshot, or the seeded defaults when none was saved
// @Tags         billing-rates
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID" format(uuid)
// @Success      200 {object} dto.Response{data=billingapp.RateSettingsResponse}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /billing/rates [get]
func (h *BillingHandler) GetRates(c *gin.Context) {
	resp, err := h.svc.GetRates(c.Request.Context(), middleware.GetTenantID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateRates godoc
// @ID           updateRates
// @Summary      Replace rate settings
// @Description  Validates and stores a new rate snapshot. Send the current version to guard against concurrent edits
// @Tags         billing-rates
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID" format(uuid)
// @Param        request body billingapp.UpdateRatesRequest true "Rate settings"
// @Success      200 {object} dto.Response{data=billingapp.RateSettingsResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /billing/rates [put]
func (h *BillingHandler) UpdateRates(c *gin.Context) {
	var req billingapp.UpdateRatesRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.UpdateRates(c.Request.Context(), middleware.GetTenantID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateUnit godoc
// @ID           createUnit
// @Summary      Create a unit
// @Description  Registers a condo unit with its floor and parking area
// @Tags         billing-units
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID" format(uuid)
// @Param        request body billingapp.CreateUnitRequest true "Unit creation request"
// @Success      201 {object} dto.Response{data=billingapp.UnitResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /billing/units [post]
func (h *BillingHandler) CreateUnit(c *gin.Context) {
	var req billingapp.CreateUnitRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.CreateUnit(c.Request.Context(), middleware.GetTenantID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetUnit godoc
// @ID           getUnit
// @Summary      Get a unit
// @Description  Returns a unit by ID
// @Tags         billing-units
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID" format(uuid)
// @Param        unit_id path string true "Unit ID" format(uuid)
// @Success      200 {object} dto.Response{data=billingapp.UnitResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /billing/units/{unit_id} [get]
func (h *BillingHandler) GetUnit(c *gin.Context) {
	unitID, ok := h.uuidParam(c, "unit_id")
	if !ok {
		return
	}
	resp, err := h.svc.GetUnit(c.Request.Context(), middleware.GetTenantID(c), unitID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RecordReading godoc
// @ID           recordReading
// @Summary      Record a meter reading
// @Description  Stores the electric or water reading of a unit for a billing month. The previous reading defaults to the prior month's present reading
// @Tags         billing-readings
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID" format(uuid)
// @Param        unit_id path string true "Unit ID" format(uuid)
// @Param        request body billingapp.RecordReadingRequest true "Meter reading"
// @Success      201 {object} dto.Response{data=billingapp.MeterReadingResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /billing/units/{unit_id}/readings [post]
func (h *BillingHandler) RecordReading(c *gin.Context) {
	unitID, ok := h.uuidParam(c, "unit_id")
	if !ok {
		return
	}
	var req billingapp.RecordReadingRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.RecordReading(c.Request.Context(), middleware.GetTenantID(c), unitID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GenerateBill godoc
// @ID           generateBill
// @Summary      Generate a monthly bill
// @Description  Generates the unit's regular bill for a month from its readings and the current rates, adds penalty on the overdue backlog and draws on the advance balance
// @Tags         billing-bills
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID" format(uuid)
// @Param        unit_id path string true "Unit ID" format(uuid)
// @Param        request body billingapp.GenerateBillRequest true "Bill generation request"
// @Success      201 {object} dto.Response{data=billingapp.GenerateBillResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /billing/units/{unit_id}/bills [post]
func (h *BillingHandler) GenerateBill(c *gin.Context) {
	unitID, ok := h.uuidParam(c, "unit_id")
	if !ok {
		return
	}
	var req billingapp.GenerateBillRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.GenerateBill(c.Request.Context(), middleware.GetTenantID(c), unitID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// CreateOpeningBalance godoc
// @ID           createOpeningBalance
// @Summary      Seed an opening balance
// @Description  Records a unit's balance carried over from before the system as an opening balance bill
// @Tags         billing-bills
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID" format(uuid)
// @Param        unit_id path string true "Unit ID" format(uuid)
// @Param        request body billingapp.OpeningBalanceRequest true "Opening balance"
// @Success      201 {object} dto.Response{data=billingapp.BillResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /billing/units/{unit_id}/opening-balance [post]
func (h *BillingHandler) CreateOpeningBalance(c *gin.Context) {
	unitID, ok := h.uuidParam(c, "unit_id")
	if !ok {
		return
	}
	var req billingapp.OpeningBalanceRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.CreateOpeningBalance(c.Request.Context(), middleware.GetTenantID(c), unitID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListBills godoc
// @ID           listBills
// @Summary      List a unit's bills
// @Description  Returns the unit's statement of account, oldest billing month first
// @Tags         billing-bills
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID" format(uuid)
// @Param        unit_id path string true "Unit ID" format(uuid)
// @Param        status query string false "Status" Enums(UNPAID, PARTIAL, PAID, OVERDUE)
// @Param        bill_type query string false "Bill type" Enums(REGULAR, OPENING_BALANCE)
// @Param        from_month query string false "First billing month (YYYY-MM)"
// @Param        to_month query string false "Last billing month (YYYY-MM)"
// @Param        as_of query string false "Date the effective status is assessed on, defaults to today" format(date)
// @Param        order_dir query string false "Sort direction" Enums(asc, desc) default(asc)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(50) maximum(500)
// @Success      200 {object} dto.Response{data=billingapp.BillListResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /billing/units/{unit_id}/bills [get]
func (h *BillingHandler) ListBills(c *gin.Context) {
	unitID, ok := h.uuidParam(c, "unit_id")
	if !ok {
		return
	}
	var q billingapp.ListBillsQuery
	if !h.bindQuery(c, &q) {
		return
	}
	resp, err := h.svc.ListBills(c.Request.Context(), middleware.GetTenantID(c), unitID, q)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page := shared.Filter{Page: q.Page, PageSize: q.PageSize}.Normalized()
	h.SuccessWithMeta(c, resp, page.Page, page.PageSize)
}

// PreviewPenalty godoc
// @ID           previewPenalty
// @Summary      Preview penalty
// @Description  Computes the compounded penalty on the unit's overdue bills as of a date without billing it
// @Tags         billing-penalty
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID" format(uuid)
// @Param        unit_id path string true "Unit ID" format(uuid)
// @Param        as_of query string false "Assessment date, defaults to today" format(date)
// @Success      200 {object} dto.Response{data=billingapp.PenaltyPreviewResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /billing/units/{unit_id}/penalty [get]
func (h *BillingHandler) PreviewPenalty(c *gin.Context) {
	unitID, ok := h.uuidParam(c, "unit_id")
	if !ok {
		return
	}
	resp, err := h.svc.PreviewPenalty(c.Request.Context(), middleware.GetTenantID(c), unitID, c.Query("as_of"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// PostPayment godoc
// @ID           postPayment
// @Summary      Post a payment
// @Description  Allocates a payment across the unit's outstanding bills oldest first, per category. Overflow is credited to the advance balance. A reference number can only be posted once per unit
// @Tags         billing-payments
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID" format(uuid)
// @Param        unit_id path string true "Unit ID" format(uuid)
// @Param        request body billingapp.PostPaymentRequest true "Payment"
// @Success      201 {object} dto.Response{data=billingapp.PaymentResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /billing/units/{unit_id}/payments [post]
func (h *BillingHandler) PostPayment(c *gin.Context) {
	unitID, ok := h.uuidParam(c, "unit_id")
	if !ok {
		return
	}
	var req billingapp.PostPaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.PostPayment(c.Request.Context(), middleware.GetTenantID(c), unitID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// VoidPayment godoc
// @ID           voidPayment
// @Summary      Void a payment
// @Description  Reverses every allocation of a posted payment and takes back the advance credit it created
// @Tags         billing-payments
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID" format(uuid)
// @Param        payment_id path string true "Payment ID" format(uuid)
// @Param        request body billingapp.VoidPaymentRequest true "Void reason"
// @Success      200 {object} dto.Response{data=billingapp.PaymentResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /billing/payments/{payment_id}/void [post]
func (h *BillingHandler) VoidPayment(c *gin.Context) {
	paymentID, ok := h.uuidParam(c, "payment_id")
	if !ok {
		return
	}
	var req billingapp.VoidPaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.svc.VoidPayment(c.Request.Context(), middleware.GetTenantID(c), paymentID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetAdvanceBalance godoc
// @ID           getAdvanceBalance
// @Summary      Get advance balance
// @Description  Returns the unit's advance dues and utilities balances with the latest ledger entries
// @Tags         billing-advance
// @Produce      json
// @Param        X-Tenant-ID header string true "Tenant ID" format(uuid)
// @Param        unit_id path string true "Unit ID" format(uuid)
// @Param        limit query int false "Ledger entries to return" default(20)
// @Success      200 {object} dto.Response{data=billingapp.AdvanceBalanceResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /billing/units/{unit_id}/advance-balance [get]
func (h *BillingHandler) GetAdvanceBalance(c *gin.Context) {
	unitID, ok := h.uuidParam(c, "unit_id")
	if !ok {
		return
	}
	limit := defaultLedgerLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			h.HandleError(c, shared.NewValidationError("limit must be a positive integer"))
			return
		}
		limit = n
	}
	resp, err := h.svc.GetAdvanceBalance(c.Request.Context(), middleware.GetTenantID(c), unitID, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
