package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	billingapp "github.com/doorscomputers/megatower-sub002/internal/application/billing"
	"github.com/doorscomputers/megatower-sub002/internal/domain/billing"
	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/doorscomputers/megatower-sub002/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBillingService implements BillingService for testing
type MockBillingService struct {
	mock.Mock
}

func mockResult[T any](args mock.Arguments) (*T, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockBillingService) ComputeUtilityCharge(ctx context.Context, tenantID uuid.UUID, req billingapp.UtilityChargeRequest) (*billingapp.UtilityChargeResponse, error) {
	return mockResult[billingapp.UtilityChargeResponse](m.Called(ctx, tenantID, req))
}

func (m *MockBillingService) ComputeDuesCharge(ctx context.Context, tenantID uuid.UUID, req billingapp.DuesChargeRequest) (*billingapp.DuesChargeResponse, error) {
	return mockResult[billingapp.DuesChargeResponse](m.Called(ctx, tenantID, req))
}

func (m *MockBillingService) GetPeriodInfo(ctx context.Context, tenantID uuid.UUID, month string) (*billingapp.PeriodInfoResponse, error) {
	return mockResult[billingapp.PeriodInfoResponse](m.Called(ctx, tenantID, month))
}

func (m *MockBillingService) GetRates(ctx context.Context, tenantID uuid.UUID) (*billingapp.RateSettingsResponse, error) {
	return mockResult[billingapp.RateSettingsResponse](m.Called(ctx, tenantID))
}

func (m *MockBillingService) UpdateRates(ctx context.Context, tenantID uuid.UUID, req billingapp.UpdateRatesRequest) (*billingapp.RateSettingsResponse, error) {
	return mockResult[billingapp.RateSettingsResponse](m.Called(ctx, tenantID, req))
}

func (m *MockBillingService) CreateUnit(ctx context.Context, tenantID uuid.UUID, req billingapp.CreateUnitRequest) (*billingapp.UnitResponse, error) {
	return mockResult[billingapp.UnitResponse](m.Called(ctx, tenantID, req))
}

func (m *MockBillingService) GetUnit(ctx context.Context, tenantID, unitID uuid.UUID) (*billingapp.UnitResponse, error) {
	return mockResult[billingapp.UnitResponse](m.Called(ctx, tenantID, unitID))
}

func (m *MockBillingService) RecordReading(ctx context.Context, tenantID, unitID uuid.UUID, req billingapp.RecordReadingRequest) (*billingapp.MeterReadingResponse, error) {
	return mockResult[billingapp.MeterReadingResponse](m.Called(ctx, tenantID, unitID, req))
}

func (m *MockBillingService) GenerateBill(ctx context.Context, tenantID, unitID uuid.UUID, req billingapp.GenerateBillRequest) (*billingapp.GenerateBillResponse, error) {
	return mockResult[billingapp.GenerateBillResponse](m.Called(ctx, tenantID, unitID, req))
}

func (m *MockBillingService) CreateOpeningBalance(ctx context.Context, tenantID, unitID uuid.UUID, req billingapp.OpeningBalanceRequest) (*billingapp.BillResponse, error) {
	return mockResult[billingapp.BillResponse](m.Called(ctx, tenantID, unitID, req))
}

func (m *MockBillingService) ListBills(ctx context.Context, tenantID, unitID uuid.UUID, q billingapp.ListBillsQuery) (*billingapp.BillListResponse, error) {
	return mockResult[billingapp.BillListResponse](m.Called(ctx, tenantID, unitID, q))
}

func (m *MockBillingService) PreviewPenalty(ctx context.Context, tenantID, unitID uuid.UUID, asOfDay string) (*billingapp.PenaltyPreviewResponse, error) {
	return mockResult[billingapp.PenaltyPreviewResponse](m.Called(ctx, tenantID, unitID, asOfDay))
}

func (m *MockBillingService) PostPayment(ctx context.Context, tenantID, unitID uuid.UUID, req billingapp.PostPaymentRequest) (*billingapp.PaymentResponse, error) {
	return mockResult[billingapp.PaymentResponse](m.Called(ctx, tenantID, unitID, req))
}

func (m *MockBillingService) VoidPayment(ctx context.Context, tenantID, paymentID uuid.UUID, req billingapp.VoidPaymentRequest) (*billingapp.PaymentResponse, error) {
	return mockResult[billingapp.PaymentResponse](m.Called(ctx, tenantID, paymentID, req))
}

func (m *MockBillingService) GetAdvanceBalance(ctx context.Context, tenantID, unitID uuid.UUID, limit int) (*billingapp.AdvanceBalanceResponse, error) {
	return mockResult[billingapp.AdvanceBalanceResponse](m.Called(ctx, tenantID, unitID, limit))
}

type billingHarness struct {
	svc      *MockBillingService
	router   *gin.Engine
	tenantID uuid.UUID
}

func newBillingHarness(t *testing.T) *billingHarness {
	t.Helper()

	svc := new(MockBillingService)
	t.Cleanup(func() { svc.AssertExpectations(t) })

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Tenant(middleware.DefaultTenantConfig()))
	NewBillingHandler(svc).RegisterRoutes(router.Group("/api/v1/billing"))

	return &billingHarness{svc: svc, router: router, tenantID: uuid.New()}
}

func (h *billingHarness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, "/api/v1/billing"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.TenantHeaderKey, h.tenantID.String())
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBillingHandler_GetPeriodInfo(t *testing.T) {
	h := newBillingHarness(t)
	due := time.Date(2025, 2, 9, 0, 0, 0, 0, time.UTC)
	h.svc.On("GetPeriodInfo", mock.Anything, h.tenantID, "2025-01").
		Return(&billingapp.PeriodInfoResponse{BillingMonth: "2025-01", DueDate: due}, nil)

	w := h.do(t, http.MethodGet, "/periods/2025-01", nil)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]any)
	assert.Equal(t, "2025-01", data["billing_month"])
	assert.Equal(t, "2025-02-09T00:00:00Z", data["due_date"])
}

func TestBillingHandler_GetPeriodInfo_Invalid(t *testing.T) {
	h := newBillingHarness(t)
	h.svc.On("GetPeriodInfo", mock.Anything, h.tenantID, "2025-1").
		Return(nil, shared.NewValidationError("invalid billing month %q", "2025-1"))

	w := h.do(t, http.MethodGet, "/periods/2025-1", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, shared.CodeValidation, decodeResponse(t, w).Error.Code)
}

func TestBillingHandler_ComputeUtilityCharge(t *testing.T) {
	h := newBillingHarness(t)
	h.svc.On("ComputeUtilityCharge", mock.Anything, h.tenantID, mock.MatchedBy(func(req billingapp.UtilityChargeRequest) bool {
		return req.Utility == "WATER" && req.Consumption.Equal(dec("15")) && req.CustomerClass == "RESIDENTIAL"
	})).Return(&billingapp.UtilityChargeResponse{Utility: "WATER", Charge: dec("370"), RoundedCharge: dec("370")}, nil)

	w := h.do(t, http.MethodPost, "/charges/utility", `{"utility":"WATER","consumption":"15","customer_class":"RESIDENTIAL"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "370", decodeResponse(t, w).Data.(map[string]any)["charge"])
}

func TestBillingHandler_ComputeUtilityCharge_BadUtility(t *testing.T) {
	h := newBillingHarness(t)

	w := h.do(t, http.MethodPost, "/charges/utility", `{"utility":"GAS","consumption":"15"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, shared.CodeValidation, resp.Error.Code)
	require.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "utility", resp.Error.Details[0].Field)
	h.svc.AssertNotCalled(t, "ComputeUtilityCharge", mock.Anything, mock.Anything, mock.Anything)
}

func TestBillingHandler_ComputeDuesCharge(t *testing.T) {
	h := newBillingHarness(t)
	h.svc.On("ComputeDuesCharge", mock.Anything, h.tenantID, mock.MatchedBy(func(req billingapp.DuesChargeRequest) bool {
		return req.Area.Equal(dec("40")) && req.ParkingArea.Equal(dec("12.5"))
	})).
		Return(&billingapp.DuesChargeResponse{Total: dec("3150")}, nil)

	w := h.do(t, http.MethodPost, "/charges/dues", billingapp.DuesChargeRequest{Area: dec("40"), ParkingArea: dec("12.5")})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3150", decodeResponse(t, w).Data.(map[string]any)["total"])
}

func TestBillingHandler_Rates(t *testing.T) {
	h := newBillingHarness(t)
	h.svc.On("GetRates", mock.Anything, h.tenantID).
		Return(&billingapp.RateSettingsResponse{TenantID: h.tenantID, Version: 1, IsDefault: true}, nil)
	h.svc.On("UpdateRates", mock.Anything, h.tenantID, mock.MatchedBy(func(req billingapp.UpdateRatesRequest) bool {
		return req.Version != nil && *req.Version == 1 && req.DuesRate.Equal(dec("70"))
	})).Return(nil, shared.NewConcurrencyError("rate settings changed since version 1", nil))

	w := h.do(t, http.MethodGet, "/rates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeResponse(t, w).Data.(map[string]any)["is_default"])

	w = h.do(t, http.MethodPut, "/rates", `{"dues_rate":"70","version":1}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, shared.CodeConcurrency, decodeResponse(t, w).Error.Code)
}

func TestBillingHandler_Units(t *testing.T) {
	h := newBillingHarness(t)
	unitID := uuid.New()
	h.svc.On("CreateUnit", mock.Anything, h.tenantID, mock.MatchedBy(func(req billingapp.CreateUnitRequest) bool {
		return req.Code == "A-101" && req.Area.Equal(dec("40"))
	})).Return(&billingapp.UnitResponse{ID: unitID, Code: "A-101"}, nil)
	h.svc.On("GetUnit", mock.Anything, h.tenantID, unitID).
		Return(&billingapp.UnitResponse{ID: unitID, Code: "A-101"}, nil)

	w := h.do(t, http.MethodPost, "/units", `{"code":"A-101","customer_class":"RESIDENTIAL","area":"40"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, unitID.String(), decodeResponse(t, w).Data.(map[string]any)["id"])

	w = h.do(t, http.MethodGet, "/units/"+unitID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = h.do(t, http.MethodGet, "/units/A-101", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBillingHandler_GetUnit_NotFound(t *testing.T) {
	h := newBillingHarness(t)
	unitID := uuid.New()
	h.svc.On("GetUnit", mock.Anything, h.tenantID, unitID).Return(nil, shared.NewNotFoundError("unit"))

	w := h.do(t, http.MethodGet, "/units/"+unitID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, shared.CodeNotFound, decodeResponse(t, w).Error.Code)
}

func TestBillingHandler_RecordReading(t *testing.T) {
	h := newBillingHarness(t)
	unitID := uuid.New()
	h.svc.On("RecordReading", mock.Anything, h.tenantID, unitID, mock.MatchedBy(func(req billingapp.RecordReadingRequest) bool {
		return req.Utility == "ELECTRIC" && req.BillingMonth == "2025-01" && req.Previous == nil && req.Present.Equal(dec("110"))
	})).Return(&billingapp.MeterReadingResponse{UnitID: unitID, Consumption: dec("10")}, nil)

	w := h.do(t, http.MethodPost, "/units/"+unitID.String()+"/readings",
		`{"utility":"ELECTRIC","billing_month":"2025-01","present":"110"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = h.do(t, http.MethodPost, "/units/"+unitID.String()+"/readings",
		`{"utility":"ELECTRIC","billing_month":"January","present":"110"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "billing_month", decodeResponse(t, w).Error.Details[0].Field)
}

func TestBillingHandler_GenerateBill(t *testing.T) {
	h := newBillingHarness(t)
	unitID := uuid.New()
	h.svc.On("GenerateBill", mock.Anything, h.tenantID, unitID, mock.MatchedBy(func(req billingapp.GenerateBillRequest) bool {
		return req.BillingMonth == "2025-02"
	})).Return(&billingapp.GenerateBillResponse{
		Bill:    billingapp.BillResponse{UnitID: unitID, TotalAmount: dec("2668.39"), Status: string(billing.BillStatusUnpaid)},
		Penalty: billing.PenaltyResult{Total: dec("268.39")},
	}, nil).Once()
	h.svc.On("GenerateBill", mock.Anything, h.tenantID, unitID, mock.Anything).
		Return(nil, shared.NewConflictError("bill for %s already exists", "2025-02")).Once()

	w := h.do(t, http.MethodPost, "/units/"+unitID.String()+"/bills", `{"billing_month":"2025-02"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	bill := decodeResponse(t, w).Data.(map[string]any)["bill"].(map[string]any)
	assert.Equal(t, "2668.39", bill["total_amount"])

	w = h.do(t, http.MethodPost, "/units/"+unitID.String()+"/bills", `{"billing_month":"2025-02"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, shared.CodeConflict, decodeResponse(t, w).Error.Code)
}

func TestBillingHandler_CreateOpeningBalance(t *testing.T) {
	h := newBillingHarness(t)
	unitID := uuid.New()
	h.svc.On("CreateOpeningBalance", mock.Anything, h.tenantID, unitID, mock.MatchedBy(func(req billingapp.OpeningBalanceRequest) bool {
		return req.Dues.Equal(dec("5000")) && req.DueDate.Equal(time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC))
	})).Return(&billingapp.BillResponse{BillType: string(billing.BillTypeOpeningBalance), TotalAmount: dec("5000")}, nil)

	w := h.do(t, http.MethodPost, "/units/"+unitID.String()+"/opening-balance",
		`{"billing_month":"2024-11","due_date":"2024-12-10T00:00:00Z","dues":"5000"}`)

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestBillingHandler_ListBills(t *testing.T) {
	h := newBillingHarness(t)
	unitID := uuid.New()
	h.svc.On("ListBills", mock.Anything, h.tenantID, unitID, billingapp.ListBillsQuery{
		Status: "OVERDUE", AsOf: "2025-03-15", Page: 2, PageSize: 10, OrderDir: "desc",
	}).Return(&billingapp.BillListResponse{
		Bills:            []billingapp.BillResponse{{Status: "OVERDUE"}},
		TotalOutstanding: dec("5352.29"),
	}, nil)

	w := h.do(t, http.MethodGet, "/units/"+unitID.String()+"/bills?status=OVERDUE&as_of=2025-03-15&page=2&page_size=10&order_dir=desc", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 10, resp.Meta.PageSize)
	assert.Equal(t, "5352.29", resp.Data.(map[string]any)["total_outstanding"])
}

func TestBillingHandler_ListBills_BadQuery(t *testing.T) {
	h := newBillingHarness(t)
	unitID := uuid.New()

	w := h.do(t, http.MethodGet, "/units/"+unitID.String()+"/bills?status=LATE", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodGet, "/units/"+unitID.String()+"/bills?as_of=15-03-2025", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBillingHandler_PreviewPenalty(t *testing.T) {
	h := newBillingHarness(t)
	unitID := uuid.New()
	h.svc.On("PreviewPenalty", mock.Anything, h.tenantID, unitID, "2025-03-15").
		Return(&billingapp.PenaltyPreviewResponse{UnitID: unitID, Total: dec("559.229"), Rounded: dec("559.23")}, nil)

	w := h.do(t, http.MethodGet, "/units/"+unitID.String()+"/penalty?as_of=2025-03-15", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "559.23", decodeResponse(t, w).Data.(map[string]any)["rounded"])
}

func TestBillingHandler_PostPayment(t *testing.T) {
	h := newBillingHarness(t)
	unitID := uuid.New()
	paymentID := uuid.New()
	h.svc.On("PostPayment", mock.Anything, h.tenantID, unitID, mock.MatchedBy(func(req billingapp.PostPaymentRequest) bool {
		return req.ReferenceNumber == "OR-1001" && req.Dues.Equal(dec("2500")) && req.TotalAmount.Equal(dec("2500"))
	})).Return(&billingapp.PaymentResponse{
		ID:           paymentID,
		Status:       string(billing.PaymentStatusPosted),
		AdvanceDelta: billing.AdvanceAmounts{Dues: dec("100"), Utilities: decimal.Zero},
	}, nil).Once()
	h.svc.On("PostPayment", mock.Anything, h.tenantID, unitID, mock.Anything).
		Return(nil, shared.NewConflictError("reference %s already used", "OR-1001")).Once()

	body := `{"reference_number":"OR-1001","method":"CASH","dues":"2500","total_amount":"2500"}`
	w := h.do(t, http.MethodPost, "/units/"+unitID.String()+"/payments", body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, paymentID.String(), decodeResponse(t, w).Data.(map[string]any)["id"])

	w = h.do(t, http.MethodPost, "/units/"+unitID.String()+"/payments", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = h.do(t, http.MethodPost, "/units/"+unitID.String()+"/payments", `{"method":"CASH","dues":"2500"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBillingHandler_PostPayment_UnitBusy(t *testing.T) {
	h := newBillingHarness(t)
	unitID := uuid.New()
	h.svc.On("PostPayment", mock.Anything, h.tenantID, unitID, mock.Anything).
		Return(nil, shared.NewConcurrencyError("unit is locked by another operation", nil))

	w := h.do(t, http.MethodPost, "/units/"+unitID.String()+"/payments",
		`{"reference_number":"OR-1002","dues":"100","total_amount":"100"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, shared.CodeConcurrency, decodeResponse(t, w).Error.Code)
}

func TestBillingHandler_VoidPayment(t *testing.T) {
	h := newBillingHarness(t)
	paymentID := uuid.New()
	h.svc.On("VoidPayment", mock.Anything, h.tenantID, paymentID, billingapp.VoidPaymentRequest{Reason: "bounced check"}).
		Return(&billingapp.PaymentResponse{ID: paymentID, Status: string(billing.PaymentStatusVoided)}, nil)

	w := h.do(t, http.MethodPost, "/payments/"+paymentID.String()+"/void", `{"reason":"bounced check"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "VOIDED", decodeResponse(t, w).Data.(map[string]any)["status"])

	w = h.do(t, http.MethodPost, "/payments/"+paymentID.String()+"/void", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBillingHandler_GetAdvanceBalance(t *testing.T) {
	h := newBillingHarness(t)
	unitID := uuid.New()
	h.svc.On("GetAdvanceBalance", mock.Anything, h.tenantID, unitID, defaultLedgerLimit).
		Return(&billingapp.AdvanceBalanceResponse{UnitID: unitID, Total: dec("230")}, nil)
	h.svc.On("GetAdvanceBalance", mock.Anything, h.tenantID, unitID, 5).
		Return(&billingapp.AdvanceBalanceResponse{UnitID: unitID, Total: dec("230")}, nil)

	w := h.do(t, http.MethodGet, "/units/"+unitID.String()+"/advance-balance", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do(t, http.MethodGet, "/units/"+unitID.String()+"/advance-balance?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do(t, http.MethodGet, "/units/"+unitID.String()+"/advance-balance?limit=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
