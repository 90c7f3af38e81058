package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/doorscomputers/megatower-sub002/internal/interfaces/http/dto"
	"github.com/doorscomputers/megatower-sub002/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBaseHandler_HandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", shared.NewValidationError("amount must be positive"), http.StatusBadRequest, shared.CodeValidation},
		{"consistency", shared.NewConsistencyError("tiers out of order"), http.StatusUnprocessableEntity, shared.CodeConsistency},
		{"concurrency", shared.NewConcurrencyError("unit is busy", nil), http.StatusConflict, shared.CodeConcurrency},
		{"conflict", shared.NewConflictError("bill for %s exists", "2025-01"), http.StatusConflict, shared.CodeConflict},
		{"not found", shared.NewNotFoundError("unit"), http.StatusNotFound, shared.CodeNotFound},
		{"wrapped", fmt.Errorf("post payment: %w", shared.NewNotFoundError("bill")), http.StatusNotFound, shared.CodeNotFound},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, dto.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set(middleware.RequestIDKey, "req-1")

			h := &BaseHandler{}
			h.HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			assert.Equal(t, "req-1", resp.Error.RequestID)
			assert.Equal(t, tt.wantCode, c.GetString(middleware.ErrorCodeKey))
		})
	}
}

func TestBaseHandler_HandleErrorNil(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	(&BaseHandler{}).HandleError(c, nil)
	assert.Equal(t, 0, w.Body.Len())
}

type bindProbe struct {
	Name  string `json:"name" binding:"required"`
	Count int    `json:"count"`
}

func TestBaseHandler_BindJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   string
	}{
		{"ok", `{"name":"A-101","count":2}`, http.StatusOK, ""},
		{"missing field", `{"count":2}`, http.StatusBadRequest, shared.CodeValidation},
		{"syntax", `{"name":`, http.StatusBadRequest, dto.ErrCodeInvalidJSON},
		{"empty body", ``, http.StatusBadRequest, dto.ErrCodeInvalidJSON},
		{"wrong type", `{"name":"A-101","count":"two"}`, http.StatusBadRequest, dto.ErrCodeInvalidJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			h := &BaseHandler{}
			var req bindProbe
			if h.bindJSON(c, &req) {
				h.Success(c, req)
			}

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeResponse(t, w)
			if tt.wantCode == "" {
				assert.True(t, resp.Success)
				return
			}
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestBaseHandler_UUIDParam(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "unit_id", Value: "A-101"}}

	_, ok := (&BaseHandler{}).uuidParam(c, "unit_id")

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, shared.CodeValidation, decodeResponse(t, w).Error.Code)
}
