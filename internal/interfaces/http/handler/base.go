// Package handler implements the HTTP handlers of the billing API.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/doorscomputers/megatower-sub002/internal/domain/shared"
	"github.com/doorscomputers/megatower-sub002/internal/infrastructure/logger"
	"github.com/doorscomputers/megatower-sub002/internal/interfaces/http/dto"
	"github.com/doorscomputers/megatower-sub002/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// Error sends an error response with the given status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.Set(middleware.ErrorCodeKey, code)
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, middleware.GetRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// HandleError maps an error to its HTTP response. Domain errors keep their
// code; anything else is logged and reported as an internal error.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.GetHTTPStatus(domainErr.Code), domainErr.Code, domainErr.Message)
		return
	}

	logger.FromContext(c.Request.Context()).Error("request failed",
		zap.String("route", c.FullPath()),
		zap.Error(err),
	)
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, "An unexpected error occurred")
}

// HandleBindError reports a failed ShouldBind call
func (h *BaseHandler) HandleBindError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &validationErrors):
		c.Set(middleware.ErrorCodeKey, shared.CodeValidation)
		middleware.HandleValidationError(c, err)
	case errors.As(err, &maxBytesErr):
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeRequestTooLarge, "Request body exceeds maximum allowed size")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Request body is not valid JSON")
	case errors.As(err, &typeErr):
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Field "+typeErr.Field+" has the wrong type")
	default:
		h.Error(c, http.StatusBadRequest, shared.CodeValidation, err.Error())
	}
}

// bindJSON binds the request body and reports failures. It returns false
// when a response has already been written.
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.HandleBindError(c, err)
		return false
	}
	return true
}

// bindQuery binds query parameters and reports failures
func (h *BaseHandler) bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		h.HandleBindError(c, err)
		return false
	}
	return true
}

// uuidParam parses a UUID path parameter, answering 400 when it is malformed
func (h *BaseHandler) uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.Error(c, http.StatusBadRequest, shared.CodeValidation, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}
