package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/doorscomputers/megatower-sub002/internal/domain/billing"
	"github.com/doorscomputers/megatower-sub002/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var setupValidatorOnce sync.Once

// SetupValidator configures gin's validator: errors name fields by their JSON
// tag, and the billing_month tag accepts "YYYY-MM" tokens.
func SetupValidator() {
	setupValidatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			}
			return name
		})
		_ = v.RegisterValidation("billing_month", func(fl validator.FieldLevel) bool {
			_, err := billing.ParseBillingMonth(fl.Field().String())
			return err == nil
		})
	})
}

// FormatValidationErrors formats binding errors into a VALIDATION_ERROR response
func FormatValidationErrors(err error, requestID string) dto.Response {
	var details []dto.ValidationDetail

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Message: getValidationMessage(e),
			})
		}
	}

	return dto.NewValidationErrorResponse("Request validation failed", requestID, details)
}

// HandleValidationError aborts with a 400 validation response
func HandleValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, FormatValidationErrors(err, GetRequestID(c)))
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "uuid":
		return "Invalid UUID format"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	case "datetime":
		return "Must be a date in the format " + e.Param()
	case "billing_month":
		return "Must be a billing month in the format YYYY-MM"
	default:
		return "Invalid value"
	}
}
