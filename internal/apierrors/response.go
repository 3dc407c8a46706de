package apierrors

import (
	"errors"
	"net/http"

	"ops-dashboard/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Package-level logger that uses context for observability
var logger = observability.NewLogger()

// ErrorResponse is the JSON structure returned to API clients for errors
type ErrorResponse struct {
	Error string `json:"error"`          // User-friendly error message
	Code  string `json:"code,omitempty"` // Machine-readable error code
}

// RespondWithError maps err to an APIError and writes the sanitized JSON
// response. The processor has already logged the detailed error; this log
// entry carries the request id for correlation.
//
//	if err != nil {
//	    apierrors.RespondWithError(c, err)
//	    return
//	}
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := MapError(err)
	write(c, apiErr)
}

// RespondWithValidationError handles Gin binding/validation errors and returns
// structured validation error responses.
//
//	var req SomeRequest
//	if err := c.ShouldBindJSON(&req); err != nil {
//	    apierrors.RespondWithValidationError(c, err)
//	    return
//	}
func RespondWithValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		apiErr := ValidationError(validationErrs)
		logger.InfoWithError(ctx, "request validation failed", err)
		write(c, apiErr)
		return
	}

	// Not a validation error - a JSON syntax or type error
	logger.InfoWithError(ctx, "request binding failed", err)
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error: "Invalid request format. Please check your JSON syntax.",
		Code:  CodeInvalidInput,
	})
}

func write(c *gin.Context, apiErr *APIError) {
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
		observability.Field{Key: "error_message", Value: apiErr.Message},
	)
	if apiErr.StatusCode >= http.StatusInternalServerError && apiErr.Internal != nil {
		logger.Error(ctx, "API error response", apiErr.Internal)
	} else {
		logger.Info(ctx, "API error response")
	}

	c.AbortWithStatusJSON(apiErr.StatusCode, ErrorResponse{
		Error: apiErr.Message,
		Code:  apiErr.Code,
	})
}
