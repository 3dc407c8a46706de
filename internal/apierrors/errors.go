package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned in ErrorResponse.Code
const (
	CodeInvalidInput       = "INVALID_INPUT"
	CodeMissingField       = "MISSING_FIELD"
	CodeInvalidRange       = "INVALID_RANGE"
	CodeInvalidStatus      = "INVALID_STATUS"
	CodeInvalidState       = "INVALID_STATE"
	CodeNotFound           = "NOT_FOUND"
	CodeClientNotFound     = "CLIENT_NOT_FOUND"
	CodeInquiryNotFound    = "INQUIRY_NOT_FOUND"
	CodeResponseNotFound   = "RESPONSE_NOT_FOUND"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeUserExists         = "USER_EXISTS"
	CodeClientHasInquiries = "CLIENT_HAS_INQUIRIES"
	CodeDealNotWon         = "DEAL_NOT_WON"
	CodeLicenseExists      = "LICENSE_EXISTS"
	CodeNoPublishers       = "NO_PUBLISHERS"
	CodeNoRecipients       = "NO_RECIPIENTS"
	CodeWeakPassword       = "WEAK_PASSWORD"
	CodeIncorrectPassword  = "INCORRECT_PASSWORD"
	CodeMonitorRunning     = "MONITOR_ALREADY_RUNNING"
	CodeMonitorStopped     = "MONITOR_NOT_RUNNING"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeRateLimited        = "RATE_LIMITED"
	CodeEmailServiceError  = "EMAIL_SERVICE_ERROR"
	CodeAIServiceError     = "AI_SERVICE_ERROR"
	CodeUnavailable        = "SERVICE_UNAVAILABLE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// APIError is an error that knows its HTTP representation. Internal is logged
// but never sent to the client.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Internal   error
}

func (e *APIError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Internal
}

// BadRequest creates a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Unauthorized creates a 401 error
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden creates a 403 error
func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

// NotFound creates a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// Conflict creates a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// TooManyRequests creates a 429 error
func TooManyRequests(message string) *APIError {
	return &APIError{StatusCode: http.StatusTooManyRequests, Code: CodeRateLimited, Message: message}
}

// BadGateway creates a 502 error for failures of an upstream provider
func BadGateway(code, message string, internalErr error) *APIError {
	return &APIError{StatusCode: http.StatusBadGateway, Code: code, Message: message, Internal: internalErr}
}

// ServiceUnavailable creates a 503 error
func ServiceUnavailable(code, message string, internalErr error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Internal: internalErr}
}

// InternalError creates a sanitized 500 error - never exposes internal details
func InternalError(internalErr error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Internal:   internalErr,
	}
}
