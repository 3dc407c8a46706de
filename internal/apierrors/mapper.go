package apierrors

import (
	"errors"
	"fmt"
	"strings"

	assistantProcessor "ops-dashboard/internal/assistant/processor"
	authProcessor "ops-dashboard/internal/auth/processor"
	directoryProcessor "ops-dashboard/internal/directory/processor"
	inquiryProcessor "ops-dashboard/internal/inquiries/processor"
	licenseProcessor "ops-dashboard/internal/licenses/processor"
	publisherProcessor "ops-dashboard/internal/publishers/processor"
	responseProcessor "ops-dashboard/internal/responses/processor"
	"ops-dashboard/internal/store"
	"ops-dashboard/internal/workers"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var licenseValidation *licenseProcessor.ValidationError
	if errors.As(err, &licenseValidation) {
		if licenseValidation.Kind == licenseProcessor.ValidationInvalidRange {
			return BadRequest(CodeInvalidRange, licenseValidation.Message)
		}
		return BadRequest(CodeMissingField, licenseValidation.Message)
	}

	var hasInquiries *directoryProcessor.ClientHasInquiriesError
	if errors.As(err, &hasInquiries) {
		return Conflict(CodeClientHasInquiries,
			fmt.Sprintf("Client has %d inquiries and cannot be deleted", hasInquiries.Count))
	}

	switch {
	// Map auth processor errors
	case errors.Is(err, authProcessor.ErrInvalidCredentials):
		return Unauthorized("Invalid username or password")

	case errors.Is(err, authProcessor.ErrIncorrectPassword):
		return BadRequest(CodeIncorrectPassword, "Current password is incorrect")

	case errors.Is(err, authProcessor.ErrWeakPassword):
		return BadRequest(CodeWeakPassword, "Password must be at least 8 characters")

	case errors.Is(err, authProcessor.ErrUserExists):
		return Conflict(CodeUserExists, "Username or email already taken")

	case errors.Is(err, authProcessor.ErrMissingUserField):
		return BadRequest(CodeMissingField, "Username, full name, email and password are required")

	case errors.Is(err, authProcessor.ErrUserNotFound):
		return NotFound(CodeUserNotFound, "User not found")

	case errors.Is(err, authProcessor.ErrInvalidJWTToken),
		errors.Is(err, authProcessor.ErrParseJWTToken),
		errors.Is(err, authProcessor.ErrExpiredToken):
		return Unauthorized("Invalid or expired token")

	case errors.Is(err, authProcessor.ErrFailedLogin):
		return InternalError(err)

	// Map directory processor errors
	case errors.Is(err, directoryProcessor.ErrClientNotFound):
		return NotFound(CodeClientNotFound, "Client not found")

	case errors.Is(err, directoryProcessor.ErrEmailAlreadyExists):
		return Conflict(CodeEmailExists, "A client with this email already exists")

	case errors.Is(err, directoryProcessor.ErrClientHasInquiries):
		return Conflict(CodeClientHasInquiries, "Client has inquiries and cannot be deleted")

	// Map inquiry processor errors
	case errors.Is(err, inquiryProcessor.ErrInquiryNotFound):
		return NotFound(CodeInquiryNotFound, "Inquiry not found")

	case errors.Is(err, inquiryProcessor.ErrClientNotFound):
		return NotFound(CodeClientNotFound, "Client not found")

	case errors.Is(err, inquiryProcessor.ErrMissingClient):
		return BadRequest(CodeMissingField, "Either client_id or client_email is required")

	case errors.Is(err, inquiryProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "Invalid inquiry status. Valid values: pending, in_progress, responded, closed")

	// Map response processor errors
	case errors.Is(err, responseProcessor.ErrResponseNotFound):
		return NotFound(CodeResponseNotFound, "Response not found")

	case errors.Is(err, responseProcessor.ErrInquiryNotFound):
		return NotFound(CodeInquiryNotFound, "Inquiry not found")

	case errors.Is(err, responseProcessor.ErrDealClosed):
		return Conflict(CodeInvalidState, "Deal is already closed")

	case errors.Is(err, responseProcessor.ErrInvalidFollowUpUpdate):
		return BadRequest(CodeInvalidInput, "Provide client_replied, follow_up_method or deal_status")

	case errors.Is(err, responseProcessor.ErrEmptyMessage):
		return BadRequest(CodeMissingField, "Message is required")

	case errors.Is(err, responseProcessor.ErrEmailDeliveryFailed):
		return BadGateway(CodeEmailServiceError, "Response saved but the email could not be sent", err)

	// Map license processor errors
	case errors.Is(err, licenseProcessor.ErrResponseNotFound):
		return NotFound(CodeResponseNotFound, "Response not found")

	case errors.Is(err, licenseProcessor.ErrDealNotWon):
		return Conflict(CodeDealNotWon, "Deal must be closed won before issuing a license")

	case errors.Is(err, licenseProcessor.ErrLicenseExists):
		return Conflict(CodeLicenseExists, "A license already exists for this response")

	case errors.Is(err, licenseProcessor.ErrClientNotFound):
		return NotFound(CodeClientNotFound, "Client not found")

	// Map publisher processor errors
	case errors.Is(err, publisherProcessor.ErrNoPublishers):
		return BadRequest(CodeNoPublishers, "No publishers data provided")

	case errors.Is(err, publisherProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "Invalid publisher status. Valid values: active, inactive")

	case errors.Is(err, publisherProcessor.ErrNoPublisherIDs):
		return BadRequest(CodeMissingField, "At least one publisher id is required")

	case errors.Is(err, publisherProcessor.ErrEmptyBroadcastSubject):
		return BadRequest(CodeMissingField, "Subject and body are required")

	case errors.Is(err, publisherProcessor.ErrNoRecipients):
		return BadRequest(CodeNoRecipients, "No active publishers to send to")

	case errors.Is(err, publisherProcessor.ErrBroadcastUnavailable):
		return ServiceUnavailable(CodeUnavailable, "Broadcasts are not available right now", err)

	// Map assistant processor errors
	case errors.Is(err, assistantProcessor.ErrInquiryNotFound):
		return NotFound(CodeInquiryNotFound, "Inquiry not found")

	case errors.Is(err, assistantProcessor.ErrEmptyText):
		return BadRequest(CodeMissingField, "Text is required")

	case errors.Is(err, assistantProcessor.ErrDraftFailed):
		return BadGateway(CodeAIServiceError, "Could not generate a draft. Please try again later.", err)

	// Map email monitor errors
	case errors.Is(err, workers.ErrAlreadyRunning):
		return Conflict(CodeMonitorRunning, "Email monitoring is already running")

	case errors.Is(err, workers.ErrNotRunning):
		return Conflict(CodeMonitorStopped, "Email monitoring is not running")

	// Map store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError attempts to identify external service errors
// and map them to appropriate service-specific error responses.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service") {
		return ServiceUnavailable(
			CodeEmailServiceError,
			"Email service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	if strings.Contains(errMsg, "openai") || strings.Contains(errMsg, "gemini") || strings.Contains(errMsg, "ai service") {
		return ServiceUnavailable(
			CodeAIServiceError,
			"AI service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	return InternalError(err)
}
