package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrUniversityIDExists  = errors.New("university ID already registered")
	ErrPasswordSignInOnly  = errors.New("account uses password sign-in")
	ErrOAuthAccountNoLogin = errors.New("account has no password; use the provider sign-in")
)

// Schedule errors
var (
	ErrScheduleNotFound = errors.New("bus schedule not found")
)

// Feedback errors
var (
	ErrFeedbackNotFound = errors.New("feedback not found")
)

// Complaint errors
var (
	ErrComplaintNotFound          = errors.New("complaint not found")
	ErrInvalidStatusTransition    = errors.New("invalid complaint status transition")
	ErrAdminResponseRequired      = errors.New("admin response required to close a complaint")
)

// Notice errors
var (
	ErrNoticeNotFound = errors.New("notice not found")
)

// OAuth errors
var (
	// ErrOAuthExchangeFailed covers code-exchange and userinfo failures.
	ErrOAuthExchangeFailed = errors.New("oauth exchange failed")
	// ErrOAuthProviderMisconfigured is the heuristic classification of
	// provider errors that indicate the provider itself is not set up
	// (not enabled, wrong redirect URI) rather than a bad request.
	ErrOAuthProviderMisconfigured = errors.New("oauth provider not enabled or misconfigured")
	ErrOAuthStateMismatch         = errors.New("oauth state mismatch")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{Err: ErrBadRequest, Message: message}
}
