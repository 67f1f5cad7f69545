package errors

import (
	"net/http"

	"marketplace/internal/domain/entity"
	"marketplace/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// Redirector is implemented by errors that tell the client where to go next.
type Redirector interface {
	RedirectTo() string
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	redirect  string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// RedirectTo returns the route the client should navigate to, if any
func (e *BaseError) RedirectTo() string {
	return e.redirect
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WithRedirect attaches a client redirect target
func (e *BaseError) WithRedirect(path string) *BaseError {
	clone := *e
	clone.redirect = path

	return &clone
}

// Is matches errors sharing the same business error code, so clones made by
// WithDetails or WithRedirect still satisfy errors.Is against the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// LoginPath is where unauthenticated callers are sent.
const LoginPath = "/login"

// Predefined error types
var (
	// Session-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Sign in to continue",
		"",
	).WithRedirect(LoginPath)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have access to this section",
		"",
	)

	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	ErrProfileUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"PROFILE_UPDATE_FAILED",
		"Failed to update profile",
		"",
	)

	// Listing-related errors
	ErrListingNotFound = NewBaseError(
		http.StatusNotFound,
		"LISTING_NOT_FOUND",
		"Listing not found",
		"",
	)

	ErrSellerRoleRequired = NewBaseError(
		http.StatusForbidden,
		"SELLER_ROLE_REQUIRED",
		"Only sellers can create listings",
		"",
	)

	// Deal-related errors
	ErrDealNotFound = NewBaseError(
		http.StatusNotFound,
		"DEAL_NOT_FOUND",
		"Deal room not found",
		"",
	)

	ErrNotDealParticipant = NewBaseError(
		http.StatusForbidden,
		"NOT_DEAL_PARTICIPANT",
		"You are not a participant of this deal room",
		"",
	)

	ErrNDARequired = NewBaseError(
		http.StatusConflict,
		"NDA_REQUIRED",
		"The NDA must be signed first",
		"",
	)

	ErrOwnListing = NewBaseError(
		http.StatusConflict,
		"OWN_LISTING",
		"You cannot open a deal room on your own listing",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// EntitlementDeniedError is returned when an authenticated user lacks the tier an entitlement needs.
type EntitlementDeniedError struct {
	Result      entity.EntitlementResult
	upgradePath string
}

// NewEntitlementDeniedError creates the 403 error for a denied entitlement check.
func NewEntitlementDeniedError(result entity.EntitlementResult, upgradePath string) *EntitlementDeniedError {
	return &EntitlementDeniedError{Result: result, upgradePath: upgradePath}
}

// Error implements the error interface
func (e *EntitlementDeniedError) Error() string {
	return "entitlement denied: " + e.Result.Entitlement.String()
}

// HTTPCode returns the HTTP status code
func (e *EntitlementDeniedError) HTTPCode() int {
	return http.StatusForbidden
}

// ErrorCode returns the business error code
func (e *EntitlementDeniedError) ErrorCode() string {
	return "ENTITLEMENT_REQUIRED"
}

// Message returns the user-friendly error message
func (e *EntitlementDeniedError) Message() string {
	if e.Result.Message != "" {
		return e.Result.Message
	}

	return "Your plan does not include this feature"
}

// Details returns the required tier, if known
func (e *EntitlementDeniedError) Details() string {
	if e.Result.RequiredTier == nil {
		return ""
	}

	return "required_tier=" + e.Result.RequiredTier.String()
}

// RedirectTo returns the upgrade page for the required tier
func (e *EntitlementDeniedError) RedirectTo() string {
	if e.Result.RequiredTier == nil {
		return e.upgradePath
	}

	return e.upgradePath + "?tier=" + e.Result.RequiredTier.String()
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
