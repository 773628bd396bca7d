package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
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

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches BaseErrors by business code so WithDetails copies still match the original.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Session-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrIdentityAlreadyExists = NewBaseError(
		http.StatusConflict,
		"IDENTITY_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	// Authorization errors
	ErrUnauthorized = NewBaseError(
		http.StatusForbidden,
		"UNAUTHORIZED",
		"You are not allowed to perform this action",
		"",
	)

	ErrNotRetailer = NewBaseError(
		http.StatusForbidden,
		"NOT_RETAILER",
		"A retailer account is required",
		"",
	)

	ErrRetailerNotApproved = NewBaseError(
		http.StatusForbidden,
		"RETAILER_NOT_APPROVED",
		"Your retailer account is not approved",
		"",
	)

	ErrNotOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_OWNER",
		"You do not own this resource",
		"",
	)

	// Profile and retailer errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"User profile not found",
		"",
	)

	ErrRetailerNotFound = NewBaseError(
		http.StatusNotFound,
		"RETAILER_NOT_FOUND",
		"Retailer not found",
		"",
	)

	ErrApplicationExists = NewBaseError(
		http.StatusConflict,
		"APPLICATION_EXISTS",
		"A retailer application already exists for this account",
		"",
	)

	ErrSlugTaken = NewBaseError(
		http.StatusConflict,
		"SLUG_TAKEN",
		"A retailer with this business name already exists",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"This status change is not allowed",
		"",
	)

	// Deal errors
	ErrDealNotFound = NewBaseError(
		http.StatusNotFound,
		"DEAL_NOT_FOUND",
		"Deal not found",
		"",
	)

	ErrDealNotApproved = NewBaseError(
		http.StatusConflict,
		"DEAL_NOT_APPROVED",
		"Only approved deals can be paused or resumed",
		"",
	)

	ErrInvalidPrice = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PRICE",
		"Discounted price must be less than original price",
		"",
	)

	// Consumer feature errors
	ErrPriceAlertNotFound = NewBaseError(
		http.StatusNotFound,
		"PRICE_ALERT_NOT_FOUND",
		"Price alert not found",
		"",
	)

	ErrInvalidTargetPrice = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TARGET_PRICE",
		"Target price must be positive and below the current price",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
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

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
// Its Details never include the driver error.
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

// Unwrap exposes the driver error for logging.
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
	return "Failed to access the data store"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
