// Package response renders the JSON envelope shared by every API endpoint.
package response

import (
	"log/slog"
	"net/http"

	deliverycontext "dealsmarket/internal/delivery/context"
	domainerrors "dealsmarket/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Meta    *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Success bool       `json:"success"`
	Code    string     `json:"code"`    // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string     `json:"message"` // User-friendly error message
	Error   *ErrorInfo `json:"error"`
	Meta    *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// PageMeta describes one page of a paginated listing.
type PageMeta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
}

// Paged is the data payload of a paginated listing.
type Paged[T any] struct {
	Items      []T      `json:"items"`
	Pagination PageMeta `json:"pagination"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Success: true,
		Data:    data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details are withheld for 5xx and for authentication/authorization failures.
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Code:    errorCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// ValidationError returns a 400 error listing the failing fields.
func ValidationError(c echo.Context, details any) error {
	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(),
		domainerrors.ErrValidationFailed.Message(), details)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context) error {
	return Error(c, http.StatusUnauthorized, domainerrors.ErrUnauthenticated.ErrorCode(),
		domainerrors.ErrUnauthenticated.Message(), nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(),
		"Internal server error, please try again later", nil)
}

// HandleAppError converts domain errors to HTTP responses. Anything that is not an AppError
// is logged with the request logger and rendered as a generic 500, so store internals never leak.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logFailure(c, err)
		}

		var details any
		if d := appErr.Details(); d != "" {
			details = d
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
	}

	logFailure(c, err)

	return InternalServerError(c)
}

func logFailure(c echo.Context, err error) {
	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).ErrorContext(ctx, "Request failed",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
