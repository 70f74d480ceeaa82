package errors

import (
	"net/http"

	"sarahkyoga/internal/errors"
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
	origin    *BaseError
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

// WithDetails adds detailed error information. The copy still matches e with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	origin := e
	if e.origin != nil {
		origin = e.origin
	}

	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		origin:    origin,
	}
}

// Is reports whether e was derived from target through WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.origin != nil && e.origin == t
}

// Predefined error types
var (
	// Authentication and authorization errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrOAuthTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"OAUTH_TOKEN_INVALID",
		"Invalid Google ID token",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password is too weak",
		"",
	)

	ErrResetTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Reset link is invalid or has expired",
		"",
	)

	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"An account with this email already exists",
		"",
	)

	ErrUserHasOrders = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"User has orders and cannot be deleted",
		"",
	)

	// Catalog and cart errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrVariantNotFound = NewBaseError(
		http.StatusNotFound,
		"VARIANT_NOT_FOUND",
		"Product variant not found",
		"",
	)

	ErrCartNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_NOT_FOUND",
		"Cart not found",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Cart item not found",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Cart is empty",
		"",
	)

	// Promo code errors
	ErrPromoNotFound = NewBaseError(
		http.StatusNotFound,
		"PROMO_NOT_FOUND",
		"Promo code not found",
		"",
	)

	ErrPromoInactive = NewBaseError(
		http.StatusBadRequest,
		"PROMO_INACTIVE",
		"Promo code is not active",
		"",
	)

	ErrPromoExpired = NewBaseError(
		http.StatusBadRequest,
		"PROMO_EXPIRED",
		"Promo code has expired",
		"",
	)

	ErrPromoLimitReached = NewBaseError(
		http.StatusBadRequest,
		"PROMO_LIMIT_REACHED",
		"Promo code usage limit reached",
		"",
	)

	ErrPromoAlreadyExists = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Promo code already exists",
		"",
	)

	ErrPromoInUse = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Promo code is referenced by orders; deactivate it instead",
		"",
	)

	ErrPromoCodeGeneration = NewBaseError(
		http.StatusInternalServerError,
		"PROMO_CODE_GENERATION_FAILED",
		"Could not generate a unique promo code",
		"",
	)

	// Order and payment errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Order status cannot change",
		"",
	)

	ErrPaymentNotCompleted = NewBaseError(
		http.StatusPaymentRequired,
		"PAYMENT_NOT_COMPLETED",
		"Payment has not been completed",
		"",
	)

	// Newsletter errors
	ErrNewsletterNotFound = NewBaseError(
		http.StatusNotFound,
		"NEWSLETTER_NOT_FOUND",
		"Newsletter not found",
		"",
	)

	ErrNewsletterPublished = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Newsletter has already been published",
		"",
	)

	ErrSubscriberNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIBER_NOT_FOUND",
		"Subscriber not found",
		"",
	)

	// Workshop errors
	ErrWorkshopNotFound = NewBaseError(
		http.StatusNotFound,
		"WORKSHOP_NOT_FOUND",
		"Workshop not found",
		"",
	)

	ErrWorkshopSlugTaken = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Workshop slug already exists",
		"",
	)

	// Booking errors
	ErrSlotUnavailable = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Requested time is not available",
		"",
	)

	ErrCalendarDisabled = NewBaseError(
		http.StatusServiceUnavailable,
		"CALENDAR_DISABLED",
		"Booking calendar is not configured",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input",
		"",
	)

	// Upstream provider errors
	ErrUpstreamFailure = NewBaseError(
		http.StatusBadGateway,
		"UPSTREAM_FAILURE",
		"An external service failed",
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
