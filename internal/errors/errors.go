package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// ErrDependencyUnavailable is returned when the customer service is degraded:
// timeouts, 5xx responses, or an open circuit breaker. It is deliberately
// distinct from a not-found outcome so callers never mistake a degraded
// dependency for a missing customer.
var ErrDependencyUnavailable = errors.New("customer service is currently unavailable")

// NotFoundError is returned when an entity cannot be located by its key.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

// NewNotFound creates a NotFoundError for the given entity and lookup key.
func NewNotFound(entity, key string) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

// BusinessRuleError is returned when an operation violates a credit business
// rule: ineligible credit type, duplicate personal loan, charge on a non-card,
// operations on inactive credits, payment exceeding balance.
type BusinessRuleError struct {
	Reason string
}

func (e *BusinessRuleError) Error() string {
	return e.Reason
}

// NewBusinessRule creates a BusinessRuleError with the given reason.
func NewBusinessRule(reason string) *BusinessRuleError {
	return &BusinessRuleError{Reason: reason}
}

// InsufficientCreditError is returned when a charge exceeds the available
// headroom. It carries both amounts so callers can report the exact gap.
type InsufficientCreditError struct {
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientCreditError) Error() string {
	return fmt.Sprintf("insufficient credit: requested %s, available %s",
		e.Requested.String(), e.Available.String())
}

// NewInsufficientCredit creates an InsufficientCreditError.
func NewInsufficientCredit(requested, available decimal.Decimal) *InsufficientCreditError {
	return &InsufficientCreditError{Requested: requested, Available: available}
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsBusinessRule reports whether err is a BusinessRuleError.
func IsBusinessRule(err error) bool {
	var br *BusinessRuleError
	return errors.As(err, &br)
}

// IsInsufficientCredit reports whether err is an InsufficientCreditError.
func IsInsufficientCredit(err error) bool {
	var ic *InsufficientCreditError
	return errors.As(err, &ic)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var (
		notFound     *NotFoundError
		rule         *BusinessRuleError
		insufficient *InsufficientCreditError
	)
	switch {
	case errors.As(err, &notFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case errors.As(err, &insufficient):
		return NewHTTPError(http.StatusConflict, err.Error(), "INSUFFICIENT_CREDIT")
	case errors.As(err, &rule):
		return NewHTTPError(http.StatusConflict, err.Error(), "BUSINESS_RULE_VIOLATION")
	case errors.Is(err, ErrDependencyUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, err.Error(), "SERVICE_UNAVAILABLE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
