package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists
// or that overlaps an existing one.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrPriceNotFound indicates that no selling price covers a product at a given date.
var ErrPriceNotFound = errors.New("price not found")

// AppError carries an HTTP status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError with the given status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError returns an AppError wrapping ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewDuplicateError returns an AppError wrapping ErrDuplicate.
func NewDuplicateError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

// PriceNotFoundError reports the product and date for which no price applies.
// It matches ErrPriceNotFound with errors.Is.
type PriceNotFoundError struct {
	ProductID string
	Date      time.Time
}

func (e *PriceNotFoundError) Error() string {
	return fmt.Sprintf("no price registered for product %s at date %s", e.ProductID, e.Date.Format("2006-01-02"))
}

// Is lets errors.Is(err, ErrPriceNotFound) succeed.
func (e *PriceNotFoundError) Is(target error) bool {
	return target == ErrPriceNotFound
}
