package services

import (
	"errors"
	"fmt"
)

// All of these are detected during validation, before any write begins,
// and map to client errors at the HTTP boundary.
var (
	ErrCartEmpty     = errors.New("cart cannot be empty")
	ErrTotalMismatch = errors.New("order total mismatch")
)

var ErrOrderNotFound = errors.New("order not found")

type ProductNotFoundError struct {
	ID uint
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with id %d not found", e.ID)
}

type AdditiveNotFoundError struct {
	ID uint
}

func (e *AdditiveNotFoundError) Error() string {
	return fmt.Sprintf("additive with id %d not found", e.ID)
}

type AdditiveUnavailableError struct {
	Title string
}

func (e *AdditiveUnavailableError) Error() string {
	return fmt.Sprintf("additive %q is temporarily unavailable", e.Title)
}

type InvalidQuantityError struct {
	Field string
	Qty   int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("%s quantity must be positive, got %d", e.Field, e.Qty)
}

// IsValidationError reports whether err came out of cart validation,
// as opposed to a storage fault during commit.
func IsValidationError(err error) bool {
	var (
		productNotFound     *ProductNotFoundError
		additiveNotFound    *AdditiveNotFoundError
		additiveUnavailable *AdditiveUnavailableError
		invalidQuantity     *InvalidQuantityError
	)
	return errors.Is(err, ErrCartEmpty) ||
		errors.Is(err, ErrTotalMismatch) ||
		errors.As(err, &productNotFound) ||
		errors.As(err, &additiveNotFound) ||
		errors.As(err, &additiveUnavailable) ||
		errors.As(err, &invalidQuantity)
}
