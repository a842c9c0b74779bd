package store

import (
	"errors"
	"fmt"
)

// Business-rule violations. Operations returning these leave the store
// completely untouched.
var (
	ErrNotFound            = errors.New("not found")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrDuplicateID         = errors.New("duplicate id")
)

// ValidationError reports bad input caught at the store boundary. Detailed
// field validation belongs to the caller; the store only enforces what its
// invariants depend on.
type ValidationError struct {
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Description)
}
