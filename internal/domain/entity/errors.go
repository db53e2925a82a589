package entity

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrLockedOut          = errors.New("login locked out")
	ErrProductUnavailable = errors.New("product is not available")
	ErrNotAuthorized      = errors.New("user is not admin")
)

// ValidationError noto'g'ri kiritilgan maydon
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NotFoundError mavjud bo'lmagan mahsulot
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product not found: %s", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// LockedOutError lockout paytida login urinish
type LockedOutError struct {
	RemainingMinutes int
}

func (e *LockedOutError) Error() string {
	return fmt.Sprintf("too many failed attempts, try again in %d minutes", e.RemainingMinutes)
}

func (e *LockedOutError) Is(target error) bool { return target == ErrLockedOut }
