package services

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart        = errors.New("shopping cart is empty")
	ErrAddressNotFound  = errors.New("address not found for user")
	ErrOrderNotFound    = errors.New("order not found")
	ErrAlreadyPaid      = errors.New("order is no longer awaiting payment")
	ErrCancelNotAllowed = errors.New("order can no longer be cancelled by user")
	ErrOrderNotFinished = errors.New("only completed or cancelled orders can be reordered")
	ErrInvalidRange     = errors.New("invalid date range: begin must not be after end")
)

// IllegalTransitionError dikembalikan saat transisi status tidak sah;
// membawa status saat ini dan status yang diminta.
type IllegalTransitionError struct {
	From string
	To   string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal order transition from %q to %q", e.From, e.To)
}
