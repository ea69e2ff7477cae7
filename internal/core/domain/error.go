package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound = errors.New("data not found")

	// * Communication errors.
	ErrBadRequest = errors.New("Invalid JSON body")

	// * Business errors.
	ErrInvalidOrder   = errors.New("Invalid order: symbol, side(BUY/SELL), quantity>0, price>0 required")
	ErrInvalidOrderID = errors.New("Invalid id")
	ErrOrderNotFound  = errors.New("Order not found")
)

// PersistenceError wraps a store-level failure so the handler layer can
// attach the underlying driver message to the response.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error: %s", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
