package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusNew      OrderStatus = "NEW"
	OrderStatusCanceled OrderStatus = "CANCELED"
)

type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

type Order struct {
	ID        int64
	Symbol    string
	Side      OrderSide
	Quantity  decimal.Decimal
	Price     decimal.Decimal
	Status    OrderStatus
	CreatedAt time.Time
}

// Validate checks the client-supplied fields of an order draft.
// ID, Status and CreatedAt are server-assigned and not inspected here.
// Rules apply in order, first failure wins.
func (o *Order) Validate() error {
	if o.Symbol == "" {
		return ErrInvalidOrder
	}
	if o.Side != OrderSideBuy && o.Side != OrderSideSell {
		return ErrInvalidOrder
	}
	if o.Quantity.Cmp(decimal.Zero) <= 0 {
		return ErrInvalidOrder
	}
	if o.Price.Cmp(decimal.Zero) <= 0 {
		return ErrInvalidOrder
	}
	return nil
}
