package port

import (
	"context"

	"github.com/orderdesk/orderdesk/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// CreateOrder inserts the order with status NEW and returns it with
	// the store-assigned ID and CreatedAt populated.
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// ReadOrder returns domain.ErrDataNotFound when no row matches.
	ReadOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	// ListOrders returns up to limit orders, newest ID first.
	ListOrders(ctx context.Context, limit int) ([]*domain.Order, error)
	// DeleteOrder removes the row and returns the deleted order's identity,
	// or domain.ErrDataNotFound when no row matched.
	DeleteOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	// Ping probes store connectivity.
	Ping(ctx context.Context) error
}
