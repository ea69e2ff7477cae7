package port

import (
	"context"

	"github.com/orderdesk/orderdesk/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	CreateOrder(ctx context.Context, draft *domain.Order) (*domain.Order, error)
	// ListOrders accepts the raw limit query value: unparsable input falls
	// back to the default, the result is clamped to [1, 500].
	ListOrders(ctx context.Context, limitParam string) ([]*domain.Order, error)
	// CancelOrder accepts the raw path id and returns the canceled order's id.
	CancelOrder(ctx context.Context, idParam string) (int64, error)
	// HealthCheck never fails: store trouble is reported as a degraded status.
	HealthCheck(ctx context.Context) *domain.HealthStatus
}
