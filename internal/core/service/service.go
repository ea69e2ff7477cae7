package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/orderdesk/orderdesk/internal/core/domain"
	"github.com/orderdesk/orderdesk/internal/core/port"
	"go.uber.org/zap"
)

const (
	DefaultListLimit = 50
	MinListLimit     = 1
	MaxListLimit     = 500

	healthProbeTimeout = 2 * time.Second
)

type Service struct {
	repo   port.Repository
	logger *zap.Logger
}

func NewService(repo port.Repository, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *Service) CreateOrder(ctx context.Context, draft *domain.Order) (*domain.Order, error) {
	// validation runs before any store interaction
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	draft.Status = domain.OrderStatusNew

	order, err := s.repo.CreateOrder(ctx, draft)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, &domain.PersistenceError{Err: err}
	}

	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, limitParam string) ([]*domain.Order, error) {
	limit := parseListLimit(limitParam)

	list, err := s.repo.ListOrders(ctx, limit)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, &domain.PersistenceError{Err: err}
	}

	return list, nil
}

func (s *Service) CancelOrder(ctx context.Context, idParam string) (int64, error) {
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidOrderID
	}

	order, err := s.repo.DeleteOrder(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return 0, domain.ErrOrderNotFound
		}
		s.logger.Error("Cancel order", zap.Int64("id", id), zap.Error(err))
		return 0, &domain.PersistenceError{Err: err}
	}

	return order.ID, nil
}

func (s *Service) HealthCheck(ctx context.Context) *domain.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()

	if err := s.repo.Ping(ctx); err != nil {
		s.logger.Warn("Health probe", zap.Error(err))
		return &domain.HealthStatus{
			Status: domain.HealthStatusDegraded,
			DB:     "error",
			Error:  err.Error(),
		}
	}

	return &domain.HealthStatus{
		Status: domain.HealthStatusOK,
		DB:     "ok",
	}
}

// parseListLimit falls back to the default on unparsable input and clamps
// the result to [MinListLimit, MaxListLimit].
func parseListLimit(limitParam string) int {
	limit, err := strconv.Atoi(limitParam)
	if err != nil {
		return DefaultListLimit
	}
	if limit < MinListLimit {
		return MinListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
