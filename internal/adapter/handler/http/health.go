package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk/internal/core/port"
	"go.uber.org/zap"
)

type HealthHandler struct {
	Handler
	service port.Service
}

func NewHealthHandler(service port.Service, logger *zap.Logger) (*HealthHandler, error) {
	return &HealthHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

// HealthCheck never fails the request: a broken store yields 503 with the
// degraded payload.
func (hh *HealthHandler) HealthCheck(ctx *gin.Context) {
	health := hh.service.HealthCheck(ctx)

	status := http.StatusOK
	if !health.Healthy() {
		status = http.StatusServiceUnavailable
	}

	hh.handleSuccessWithStatus(ctx, health, status)
}
