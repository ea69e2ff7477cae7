package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/orderdesk/orderdesk/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal: http.StatusInternalServerError,

	domain.ErrBadRequest:     http.StatusBadRequest,
	domain.ErrInvalidOrder:   http.StatusBadRequest,
	domain.ErrInvalidOrderID: http.StatusBadRequest,

	domain.ErrOrderNotFound: http.StatusNotFound,
	domain.ErrDataNotFound:  http.StatusNotFound,
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// jsonDecimal renders a decimal as a bare JSON number instead of a string.
type jsonDecimal decimal.Decimal

func (j jsonDecimal) MarshalJSON() ([]byte, error) {
	s := fmt.Sprintf("%f", decimal.Decimal(j))
	return []byte(s), nil
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError rejects a request that could not be parsed at all
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	var persistenceErr *domain.PersistenceError
	if errors.As(err, &persistenceErr) {
		h.logger.Error("error processing request", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, errorResponse{
			Error:  "Unexpected error",
			Detail: persistenceErr.Err.Error(),
		})
		return
	}

	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
		ctx.JSON(statusCode, errorResponse{Error: "Unexpected error", Detail: err.Error()})
		return
	}
	ctx.JSON(statusCode, errorResponse{Error: err.Error()})
}

// handleSuccess sends a success response with the specified status code and data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	ctx.JSON(status, data)
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
