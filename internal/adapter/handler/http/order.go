package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/orderdesk/orderdesk/internal/core/domain"
	"github.com/orderdesk/orderdesk/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type OrderRequest struct {
	Symbol   string  `json:"symbol"`
	Side     string  `json:"side"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderResp struct {
	ID        int64       `json:"id"`
	Symbol    string      `json:"symbol"`
	Side      string      `json:"side"`
	Quantity  jsonDecimal `json:"quantity"`
	Price     jsonDecimal `json:"price"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

func newOrderResp(o *domain.Order) OrderResp {
	return OrderResp{
		ID:        o.ID,
		Symbol:    o.Symbol,
		Side:      string(o.Side),
		Quantity:  jsonDecimal(o.Quantity),
		Price:     jsonDecimal(o.Price),
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	orderReq := OrderRequest{}
	err := ctx.ShouldBindBodyWithJSON(&orderReq)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	quantity, err := decimal.NewFromFloat64(orderReq.Quantity)
	if err != nil {
		oh.handleError(ctx, domain.ErrInvalidOrder)
		return
	}
	price, err := decimal.NewFromFloat64(orderReq.Price)
	if err != nil {
		oh.handleError(ctx, domain.ErrInvalidOrder)
		return
	}

	draft := &domain.Order{
		Symbol:   orderReq.Symbol,
		Side:     domain.OrderSide(orderReq.Side),
		Quantity: quantity,
		Price:    price,
	}

	order, err := oh.service.CreateOrder(ctx, draft)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	ctx.Header("Location", fmt.Sprintf("/orders/%d", order.ID))
	oh.handleSuccessWithStatus(ctx, newOrderResp(order), http.StatusCreated)
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	list, err := oh.service.ListOrders(ctx, ctx.Query("limit"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]OrderResp, 0, len(list))
	for _, o := range list {
		result = append(result, newOrderResp(o))
	}

	oh.handleSuccess(ctx, result)
}

type cancelResp struct {
	Status string `json:"status"`
	ID     int64  `json:"id"`
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	id, err := oh.service.CancelOrder(ctx, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, cancelResp{Status: "deleted", ID: id})
}
