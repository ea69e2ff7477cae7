package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/orderdesk/orderdesk/internal/adapter/config"
	handler "github.com/orderdesk/orderdesk/internal/adapter/handler/http"
	"github.com/orderdesk/orderdesk/internal/core/domain"
	"github.com/orderdesk/orderdesk/internal/core/port/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, svc *mock.MockService) *handler.Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, _ := zap.NewProduction()

	orderHandler, err := handler.NewOrderHandler(svc, logger)
	assert.NoError(t, err)
	healthHandler, err := handler.NewHealthHandler(svc, logger)
	assert.NoError(t, err)

	router, err := handler.NewRouter(&config.HTTP{}, orderHandler, healthHandler, logger)
	assert.NoError(t, err)

	return router
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	created := domain.Order{
		ID:        12,
		Symbol:    "AAPL",
		Side:      domain.OrderSideBuy,
		Quantity:  decimal.MustParse("15.2"),
		Price:     decimal.MustParse("120.5"),
		Status:    domain.OrderStatusNew,
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("created", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&created, nil)

		router := newTestRouter(t, svc)

		body := `{"symbol":"AAPL","side":"BUY","quantity":15.2,"price":120.5}`
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/orders/12", rec.Header().Get("Location"))

		var resp map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.EqualValues(t, 12, resp["id"])
		assert.Equal(t, "AAPL", resp["symbol"])
		assert.Equal(t, "BUY", resp["side"])
		assert.EqualValues(t, 15.2, resp["quantity"])
		assert.EqualValues(t, 120.5, resp["price"])
		assert.Equal(t, "NEW", resp["status"])
		assert.NotEmpty(t, resp["created_at"])
	})

	t.Run("malformed JSON rejected before the service", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		router := newTestRouter(t, svc)

		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"symbol":`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid JSON body", resp["error"])
	})

	t.Run("invalid order", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrInvalidOrder)

		router := newTestRouter(t, svc)

		body := `{"symbol":"AAPL","side":"HOLD","quantity":15.2,"price":120.5}`
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp["error"], "Invalid order")
	})

	t.Run("store failure", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, &domain.PersistenceError{Err: errors.New("connection refused")})

		router := newTestRouter(t, svc)

		body := `{"symbol":"AAPL","side":"BUY","quantity":15.2,"price":120.5}`
		req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Unexpected error", resp["error"])
		assert.Equal(t, "connection refused", resp["detail"])
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("newest first, limit passed through", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().ListOrders(gomock.Any(), "10").
			Return([]*domain.Order{
				{ID: 2, Symbol: "AAPL", Side: domain.OrderSideBuy,
					Quantity: decimal.One, Price: decimal.One, Status: domain.OrderStatusNew},
				{ID: 1, Symbol: "MSFT", Side: domain.OrderSideSell,
					Quantity: decimal.One, Price: decimal.One, Status: domain.OrderStatusNew},
			}, nil)

		router := newTestRouter(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/orders?limit=10", http.NoBody)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp, 2)
		assert.EqualValues(t, 2, resp[0]["id"])
		assert.EqualValues(t, 1, resp[1]["id"])
	})

	t.Run("empty store yields empty array", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().ListOrders(gomock.Any(), "").
			Return([]*domain.Order{}, nil)

		router := newTestRouter(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/orders", http.NoBody)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	})

	t.Run("store failure", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().ListOrders(gomock.Any(), "").
			Return(nil, &domain.PersistenceError{Err: errors.New("statement failed")})

		router := newTestRouter(t, svc)

		req := httptest.NewRequest(http.MethodGet, "/orders", http.NoBody)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestOrderHandler_CancelOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("deleted", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().CancelOrder(gomock.Any(), "7").Return(int64(7), nil)

		router := newTestRouter(t, svc)

		req := httptest.NewRequest(http.MethodDelete, "/orders/7", http.NoBody)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "deleted", resp["status"])
		assert.EqualValues(t, 7, resp["id"])
	})

	t.Run("not found", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().CancelOrder(gomock.Any(), "99").
			Return(int64(0), domain.ErrOrderNotFound)

		router := newTestRouter(t, svc)

		req := httptest.NewRequest(http.MethodDelete, "/orders/99", http.NoBody)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Order not found", resp["error"])
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := mock.NewMockService(mockCtrl)
		svc.EXPECT().CancelOrder(gomock.Any(), "abc").
			Return(int64(0), domain.ErrInvalidOrderID)

		router := newTestRouter(t, svc)

		req := httptest.NewRequest(http.MethodDelete, "/orders/abc", http.NoBody)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid id", resp["error"])
	})
}
