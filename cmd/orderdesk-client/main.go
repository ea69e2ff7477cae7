package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/orderdesk/orderdesk/internal/adapter/client/orderapi"
	"go.uber.org/zap"
)

// Demonstration driver: health -> create -> list -> cancel -> list again.
func main() {
	var base string
	flag.StringVar(&base, "a", "http://127.0.0.1:8080", "Order service base URL")
	flag.Parse()

	log := zap.Must(zap.NewDevelopment())
	defer func() { _ = log.Sync() }()

	client := orderapi.NewClient(base, log.Named("Client"))
	ctx := context.Background()

	health, err := client.Health(ctx)
	if err != nil {
		log.Fatal("health check failed", zap.Error(err))
	}
	fmt.Printf("=== GET /health ===\nstatus=%s db=%s %s\n", health.Status, health.DB, health.Error)

	order, err := client.CreateOrder(ctx, orderapi.OrderDraft{
		Symbol:   "AAPL",
		Side:     "BUY",
		Quantity: 15.2,
		Price:    120.5,
	})
	if err != nil {
		log.Fatal("create order failed", zap.Error(err))
	}
	fmt.Printf("=== POST /orders ===\nid=%d status=%s created_at=%s\n",
		order.ID, order.Status, order.CreatedAt)

	orders, err := client.ListOrders(ctx, 10)
	if err != nil {
		log.Fatal("list orders failed", zap.Error(err))
	}
	fmt.Printf("=== GET /orders?limit=10 ===\n")
	for _, o := range orders {
		fmt.Printf("  #%d %s %s %v @ %v [%s]\n", o.ID, o.Symbol, o.Side, o.Quantity, o.Price, o.Status)
	}

	canceled, err := client.CancelOrder(ctx, order.ID)
	if err != nil {
		log.Fatal("cancel order failed", zap.Error(err))
	}
	fmt.Printf("=== DELETE /orders/%d ===\nstatus=%s id=%d\n", order.ID, canceled.Status, canceled.ID)

	orders, err = client.ListOrders(ctx, 10)
	if err != nil {
		log.Fatal("list orders failed", zap.Error(err))
	}
	fmt.Printf("=== GET /orders?limit=10 (after delete) ===\n")
	for _, o := range orders {
		fmt.Printf("  #%d %s %s %v @ %v [%s]\n", o.ID, o.Symbol, o.Side, o.Quantity, o.Price, o.Status)
	}
}
