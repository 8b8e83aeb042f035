// internal/models/order_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderTotals(t *testing.T) {
	order := &Order{
		Items: []OrderItem{
			{Price: 10, Quantity: 2},
			{Price: 5, Quantity: 1},
		},
	}

	assert.Equal(t, 3, order.ItemCount())
	assert.InDelta(t, 25.0, order.TotalAmount(), 1e-9)
}

func TestOrderTotalsEmpty(t *testing.T) {
	order := &Order{}

	assert.Equal(t, 0, order.ItemCount())
	assert.Equal(t, 0.0, order.TotalAmount())
}

func TestOrderTotalsUseSnapshotPrices(t *testing.T) {
	product := &Product{Price: 100}
	order := &Order{
		Items: []OrderItem{
			{ProductID: product.ID, Price: product.Price, Quantity: 1, Product: product},
		},
	}

	// A later price change on the product must not leak into the order
	product.Price = 250
	assert.InDelta(t, 100.0, order.TotalAmount(), 1e-9)
}

func TestOrderStatusIsValid(t *testing.T) {
	valid := []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
	for _, status := range valid {
		assert.True(t, status.IsValid(), string(status))
	}

	assert.False(t, OrderStatus("returned").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}
