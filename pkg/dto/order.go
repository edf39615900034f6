package dto

import (
	"encoding/json"
	"math"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dtokit/pkg/validator"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
)

// OrderItem is a quantity of one product within an order.
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity" validate:"gte=1"`
}

func (i OrderItem) Validate() error {
	return validator.Struct(i)
}

// Subtotal is unit price times quantity, rounded to cents.
func (i OrderItem) Subtotal() float64 {
	return round2(i.Product.Price * float64(i.Quantity))
}

func (OrderItem) requiredKeys() []string {
	return []string{"product", "quantity"}
}

type Order struct {
	ID       uuid.UUID   `json:"id"`
	Customer User        `json:"customer"`
	Items    []OrderItem `json:"items" validate:"min=1,dive"`
	Status   OrderStatus `json:"status" validate:"oneof=pending processing shipped delivered"`
}

func (o Order) Validate() error {
	return validator.Struct(o)
}

// Total sums the item subtotals and rounds the sum to cents.
func (o Order) Total() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += item.Subtotal()
	}
	return round2(sum)
}

// ItemCount is the number of units across all items.
func (o Order) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

// UnmarshalJSON treats a missing status as pending.
func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	p := plain{Status: OrderPending}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*o = Order(p)
	return nil
}

func (Order) requiredKeys() []string {
	return []string{"id", "customer", "items"}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
