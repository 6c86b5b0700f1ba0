package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// OrderPlacedEvent is emitted when a customer places an order.
type OrderPlacedEvent struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	ProductID  string    `json:"product_id"`
	Quantity   int       `json:"quantity"`
	PlacedAt   time.Time `json:"placed_at"`
}

// OrderPlacedV1 is the typed event definition for order placement.
// Subject: events.order.v1.order-placed
var OrderPlacedV1 = helper.EventDefinition[OrderPlacedEvent](
	"order", "OrderPlaced", "v1",
)

// OrderConfirmedEvent is emitted when an order moves to confirmed.
type OrderConfirmedEvent struct {
	OrderID     string    `json:"order_id"`
	CustomerID  string    `json:"customer_id"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// OrderConfirmedV1 is the typed event definition for order confirmation.
// Subject: events.order.v1.order-confirmed
var OrderConfirmedV1 = helper.EventDefinition[OrderConfirmedEvent](
	"order", "OrderConfirmed", "v1",
)

// OrderCancelledEvent is emitted when the owning customer cancels an order.
type OrderCancelledEvent struct {
	OrderID     string    `json:"order_id"`
	CustomerID  string    `json:"customer_id"`
	CancelledAt time.Time `json:"cancelled_at"`
}

// OrderCancelledV1 is the typed event definition for order cancellation.
// Subject: events.order.v1.order-cancelled
var OrderCancelledV1 = helper.EventDefinition[OrderCancelledEvent](
	"order", "OrderCancelled", "v1",
)

// OrderDeliveredEvent is emitted when an order is delivered.
type OrderDeliveredEvent struct {
	OrderID     string    `json:"order_id"`
	CustomerID  string    `json:"customer_id"`
	DeliveredAt time.Time `json:"delivered_at"`
}

// OrderDeliveredV1 is the typed event definition for order delivery.
// Subject: events.order.v1.order-delivered
var OrderDeliveredV1 = helper.EventDefinition[OrderDeliveredEvent](
	"order", "OrderDelivered", "v1",
)
