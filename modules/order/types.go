package order

import (
	"context"
	"time"
)

// OrderRecord is the wire shape of an order.
type OrderRecord struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	ProductID  string    `json:"product_id"`
	Quantity   int       `json:"quantity"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PlaceOrderRequest is the request for placing an order. CallerID is the
// authenticated customer placing it.
type PlaceOrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	CallerID  string `json:"caller_id"`
}

// OrderResponse carries an order or a failure reason code.
type OrderResponse struct {
	Order *OrderRecord `json:"order,omitempty"`
	Error string       `json:"error,omitempty"`
}

// TransitionRequest is the request for a status transition.
type TransitionRequest struct {
	OrderID  string `json:"order_id"`
	CallerID string `json:"caller_id"`
}

// TransitionResponse reports whether the transition was applied. Guard
// failures are a false value, never an error.
type TransitionResponse struct {
	Updated bool   `json:"updated"`
	Status  string `json:"status,omitempty"`
}

// ListOrdersRequest is the request for listing a customer's orders.
type ListOrdersRequest struct {
	CustomerID string `json:"customer_id"`
}

// ListOrdersResponse is the response for listing a customer's orders.
type ListOrdersResponse struct {
	Orders []OrderRecord `json:"orders"`
	Total  int           `json:"total"`
	Error  string        `json:"error,omitempty"`
}

// OrderPort defines the interface the API uses to drive the order
// lifecycle (hexagonal port).
type OrderPort interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*OrderResponse, error)
	CancelOrder(ctx context.Context, orderID, callerID string) (*TransitionResponse, error)
	ConfirmOrder(ctx context.Context, orderID string) (*TransitionResponse, error)
	DeliverOrder(ctx context.Context, orderID, callerID string) (*TransitionResponse, error)
	ListOrders(ctx context.Context, customerID string) (*ListOrdersResponse, error)
}
