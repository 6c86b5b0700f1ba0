package cart

import (
	"context"
	"time"
)

// ItemRecord is the wire shape of a cart line.
type ItemRecord struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// AddItemRequest is the request for adding a product to a cart.
type AddItemRequest struct {
	CustomerID string `json:"customer_id"`
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
}

// GetCartRequest is the request for reading a customer's cart.
type GetCartRequest struct {
	CustomerID string `json:"customer_id"`
}

// ClearCartRequest is the request for emptying a customer's cart.
type ClearCartRequest struct {
	CustomerID string `json:"customer_id"`
}

// CartResponse carries a cart or a failure reason code. ItemCount is the
// total quantity across all lines (the badge count).
type CartResponse struct {
	CustomerID string       `json:"customer_id,omitempty"`
	Items      []ItemRecord `json:"items,omitempty"`
	ItemCount  int          `json:"item_count"`
	UpdatedAt  time.Time    `json:"updated_at"`
	Error      string       `json:"error,omitempty"`
}

// ClearCartResponse reports whether the cart was cleared.
type ClearCartResponse struct {
	Cleared bool   `json:"cleared"`
	Error   string `json:"error,omitempty"`
}

// CartPort defines the interface the API uses to reach the cart
// (hexagonal port).
type CartPort interface {
	AddItem(ctx context.Context, req *AddItemRequest) (*CartResponse, error)
	GetCart(ctx context.Context, customerID string) (*CartResponse, error)
	ClearCart(ctx context.Context, customerID string) (*ClearCartResponse, error)
}
