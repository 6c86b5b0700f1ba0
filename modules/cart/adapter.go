package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// cartAdapter wraps ServiceContainer for type-safe cross-module
// communication. This is the adapter that implements the CartPort.
type cartAdapter struct {
	container mono.ServiceContainer
}

// NewCartAdapter creates a new adapter for cart services.
func NewCartAdapter(container mono.ServiceContainer) CartPort {
	if container == nil {
		panic("cart adapter requires non-nil ServiceContainer")
	}
	return &cartAdapter{container: container}
}

// AddItem merges a product into a cart via the add-cart-item service.
func (a *cartAdapter) AddItem(ctx context.Context, req *AddItemRequest) (*CartResponse, error) {
	var resp CartResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "add-cart-item",
		json.Marshal, json.Unmarshal,
		req, &resp,
	); err != nil {
		return nil, fmt.Errorf("add-cart-item service call failed: %w", err)
	}
	return &resp, nil
}

// GetCart reads a customer's cart via the get-cart service.
func (a *cartAdapter) GetCart(ctx context.Context, customerID string) (*CartResponse, error) {
	req := GetCartRequest{CustomerID: customerID}
	var resp CartResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-cart",
		json.Marshal, json.Unmarshal,
		&req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get-cart service call failed: %w", err)
	}
	return &resp, nil
}

// ClearCart empties a customer's cart via the clear-cart service.
func (a *cartAdapter) ClearCart(ctx context.Context, customerID string) (*ClearCartResponse, error) {
	req := ClearCartRequest{CustomerID: customerID}
	var resp ClearCartResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "clear-cart",
		json.Marshal, json.Unmarshal,
		&req, &resp,
	); err != nil {
		return nil, fmt.Errorf("clear-cart service call failed: %w", err)
	}
	return &resp, nil
}
