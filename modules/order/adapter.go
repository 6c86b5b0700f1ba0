package order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// orderAdapter wraps ServiceContainer for type-safe cross-module
// communication. This is the adapter that implements the OrderPort.
type orderAdapter struct {
	container mono.ServiceContainer
}

// NewOrderAdapter creates a new adapter for order services.
func NewOrderAdapter(container mono.ServiceContainer) OrderPort {
	if container == nil {
		panic("order adapter requires non-nil ServiceContainer")
	}
	return &orderAdapter{container: container}
}

// PlaceOrder creates an order via the place-order service.
func (a *orderAdapter) PlaceOrder(ctx context.Context, req *PlaceOrderRequest) (*OrderResponse, error) {
	var resp OrderResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "place-order",
		json.Marshal, json.Unmarshal,
		req, &resp,
	); err != nil {
		return nil, fmt.Errorf("place-order service call failed: %w", err)
	}
	return &resp, nil
}

// CancelOrder cancels an order via the cancel-order service.
func (a *orderAdapter) CancelOrder(ctx context.Context, orderID, callerID string) (*TransitionResponse, error) {
	req := TransitionRequest{OrderID: orderID, CallerID: callerID}
	var resp TransitionResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "cancel-order",
		json.Marshal, json.Unmarshal,
		&req, &resp,
	); err != nil {
		return nil, fmt.Errorf("cancel-order service call failed: %w", err)
	}
	return &resp, nil
}

// ConfirmOrder confirms an order via the confirm-order service.
func (a *orderAdapter) ConfirmOrder(ctx context.Context, orderID string) (*TransitionResponse, error) {
	req := TransitionRequest{OrderID: orderID}
	var resp TransitionResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "confirm-order",
		json.Marshal, json.Unmarshal,
		&req, &resp,
	); err != nil {
		return nil, fmt.Errorf("confirm-order service call failed: %w", err)
	}
	return &resp, nil
}

// DeliverOrder delivers an order via the deliver-order service.
func (a *orderAdapter) DeliverOrder(ctx context.Context, orderID, callerID string) (*TransitionResponse, error) {
	req := TransitionRequest{OrderID: orderID, CallerID: callerID}
	var resp TransitionResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "deliver-order",
		json.Marshal, json.Unmarshal,
		&req, &resp,
	); err != nil {
		return nil, fmt.Errorf("deliver-order service call failed: %w", err)
	}
	return &resp, nil
}

// ListOrders lists a customer's orders via the list-orders service.
func (a *orderAdapter) ListOrders(ctx context.Context, customerID string) (*ListOrdersResponse, error) {
	req := ListOrdersRequest{CustomerID: customerID}
	var resp ListOrdersResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-orders",
		json.Marshal, json.Unmarshal,
		&req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-orders service call failed: %w", err)
	}
	return &resp, nil
}
