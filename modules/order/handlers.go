package order

import (
	"context"
	"log"
	"time"

	domain "github.com/example/food-ordering/domain/order"
	"github.com/example/food-ordering/events"
	"github.com/go-monolith/mono"
)

// placeOrder handles the place-order service request.
func (m *Module) placeOrder(ctx context.Context, req PlaceOrderRequest, _ *mono.Msg) (OrderResponse, error) {
	o, err := m.service.Place(ctx, req.ProductID, req.Quantity, req.CallerID)
	if err != nil {
		if code := failureCode(err); code != "" {
			return OrderResponse{Error: code}, nil
		}
		return OrderResponse{}, err
	}

	if m.eventBus != nil {
		event := events.OrderPlacedEvent{
			OrderID:    o.ID,
			CustomerID: o.CustomerID,
			ProductID:  o.ProductID,
			Quantity:   o.Quantity,
			PlacedAt:   o.CreatedAt,
		}
		if err := events.OrderPlacedV1.Publish(m.eventBus, event, nil); err != nil {
			// Event publishing is best-effort; log but don't fail the operation
			log.Printf("[order] Warning: failed to publish OrderPlaced event for %s: %v", o.ID, err)
		}
	}

	return OrderResponse{Order: toOrderRecord(o)}, nil
}

// cancelOrder handles the cancel-order service request.
func (m *Module) cancelOrder(ctx context.Context, req TransitionRequest, _ *mono.Msg) (TransitionResponse, error) {
	o, updated, err := m.service.Cancel(ctx, req.OrderID, req.CallerID)
	if err != nil {
		return TransitionResponse{}, err
	}
	if !updated {
		return transitionResult(o, false), nil
	}

	if m.eventBus != nil {
		event := events.OrderCancelledEvent{
			OrderID:     o.ID,
			CustomerID:  o.CustomerID,
			CancelledAt: o.UpdatedAt,
		}
		if err := events.OrderCancelledV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[order] Warning: failed to publish OrderCancelled event for %s: %v", o.ID, err)
		}
	}
	return transitionResult(o, true), nil
}

// confirmOrder handles the confirm-order service request.
func (m *Module) confirmOrder(ctx context.Context, req TransitionRequest, _ *mono.Msg) (TransitionResponse, error) {
	o, updated, err := m.service.Confirm(ctx, req.OrderID)
	if err != nil {
		return TransitionResponse{}, err
	}
	if !updated {
		return transitionResult(o, false), nil
	}

	if m.eventBus != nil {
		event := events.OrderConfirmedEvent{
			OrderID:     o.ID,
			CustomerID:  o.CustomerID,
			ConfirmedAt: o.UpdatedAt,
		}
		if err := events.OrderConfirmedV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[order] Warning: failed to publish OrderConfirmed event for %s: %v", o.ID, err)
		}
	}
	return transitionResult(o, true), nil
}

// deliverOrder handles the deliver-order service request.
func (m *Module) deliverOrder(ctx context.Context, req TransitionRequest, _ *mono.Msg) (TransitionResponse, error) {
	o, updated, err := m.service.Deliver(ctx, req.OrderID, req.CallerID)
	if err != nil {
		return TransitionResponse{}, err
	}
	if !updated {
		return transitionResult(o, false), nil
	}

	if m.eventBus != nil {
		event := events.OrderDeliveredEvent{
			OrderID:     o.ID,
			CustomerID:  o.CustomerID,
			DeliveredAt: time.Now(),
		}
		if err := events.OrderDeliveredV1.Publish(m.eventBus, event, nil); err != nil {
			log.Printf("[order] Warning: failed to publish OrderDelivered event for %s: %v", o.ID, err)
		}
	}
	return transitionResult(o, true), nil
}

// listOrders handles the list-orders service request.
func (m *Module) listOrders(ctx context.Context, req ListOrdersRequest, _ *mono.Msg) (ListOrdersResponse, error) {
	orders, err := m.service.ListByCustomer(ctx, req.CustomerID)
	if err != nil {
		if code := failureCode(err); code != "" {
			return ListOrdersResponse{Error: code}, nil
		}
		return ListOrdersResponse{}, err
	}

	response := ListOrdersResponse{
		Orders: make([]OrderRecord, 0, len(orders)),
		Total:  len(orders),
	}
	for _, o := range orders {
		response.Orders = append(response.Orders, *toOrderRecord(o))
	}
	return response, nil
}

// transitionResult builds a TransitionResponse, carrying the current
// status when the order exists.
func transitionResult(o *domain.Order, updated bool) TransitionResponse {
	resp := TransitionResponse{Updated: updated}
	if o != nil {
		resp.Status = string(o.Status)
	}
	return resp
}

// toOrderRecord converts a domain Order to its wire shape.
func toOrderRecord(o *domain.Order) *OrderRecord {
	return &OrderRecord{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		ProductID:  o.ProductID,
		Quantity:   o.Quantity,
		Status:     string(o.Status),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
