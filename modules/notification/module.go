package notification

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/example/food-ordering/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// NotificationLog represents a logged notification.
type NotificationLog struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Channel   string    `json:"channel"`
	Timestamp time.Time `json:"timestamp"`
}

// Module handles notifications as a driven adapter. It subscribes to the
// order and catalog domain events and appends to an in-memory log; a real
// deployment would fan out to email or push channels from here.
type Module struct {
	notifications []NotificationLog
	mu            sync.RWMutex
}

var _ mono.Module = (*Module)(nil)
var _ mono.EventConsumerModule = (*Module)(nil)

// NewModule creates a new notification module.
func NewModule() *Module {
	return &Module{notifications: make([]NotificationLog, 0)}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "notification"
}

// RegisterEventConsumers subscribes to the domain events.
func (m *Module) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.OrderPlacedV1, m.handleOrderPlaced, m); err != nil {
		return fmt.Errorf("failed to register OrderPlaced consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.OrderConfirmedV1, m.handleOrderConfirmed, m); err != nil {
		return fmt.Errorf("failed to register OrderConfirmed consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.OrderCancelledV1, m.handleOrderCancelled, m); err != nil {
		return fmt.Errorf("failed to register OrderCancelled consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.OrderDeliveredV1, m.handleOrderDelivered, m); err != nil {
		return fmt.Errorf("failed to register OrderDelivered consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.ProductAddedV1, m.handleProductAdded, m); err != nil {
		return fmt.Errorf("failed to register ProductAdded consumer: %w", err)
	}
	if err := helper.RegisterTypedEventConsumer(registry, events.ReviewAddedV1, m.handleReviewAdded, m); err != nil {
		return fmt.Errorf("failed to register ReviewAdded consumer: %w", err)
	}

	log.Printf("[notification] Registered event consumers: OrderPlaced, OrderConfirmed, OrderCancelled, OrderDelivered, ProductAdded, ReviewAdded")
	return nil
}

func (m *Module) handleOrderPlaced(_ context.Context, event events.OrderPlacedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Order placed: %s by customer %s", event.OrderID, event.CustomerID)
	m.logNotification(event.OrderID, "order_placed",
		fmt.Sprintf("Order %s placed: %d x product %s", event.OrderID, event.Quantity, event.ProductID))
	return nil
}

func (m *Module) handleOrderConfirmed(_ context.Context, event events.OrderConfirmedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Order confirmed: %s", event.OrderID)
	m.logNotification(event.OrderID, "order_confirmed",
		fmt.Sprintf("Order %s confirmed for customer %s", event.OrderID, event.CustomerID))
	return nil
}

func (m *Module) handleOrderCancelled(_ context.Context, event events.OrderCancelledEvent, _ *mono.Msg) error {
	log.Printf("[notification] Order cancelled: %s by customer %s", event.OrderID, event.CustomerID)
	m.logNotification(event.OrderID, "order_cancelled",
		fmt.Sprintf("Order %s cancelled", event.OrderID))
	return nil
}

func (m *Module) handleOrderDelivered(_ context.Context, event events.OrderDeliveredEvent, _ *mono.Msg) error {
	log.Printf("[notification] Order delivered: %s", event.OrderID)
	m.logNotification(event.OrderID, "order_delivered",
		fmt.Sprintf("Order %s delivered to customer %s", event.OrderID, event.CustomerID))
	return nil
}

func (m *Module) handleProductAdded(_ context.Context, event events.ProductAddedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Product added: %s - %s", event.ProductID, event.Name)
	m.logNotification(event.ProductID, "product_added",
		fmt.Sprintf("New product '%s' available (%d in stock)", event.Name, event.QuantityAvailable))
	return nil
}

func (m *Module) handleReviewAdded(_ context.Context, event events.ReviewAddedEvent, _ *mono.Msg) error {
	log.Printf("[notification] Review added: %s for product %s", event.ReviewID, event.ProductID)
	m.logNotification(event.ReviewID, "review_added",
		fmt.Sprintf("Product %s rated %d by customer %s", event.ProductID, event.Rating, event.CustomerID))
	return nil
}

func (m *Module) logNotification(id, notificationType, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.notifications = append(m.notifications, NotificationLog{
		ID:        id,
		Type:      notificationType,
		Message:   message,
		Channel:   "event",
		Timestamp: time.Now(),
	})
}

// GetNotifications returns a snapshot of the notification log.
func (m *Module) GetNotifications() []NotificationLog {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]NotificationLog, len(m.notifications))
	copy(result, m.notifications)
	return result
}

// Start initializes the module.
func (m *Module) Start(_ context.Context) error {
	log.Println("[notification] Module started - listening for order and catalog events")
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[notification] Module stopped")
	return nil
}
