package order

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/food-ordering/events"
	"github.com/example/food-ordering/modules/catalog"
	"github.com/example/food-ordering/modules/kvstore"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Module provides the order lifecycle services (core domain).
type Module struct {
	kv          *kvstore.Module
	service     *Service
	catalogPort catalog.CatalogPort
	eventBus    mono.EventBus
	ownerID     string
}

var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.DependentModule = (*Module)(nil)
var _ mono.EventEmitterModule = (*Module)(nil)

// NewModule creates a new order module. ownerID is the single privileged
// identity allowed to deliver orders.
func NewModule(kv *kvstore.Module, ownerID string) *Module {
	return &Module{kv: kv, ownerID: ownerID}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "order"
}

// Dependencies returns the list of module dependencies.
func (m *Module) Dependencies() []string {
	return []string{"catalog"}
}

// SetDependencyServiceContainer receives service containers from
// dependencies.
func (m *Module) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	if dependency == "catalog" {
		m.catalogPort = catalog.NewCatalogAdapter(container)
	}
}

// SetEventBus receives the EventBus from the framework.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.OrderPlacedV1.ToBase(),
		events.OrderConfirmedV1.ToBase(),
		events.OrderCancelledV1.ToBase(),
		events.OrderDeliveredV1.ToBase(),
	}
}

// RegisterServices registers the order request-reply services.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "place-order", json.Unmarshal, json.Marshal, m.placeOrder,
	); err != nil {
		return fmt.Errorf("failed to register place-order service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "cancel-order", json.Unmarshal, json.Marshal, m.cancelOrder,
	); err != nil {
		return fmt.Errorf("failed to register cancel-order service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "confirm-order", json.Unmarshal, json.Marshal, m.confirmOrder,
	); err != nil {
		return fmt.Errorf("failed to register confirm-order service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "deliver-order", json.Unmarshal, json.Marshal, m.deliverOrder,
	); err != nil {
		return fmt.Errorf("failed to register deliver-order service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-orders", json.Unmarshal, json.Marshal, m.listOrders,
	); err != nil {
		return fmt.Errorf("failed to register list-orders service: %w", err)
	}

	log.Printf("[order] Registered services: place-order, cancel-order, confirm-order, deliver-order, list-orders")
	return nil
}

// Start wires the repository to the orders bucket.
func (m *Module) Start(_ context.Context) error {
	if m.catalogPort == nil {
		return fmt.Errorf("catalogPort dependency not set")
	}

	bucket := m.kv.Bucket(kvstore.OrdersBucket)
	if bucket == nil {
		return fmt.Errorf("orders bucket not available")
	}
	m.service = NewService(NewRepository(bucket), m.catalogPort, m.ownerID)

	if m.eventBus == nil {
		log.Println("[order] Warning: eventBus not set, events will not be published")
	}
	log.Println("[order] Module started (depends on: catalog)")
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[order] Module stopped")
	return nil
}
