package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/example/food-ordering/events"
	"github.com/example/food-ordering/modules/kvstore"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Module provides the product catalog services.
type Module struct {
	kv       *kvstore.Module
	service  *Service
	eventBus mono.EventBus
	ownerID  string
}

var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.EventEmitterModule = (*Module)(nil)

// NewModule creates a new catalog module. ownerID is the single privileged
// identity, injected at startup.
func NewModule(kv *kvstore.Module, ownerID string) *Module {
	return &Module{kv: kv, ownerID: ownerID}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "catalog"
}

// SetEventBus receives the EventBus from the framework.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.ProductAddedV1.ToBase(),
	}
}

// RegisterServices registers the catalog request-reply services.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "add-product", json.Unmarshal, json.Marshal, m.addProduct,
	); err != nil {
		return fmt.Errorf("failed to register add-product service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-product", json.Unmarshal, json.Marshal, m.getProduct,
	); err != nil {
		return fmt.Errorf("failed to register get-product service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-products", json.Unmarshal, json.Marshal, m.listProducts,
	); err != nil {
		return fmt.Errorf("failed to register list-products service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "update-product-quantity", json.Unmarshal, json.Marshal, m.updateQuantity,
	); err != nil {
		return fmt.Errorf("failed to register update-product-quantity service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "adjust-product-quantity", json.Unmarshal, json.Marshal, m.adjustQuantity,
	); err != nil {
		return fmt.Errorf("failed to register adjust-product-quantity service: %w", err)
	}

	log.Printf("[catalog] Registered services: add-product, get-product, list-products, update-product-quantity, adjust-product-quantity")
	return nil
}

// Start wires the repository to the products bucket.
func (m *Module) Start(_ context.Context) error {
	bucket := m.kv.Bucket(kvstore.ProductsBucket)
	if bucket == nil {
		return fmt.Errorf("products bucket not available")
	}
	m.service = NewService(NewRepository(bucket), m.ownerID)

	if m.eventBus == nil {
		log.Println("[catalog] Warning: eventBus not set, events will not be published")
	}
	log.Println("[catalog] Module started")
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[catalog] Module stopped")
	return nil
}
