package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	domain "github.com/example/food-ordering/domain/cart"
	"github.com/example/food-ordering/modules/catalog"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/redis/go-redis/v9"
)

// Module provides the per-customer cart services. With REDIS_ADDR set the
// carts live in Redis; otherwise an in-process store is used.
type Module struct {
	redisAddr   string
	prefix      string
	store       Store
	redisStore  *RedisStore
	service     *Service
	catalogPort catalog.CatalogPort
}

var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.DependentModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new cart module. An empty redisAddr selects the
// in-process store.
func NewModule(redisAddr, prefix string) *Module {
	return &Module{redisAddr: redisAddr, prefix: prefix}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "cart"
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

// RegisterServices registers the cart request-reply services.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "add-cart-item", json.Unmarshal, json.Marshal, m.addItem,
	); err != nil {
		return fmt.Errorf("failed to register add-cart-item service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-cart", json.Unmarshal, json.Marshal, m.getCart,
	); err != nil {
		return fmt.Errorf("failed to register get-cart service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "clear-cart", json.Unmarshal, json.Marshal, m.clearCart,
	); err != nil {
		return fmt.Errorf("failed to register clear-cart service: %w", err)
	}

	log.Printf("[cart] Registered services: add-cart-item, get-cart, clear-cart")
	return nil
}

// addItem handles the add-cart-item service request.
func (m *Module) addItem(ctx context.Context, req AddItemRequest, _ *mono.Msg) (CartResponse, error) {
	c, err := m.service.AddItem(ctx, req.CustomerID, req.ProductID, req.Quantity)
	if err != nil {
		if code := failureCode(err); code != "" {
			return CartResponse{Error: code}, nil
		}
		return CartResponse{}, err
	}
	return toCartResponse(c), nil
}

// getCart handles the get-cart service request.
func (m *Module) getCart(ctx context.Context, req GetCartRequest, _ *mono.Msg) (CartResponse, error) {
	c, err := m.service.GetCart(ctx, req.CustomerID)
	if err != nil {
		if code := failureCode(err); code != "" {
			return CartResponse{Error: code}, nil
		}
		return CartResponse{}, err
	}
	return toCartResponse(c), nil
}

// clearCart handles the clear-cart service request.
func (m *Module) clearCart(ctx context.Context, req ClearCartRequest, _ *mono.Msg) (ClearCartResponse, error) {
	if err := m.service.Clear(ctx, req.CustomerID); err != nil {
		if code := failureCode(err); code != "" {
			return ClearCartResponse{Error: code}, nil
		}
		return ClearCartResponse{}, err
	}
	return ClearCartResponse{Cleared: true}, nil
}

// Start opens the cart store and wires the service.
func (m *Module) Start(ctx context.Context) error {
	if m.catalogPort == nil {
		return fmt.Errorf("catalogPort dependency not set")
	}

	if m.redisAddr == "" {
		m.store = NewMemoryStore()
		log.Println("[cart] Module started with in-process store")
	} else {
		client := redis.NewClient(&redis.Options{Addr: m.redisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to Redis at %s: %w", m.redisAddr, err)
		}
		m.redisStore = NewRedisStore(client, m.prefix)
		m.store = m.redisStore
		log.Printf("[cart] Module started with Redis store (%s)", m.redisAddr)
	}

	m.service = NewService(m.store, m.catalogPort)
	return nil
}

// Stop closes the cart store.
func (m *Module) Stop(_ context.Context) error {
	if m.redisStore != nil {
		m.redisStore.Close()
	}
	log.Println("[cart] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *Module) Health(ctx context.Context) mono.HealthStatus {
	if m.redisStore == nil {
		return mono.HealthStatus{
			Healthy: m.store != nil,
			Message: "operational",
			Details: map[string]any{"backend": "memory"},
		}
	}

	if err := m.redisStore.Ping(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("redis ping failed: %v", err),
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{"backend": "redis", "addr": m.redisAddr},
	}
}

// toCartResponse converts a domain Cart to its wire shape.
func toCartResponse(c *domain.Cart) CartResponse {
	items := make([]ItemRecord, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, ItemRecord{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return CartResponse{
		CustomerID: c.CustomerID,
		Items:      items,
		ItemCount:  c.ItemCount(),
		UpdatedAt:  c.UpdatedAt,
	}
}
