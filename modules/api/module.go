package api

import (
	"context"
	"fmt"
	"log"

	"github.com/example/food-ordering/modules/cart"
	"github.com/example/food-ordering/modules/catalog"
	"github.com/example/food-ordering/modules/customer"
	"github.com/example/food-ordering/modules/order"
	"github.com/example/food-ordering/modules/review"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// APIModule is the driving adapter that exposes REST endpoints. It calls
// into the core modules via their port interfaces.
type APIModule struct {
	app  *fiber.App
	port int

	customerAdapter customer.CustomerPort
	catalogAdapter  catalog.CatalogPort
	orderAdapter    order.OrderPort
	reviewAdapter   review.ReviewPort
	cartAdapter     cart.CartPort
}

// Compile-time interface checks.
var _ mono.Module = (*APIModule)(nil)
var _ mono.DependentModule = (*APIModule)(nil)
var _ mono.HealthCheckableModule = (*APIModule)(nil)

// NewModule creates a new APIModule listening on the given port.
func NewModule(port int) *APIModule {
	return &APIModule{port: port}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"customer", "catalog", "order", "review", "cart"}
}

// SetDependencyServiceContainer receives service containers from
// dependencies and wraps each in its typed adapter.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "customer":
		m.customerAdapter = customer.NewCustomerAdapter(container)
	case "catalog":
		m.catalogAdapter = catalog.NewCatalogAdapter(container)
	case "order":
		m.orderAdapter = order.NewOrderAdapter(container)
	case "review":
		m.reviewAdapter = review.NewReviewAdapter(container)
	case "cart":
		m.cartAdapter = cart.NewCartAdapter(container)
	}
}

// Start initializes the Fiber HTTP server.
func (m *APIModule) Start(_ context.Context) error {
	if m.customerAdapter == nil || m.catalogAdapter == nil || m.orderAdapter == nil ||
		m.reviewAdapter == nil || m.cartAdapter == nil {
		return fmt.Errorf("api module dependencies not set")
	}

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})

	m.app.Use(recover.New())

	m.setupRoutes()

	// Server availability is verified via Health().
	go func() {
		if err := m.app.Listen(fmt.Sprintf(":%d", m.port)); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()

	log.Printf("[api] HTTP server started on :%d", m.port)
	return nil
}

// Stop shuts down the Fiber HTTP server.
func (m *APIModule) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"port": m.port,
		},
	}
}

// customErrorHandler handles Fiber errors.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "server_error",
		Message: message,
	})
}
