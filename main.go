package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/example/food-ordering/modules/api"
	"github.com/example/food-ordering/modules/cart"
	"github.com/example/food-ordering/modules/catalog"
	"github.com/example/food-ordering/modules/customer"
	"github.com/example/food-ordering/modules/kvstore"
	"github.com/example/food-ordering/modules/notification"
	"github.com/example/food-ordering/modules/order"
	"github.com/example/food-ordering/modules/review"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Food Ordering Service ===")

	natsURL := getEnv("NATS_URL", "")
	redisAddr := getEnv("REDIS_ADDR", "")
	ownerID := getEnv("SHOP_OWNER_ID", "owner")
	httpPort := getEnvInt("HTTP_PORT", 3000)

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	kv := kvstore.NewModule(natsURL)

	// Register modules with the framework.
	// The framework automatically handles:
	// - ServiceProviderModule.RegisterServices() for request-reply services
	// - DependentModule.SetDependencyServiceContainer() for cross-module communication
	// - EventBusAwareModule.SetEventBus() for event publishing
	// - EventConsumerModule.RegisterEventConsumers() for event subscriptions
	//
	// Order: independent modules first, then modules with dependencies
	app.Register(kv)                             // Storage (no dependencies)
	app.Register(customer.NewModule())           // Accounts and caller identity
	app.Register(notification.NewModule())       // Driven adapter (event consumer)
	app.Register(catalog.NewModule(kv, ownerID)) // Core domain (emits ProductAdded)
	app.Register(review.NewModule(kv))           // Core domain (emits ReviewAdded)
	app.Register(order.NewModule(kv, ownerID))   // Core domain (depends on catalog)
	app.Register(cart.NewModule(redisAddr, "cart"))
	app.Register(api.NewModule(httpPort)) // Driving adapter (Fiber HTTP server)

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(httpPort)

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

// getEnv returns the environment variable or a default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt returns the environment variable as an int or a default.
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func printStartupInfo(port int) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("REST API Endpoints (http://localhost:%d):", port)
	log.Println("  POST   /api/v1/auth/register          - Create an account")
	log.Println("  POST   /api/v1/auth/login             - Login, returns JWT pair")
	log.Println("  POST   /api/v1/auth/refresh           - Rotate tokens")
	log.Println("  GET    /api/v1/auth/me                - Current account (auth)")
	log.Println("  GET    /api/v1/products               - List products")
	log.Println("  GET    /api/v1/products/:id           - Get a product")
	log.Println("  POST   /api/v1/products               - Add a product (auth)")
	log.Println("  PUT    /api/v1/products/:id/quantity  - Set stock level (owner)")
	log.Println("  GET    /api/v1/products/:id/reviews   - List reviews")
	log.Println("  POST   /api/v1/products/:id/reviews   - Add a review (auth)")
	log.Println("  POST   /api/v1/orders                 - Place an order (auth)")
	log.Println("  GET    /api/v1/orders                 - List own orders (auth)")
	log.Println("  POST   /api/v1/orders/:id/cancel      - Cancel a placed order (auth)")
	log.Println("  POST   /api/v1/orders/:id/confirm     - Confirm a placed order (auth)")
	log.Println("  POST   /api/v1/orders/:id/deliver     - Deliver a confirmed order (owner)")
	log.Println("  GET    /api/v1/cart                   - Get cart (auth)")
	log.Println("  POST   /api/v1/cart/items             - Add cart item (auth)")
	log.Println("  DELETE /api/v1/cart                   - Clear cart (auth)")
	log.Println("  GET    /health                        - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
