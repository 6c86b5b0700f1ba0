package kvstore

import (
	"context"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
)

// Bucket names for the three record collections.
const (
	ProductsBucket = "products"
	OrdersBucket   = "orders"
	ReviewsBucket  = "reviews"
)

var bucketDescriptions = map[string]string{
	ProductsBucket: "product catalog records",
	OrdersBucket:   "customer order records",
	ReviewsBucket:  "customer review records",
}

// Module owns the key-value storage backend and hands out buckets to the
// catalog, order and review modules. With NATS_URL set it uses JetStream KV;
// otherwise it falls back to in-process buckets.
type Module struct {
	natsURL string
	store   *JetStreamStore
	buckets map[string]Bucket
}

// Compile-time interface checks.
var _ mono.Module = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new kvstore module. An empty natsURL selects the
// in-process backend.
func NewModule(natsURL string) *Module {
	return &Module{
		natsURL: natsURL,
		buckets: make(map[string]Bucket),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "kvstore"
}

// Start opens the backend and prepares the collection buckets.
func (m *Module) Start(ctx context.Context) error {
	if m.natsURL == "" {
		for name := range bucketDescriptions {
			m.buckets[name] = NewMemoryBucket()
		}
		log.Println("[kvstore] Module started with in-process buckets")
		return nil
	}

	store, err := NewJetStreamStore(m.natsURL)
	if err != nil {
		return fmt.Errorf("failed to open JetStream store: %w", err)
	}
	m.store = store

	for name, description := range bucketDescriptions {
		bucket, err := store.Bucket(ctx, name, description)
		if err != nil {
			store.Close()
			return err
		}
		m.buckets[name] = bucket
	}

	log.Printf("[kvstore] Module started with JetStream KV (%s)", m.natsURL)
	return nil
}

// Stop closes the backend connection.
func (m *Module) Stop(_ context.Context) error {
	if m.store != nil {
		m.store.Close()
	}
	log.Println("[kvstore] Module stopped")
	return nil
}

// Bucket returns the named collection bucket, or nil before Start or for
// an unknown name.
func (m *Module) Bucket(name string) Bucket {
	return m.buckets[name]
}

// Health returns the health status of the module.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	if m.natsURL == "" {
		return mono.HealthStatus{
			Healthy: len(m.buckets) > 0,
			Message: "operational",
			Details: map[string]any{"backend": "memory"},
		}
	}

	connected := m.store != nil && m.store.IsConnected()
	message := "operational"
	if !connected {
		message = "NATS connection lost"
	}
	return mono.HealthStatus{
		Healthy: connected,
		Message: message,
		Details: map[string]any{"backend": "jetstream", "nats_url": m.natsURL},
	}
}
