package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	domain "github.com/example/food-ordering/domain/cart"
	"github.com/redis/go-redis/v9"
)

// Store persists one cart per customer. Carts survive restarts the way a
// browser-local cart survives reloads.
type Store interface {
	Load(ctx context.Context, customerID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, customerID string) error
}

// RedisStore keeps carts in Redis as JSON values under a key prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed cart store.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// Load returns the customer's cart, or an empty cart when none is stored.
func (s *RedisStore) Load(ctx context.Context, customerID string) (*domain.Cart, error) {
	data, err := s.client.Get(ctx, s.prefix+customerID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return &domain.Cart{CustomerID: customerID}, nil
		}
		return nil, fmt.Errorf("cart load error: %w", err)
	}

	var c domain.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("cart unmarshal error: %w", err)
	}
	return &c, nil
}

// Save stores the cart without an expiry; carts live until cleared.
func (s *RedisStore) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("cart marshal error: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+cart.CustomerID, data, 0).Err(); err != nil {
		return fmt.Errorf("cart save error: %w", err)
	}
	return nil
}

// Delete removes the customer's cart.
func (s *RedisStore) Delete(ctx context.Context, customerID string) error {
	if err := s.client.Del(ctx, s.prefix+customerID).Err(); err != nil {
		return fmt.Errorf("cart delete error: %w", err)
	}
	return nil
}

// Ping checks the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// MemoryStore is an in-process Store used when no Redis address is
// configured, and by tests.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

// NewMemoryStore creates an empty in-memory cart store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]*domain.Cart)}
}

func (s *MemoryStore) Load(_ context.Context, customerID string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, found := s.carts[customerID]
	if !found {
		return &domain.Cart{CustomerID: customerID}, nil
	}

	clone := *c
	clone.Items = append([]domain.Item(nil), c.Items...)
	return &clone, nil
}

func (s *MemoryStore) Save(_ context.Context, cart *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *cart
	clone.Items = append([]domain.Item(nil), cart.Items...)
	s.carts[cart.CustomerID] = &clone
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, customerID)
	return nil
}
