package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	domain "github.com/example/food-ordering/domain/order"
	"github.com/example/food-ordering/modules/kvstore"
)

// errOrderNotFound is internal to the repository; transition guards treat
// a missing order as a false result, not an error.
var errOrderNotFound = errors.New("order not found")

// Repository persists orders as JSON records in a key-value bucket.
type Repository struct {
	bucket kvstore.Bucket
}

// NewRepository creates an order repository over the given bucket.
func NewRepository(bucket kvstore.Bucket) *Repository {
	return &Repository{bucket: bucket}
}

// Save writes an order record, overwriting any existing entry. Status
// transitions go through here so every mutation is an explicit
// read-modify-write against the store.
func (r *Repository) Save(ctx context.Context, o *domain.Order) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}
	return r.bucket.Put(ctx, o.ID, data)
}

// FindByID returns the order with the given id, or errOrderNotFound.
func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	data, err := r.bucket.Get(ctx, id)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, errOrderNotFound
		}
		return nil, err
	}

	var o domain.Order
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}
	return &o, nil
}

// FindByCustomer returns all orders whose CustomerID matches.
func (r *Repository) FindByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	keys, err := r.bucket.Keys(ctx)
	if err != nil {
		return nil, err
	}

	var orders []*domain.Order
	for _, key := range keys {
		o, err := r.FindByID(ctx, key)
		if err != nil {
			if errors.Is(err, errOrderNotFound) {
				continue
			}
			return nil, err
		}
		if o.CustomerID == customerID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}
