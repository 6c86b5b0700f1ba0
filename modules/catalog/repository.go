package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	domain "github.com/example/food-ordering/domain/product"
	"github.com/example/food-ordering/modules/kvstore"
)

// Repository persists products as JSON records in a key-value bucket.
type Repository struct {
	bucket kvstore.Bucket
}

// NewRepository creates a product repository over the given bucket.
func NewRepository(bucket kvstore.Bucket) *Repository {
	return &Repository{bucket: bucket}
}

// Save writes a product record, overwriting any existing entry.
func (r *Repository) Save(ctx context.Context, p *domain.Product) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}
	return r.bucket.Put(ctx, p.ID, data)
}

// FindByID returns the product with the given id, or ErrNotFound.
func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	data, err := r.bucket.Get(ctx, id)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var p domain.Product
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product: %w", err)
	}
	return &p, nil
}

// Exists reports whether a product with the given id is stored.
func (r *Repository) Exists(ctx context.Context, id string) (bool, error) {
	_, err := r.bucket.Get(ctx, id)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// FindAll returns every stored product. Iteration order is not part of
// the contract.
func (r *Repository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	keys, err := r.bucket.Keys(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(keys))
	for _, key := range keys {
		p, err := r.FindByID(ctx, key)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}
