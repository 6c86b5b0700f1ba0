package review

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	domain "github.com/example/food-ordering/domain/review"
	"github.com/example/food-ordering/modules/kvstore"
)

// Repository persists reviews as JSON records in a key-value bucket.
// Reviews are insert-only; there is no update or delete path.
type Repository struct {
	bucket kvstore.Bucket
}

// NewRepository creates a review repository over the given bucket.
func NewRepository(bucket kvstore.Bucket) *Repository {
	return &Repository{bucket: bucket}
}

// Insert writes a new review record.
func (r *Repository) Insert(ctx context.Context, rev *domain.Review) error {
	data, err := json.Marshal(rev)
	if err != nil {
		return fmt.Errorf("failed to marshal review: %w", err)
	}
	return r.bucket.Put(ctx, rev.ID, data)
}

// FindByProduct returns all reviews referencing the given product.
func (r *Repository) FindByProduct(ctx context.Context, productID string) ([]*domain.Review, error) {
	keys, err := r.bucket.Keys(ctx)
	if err != nil {
		return nil, err
	}

	var reviews []*domain.Review
	for _, key := range keys {
		data, err := r.bucket.Get(ctx, key)
		if err != nil {
			if errors.Is(err, kvstore.ErrKeyNotFound) {
				continue
			}
			return nil, err
		}

		var rev domain.Review
		if err := json.Unmarshal(data, &rev); err != nil {
			return nil, fmt.Errorf("failed to unmarshal review: %w", err)
		}
		if rev.ProductID == productID {
			reviews = append(reviews, &rev)
		}
	}
	return reviews, nil
}
