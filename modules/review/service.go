package review

import (
	"context"
	"fmt"
	"time"

	domain "github.com/example/food-ordering/domain/review"
	"github.com/google/uuid"
)

// Service implements the customer interaction operations.
type Service struct {
	repo *Repository
}

// NewService creates a review service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Add inserts a new review for a product, stamped with the caller and the
// current time. A rating of zero is rejected the same way a missing field
// is. No rating-range check is performed, and the product is not required
// to exist: referential integrity is the caller's concern.
func (s *Service) Add(ctx context.Context, productID string, rating int, text, callerID string) (*domain.Review, error) {
	if productID == "" || rating == 0 || text == "" {
		return nil, ErrInvalidInput
	}

	rev := &domain.Review{
		ID:         uuid.New().String(),
		CustomerID: callerID,
		ProductID:  productID,
		Rating:     rating,
		Review:     text,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Insert(ctx, rev); err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}
	return rev, nil
}

// ListByProduct returns all reviews referencing the given product.
func (s *Service) ListByProduct(ctx context.Context, productID string) ([]*domain.Review, error) {
	if productID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.FindByProduct(ctx, productID)
}
