package catalog

import (
	"context"
	"fmt"
	"time"

	domain "github.com/example/food-ordering/domain/product"
	"github.com/google/uuid"
)

// Service implements the product catalog operations. The owner id is the
// single privileged identity, injected at startup and never changed.
type Service struct {
	repo    *Repository
	ownerID string
}

// NewService creates a catalog service.
func NewService(repo *Repository, ownerID string) *Service {
	return &Service{repo: repo, ownerID: ownerID}
}

// LookupProduct returns the product with the given id.
func (s *Service) LookupProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.FindByID(ctx, id)
}

// ListProducts returns all products. Order is not contractual.
func (s *Service) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

// AddProduct validates the payload, generates a fresh id and inserts the
// record. A price or quantity of exactly zero is rejected the same way a
// missing field is; callers cannot distinguish the two.
func (s *Service) AddProduct(ctx context.Context, name, description string, price int64, quantity int) (*domain.Product, error) {
	if name == "" || description == "" || price == 0 || quantity == 0 {
		return nil, ErrInvalidInput
	}

	id := uuid.New().String()
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check product id: %w", err)
	}
	if exists {
		return nil, ErrDuplicateID
	}

	now := time.Now()
	product := &domain.Product{
		ID:                id,
		Name:              name,
		Description:       description,
		Price:             price,
		QuantityAvailable: quantity,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return product, nil
}

// UpdateQuantity replaces the stored quantity of a product. Only the
// deployment owner may call it.
func (s *Service) UpdateQuantity(ctx context.Context, productID string, quantity int, callerID string) (*domain.Product, error) {
	if productID == "" {
		return nil, ErrInvalidInput
	}

	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if callerID != s.ownerID {
		return nil, ErrUnauthorized
	}

	product.QuantityAvailable = quantity
	product.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

// AdjustQuantity adds delta (which may be negative) to the stored quantity
// and writes the record back. Order placement uses it to decrement stock;
// there is no floor check, so the quantity can go negative.
func (s *Service) AdjustQuantity(ctx context.Context, productID string, delta int) (*domain.Product, error) {
	if productID == "" {
		return nil, ErrInvalidInput
	}

	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.QuantityAvailable += delta
	product.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to adjust product quantity: %w", err)
	}
	return product, nil
}
