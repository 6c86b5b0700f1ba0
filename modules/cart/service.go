package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/example/food-ordering/domain/cart"
	"github.com/example/food-ordering/modules/catalog"
)

// Sentinel errors for cart operations.
var (
	// ErrInvalidInput is returned when a required field is missing or zero.
	ErrInvalidInput = errors.New("invalid input")

	// ErrProductNotFound is returned when the product being added does
	// not exist in the catalog.
	ErrProductNotFound = errors.New("product not found")
)

// Failure reason codes carried in responses across the service container.
const (
	CodeInvalidInput = "invalid_input"
	CodeNotFound     = "not_found"
)

// failureCode maps a sentinel error to its wire-level reason code.
func failureCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrProductNotFound):
		return CodeNotFound
	default:
		return ""
	}
}

// Service implements the per-customer cart. Duplicate adds merge by
// incrementing the line quantity; each line snapshots the product's name
// and unit price at add time.
type Service struct {
	store       Store
	catalogPort catalog.CatalogPort
}

// NewService creates a cart service.
func NewService(store Store, catalogPort catalog.CatalogPort) *Service {
	return &Service{store: store, catalogPort: catalogPort}
}

// AddItem validates the product against the catalog and merges it into
// the customer's cart.
func (s *Service) AddItem(ctx context.Context, customerID, productID string, quantity int) (*domain.Cart, error) {
	if customerID == "" || productID == "" || quantity == 0 {
		return nil, ErrInvalidInput
	}

	resp, err := s.catalogPort.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if resp.Error == catalog.CodeNotFound {
		return nil, ErrProductNotFound
	}
	if resp.Error != "" {
		return nil, ErrInvalidInput
	}

	c, err := s.store.Load(ctx, customerID)
	if err != nil {
		return nil, err
	}

	c.AddItem(domain.Item{
		ProductID: resp.Product.ID,
		Name:      resp.Product.Name,
		UnitPrice: resp.Product.Price,
		Quantity:  quantity,
	})
	c.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetCart returns the customer's cart; an empty cart when nothing was
// added yet.
func (s *Service) GetCart(ctx context.Context, customerID string) (*domain.Cart, error) {
	if customerID == "" {
		return nil, ErrInvalidInput
	}
	return s.store.Load(ctx, customerID)
}

// Clear empties the customer's cart.
func (s *Service) Clear(ctx context.Context, customerID string) error {
	if customerID == "" {
		return ErrInvalidInput
	}
	return s.store.Delete(ctx, customerID)
}
