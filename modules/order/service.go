package order

import (
	"context"
	"fmt"
	"time"

	domain "github.com/example/food-ordering/domain/order"
	"github.com/example/food-ordering/modules/catalog"
	"github.com/google/uuid"
)

// Service implements the order lifecycle. Transitions that fail a guard
// (missing order, wrong caller, wrong state) report false rather than an
// error; errors are reserved for storage faults.
type Service struct {
	repo        *Repository
	catalogPort catalog.CatalogPort
	ownerID     string
}

// NewService creates an order service. ownerID is the single privileged
// identity allowed to deliver orders.
func NewService(repo *Repository, catalogPort catalog.CatalogPort, ownerID string) *Service {
	return &Service{repo: repo, catalogPort: catalogPort, ownerID: ownerID}
}

// Place creates an order in the placed state and decrements the product's
// available quantity by the ordered amount. There is no floor check: the
// stored quantity may go negative.
func (s *Service) Place(ctx context.Context, productID string, quantity int, callerID string) (*domain.Order, error) {
	if productID == "" || quantity == 0 {
		return nil, ErrInvalidInput
	}

	resp, err := s.catalogPort.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if resp.Error == catalog.CodeNotFound {
		return nil, ErrNotFound
	}
	if resp.Error != "" {
		return nil, ErrInvalidInput
	}

	now := time.Now()
	newOrder := &domain.Order{
		ID:         uuid.New().String(),
		CustomerID: callerID,
		ProductID:  productID,
		Quantity:   quantity,
		Status:     domain.StatusPlaced,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Save(ctx, newOrder); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	if _, err := s.catalogPort.AdjustQuantity(ctx, &catalog.AdjustQuantityRequest{
		ProductID: productID,
		Delta:     -quantity,
	}); err != nil {
		return nil, fmt.Errorf("failed to decrement product quantity: %w", err)
	}

	return newOrder, nil
}

// Cancel moves a placed order to cancelled. Only the owning customer may
// cancel, and only from the placed state.
func (s *Service) Cancel(ctx context.Context, orderID, callerID string) (*domain.Order, bool, error) {
	if orderID == "" {
		return nil, false, nil
	}

	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if err == errOrderNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}

	if o.CustomerID != callerID {
		return o, false, nil
	}
	if !o.Status.CanTransitionTo(domain.StatusCancelled) {
		return o, false, nil
	}

	o.Status = domain.StatusCancelled
	o.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, o); err != nil {
		return o, false, fmt.Errorf("failed to persist cancellation: %w", err)
	}
	return o, true, nil
}

// Confirm moves a placed order to confirmed. Any caller may confirm any
// order; unlike its sibling transitions there is no ownership check.
func (s *Service) Confirm(ctx context.Context, orderID string) (*domain.Order, bool, error) {
	if orderID == "" {
		return nil, false, nil
	}

	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if err == errOrderNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}

	if !o.Status.CanTransitionTo(domain.StatusConfirmed) {
		return o, false, nil
	}

	o.Status = domain.StatusConfirmed
	o.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, o); err != nil {
		return o, false, fmt.Errorf("failed to persist confirmation: %w", err)
	}
	return o, true, nil
}

// Deliver moves a confirmed order to delivered. Only the deployment owner
// may deliver.
func (s *Service) Deliver(ctx context.Context, orderID, callerID string) (*domain.Order, bool, error) {
	if orderID == "" {
		return nil, false, nil
	}

	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		if err == errOrderNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}

	if callerID != s.ownerID {
		return o, false, nil
	}
	if !o.Status.CanTransitionTo(domain.StatusDelivered) {
		return o, false, nil
	}

	o.Status = domain.StatusDelivered
	o.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, o); err != nil {
		return o, false, fmt.Errorf("failed to persist delivery: %w", err)
	}
	return o, true, nil
}

// ListByCustomer returns all orders placed by the given customer.
func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Order, error) {
	if customerID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.FindByCustomer(ctx, customerID)
}
