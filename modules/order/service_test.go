package order

import (
	"context"
	"errors"
	"testing"

	domain "github.com/example/food-ordering/domain/order"
	"github.com/example/food-ordering/modules/catalog"
	"github.com/example/food-ordering/modules/kvstore"
)

const (
	testOwnerID    = "owner-1"
	testCustomerID = "customer-1"
)

// fakeCatalog implements catalog.CatalogPort over an in-memory product
// map, tracking quantity adjustments the way the real module would.
type fakeCatalog struct {
	products map[string]*catalog.ProductRecord
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{products: make(map[string]*catalog.ProductRecord)}
}

func (f *fakeCatalog) add(id, name string, price int64, quantity int) {
	f.products[id] = &catalog.ProductRecord{
		ID:                id,
		Name:              name,
		Price:             price,
		QuantityAvailable: quantity,
	}
}

func (f *fakeCatalog) AddProduct(_ context.Context, req *catalog.AddProductRequest) (*catalog.ProductResponse, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCatalog) GetProduct(_ context.Context, productID string) (*catalog.ProductResponse, error) {
	p, ok := f.products[productID]
	if !ok {
		return &catalog.ProductResponse{Error: catalog.CodeNotFound}, nil
	}
	return &catalog.ProductResponse{Product: p}, nil
}

func (f *fakeCatalog) ListProducts(_ context.Context) (*catalog.ListProductsResponse, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCatalog) UpdateQuantity(_ context.Context, req *catalog.UpdateQuantityRequest) (*catalog.ProductResponse, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCatalog) AdjustQuantity(_ context.Context, req *catalog.AdjustQuantityRequest) (*catalog.ProductResponse, error) {
	p, ok := f.products[req.ProductID]
	if !ok {
		return &catalog.ProductResponse{Error: catalog.CodeNotFound}, nil
	}
	p.QuantityAvailable += req.Delta
	return &catalog.ProductResponse{Product: p}, nil
}

func newTestService(fc *fakeCatalog) *Service {
	repo := NewRepository(kvstore.NewMemoryBucket())
	return NewService(repo, fc, testOwnerID)
}

func TestPlaceDecrementsInventory(t *testing.T) {
	ctx := context.Background()
	fc := newFakeCatalog()
	fc.add("p1", "Burger", 500, 10)
	svc := newTestService(fc)

	o, err := svc.Place(ctx, "p1", 3, testCustomerID)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if o.Status != domain.StatusPlaced {
		t.Errorf("status = %q, want %q", o.Status, "placed")
	}
	if o.CustomerID != testCustomerID || o.ProductID != "p1" || o.Quantity != 3 {
		t.Errorf("order = %+v, want customer/product/quantity recorded", o)
	}
	if got := fc.products["p1"].QuantityAvailable; got != 7 {
		t.Errorf("product quantity = %d, want 7", got)
	}
}

func TestPlaceValidation(t *testing.T) {
	ctx := context.Background()
	fc := newFakeCatalog()
	fc.add("p1", "Burger", 500, 10)
	svc := newTestService(fc)

	if _, err := svc.Place(ctx, "", 3, testCustomerID); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Place(empty product) error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Place(ctx, "p1", 0, testCustomerID); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Place(zero quantity) error = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Place(ctx, "no-such-product", 1, testCustomerID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Place(unknown product) error = %v, want ErrNotFound", err)
	}
}

func TestPlaceAllowsNegativeInventory(t *testing.T) {
	ctx := context.Background()
	fc := newFakeCatalog()
	fc.add("p1", "Burger", 500, 2)
	svc := newTestService(fc)

	// Ordering more than is in stock succeeds; there is no floor check.
	if _, err := svc.Place(ctx, "p1", 5, testCustomerID); err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if got := fc.products["p1"].QuantityAvailable; got != -3 {
		t.Errorf("product quantity = %d, want -3", got)
	}
}

func TestCancelGuards(t *testing.T) {
	ctx := context.Background()
	fc := newFakeCatalog()
	fc.add("p1", "Burger", 500, 10)
	svc := newTestService(fc)

	o, err := svc.Place(ctx, "p1", 1, testCustomerID)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	if _, updated, err := svc.Cancel(ctx, "", testCustomerID); err != nil || updated {
		t.Errorf("Cancel(empty id) = %v, %v; want false, nil", updated, err)
	}
	if _, updated, err := svc.Cancel(ctx, "no-such-order", testCustomerID); err != nil || updated {
		t.Errorf("Cancel(unknown id) = %v, %v; want false, nil", updated, err)
	}
	if _, updated, err := svc.Cancel(ctx, o.ID, "someone-else"); err != nil || updated {
		t.Errorf("Cancel by non-owning customer = %v, %v; want false, nil", updated, err)
	}

	got, updated, err := svc.Cancel(ctx, o.ID, testCustomerID)
	if err != nil || !updated {
		t.Fatalf("Cancel() = %v, %v; want true, nil", updated, err)
	}
	if got.Status != domain.StatusCancelled {
		t.Errorf("status = %q, want %q", got.Status, "cancelled")
	}

	// Cancelling again fails the same way every time.
	for i := 0; i < 2; i++ {
		if _, updated, err := svc.Cancel(ctx, o.ID, testCustomerID); err != nil || updated {
			t.Errorf("repeat Cancel() = %v, %v; want false, nil", updated, err)
		}
	}
}

func TestConfirmHasNoOwnershipCheck(t *testing.T) {
	ctx := context.Background()
	fc := newFakeCatalog()
	fc.add("p1", "Burger", 500, 10)
	svc := newTestService(fc)

	o, _ := svc.Place(ctx, "p1", 1, testCustomerID)

	// Confirm takes no caller identity at all.
	got, updated, err := svc.Confirm(ctx, o.ID)
	if err != nil || !updated {
		t.Fatalf("Confirm() = %v, %v; want true, nil", updated, err)
	}
	if got.Status != domain.StatusConfirmed {
		t.Errorf("status = %q, want %q", got.Status, "confirmed")
	}

	// A confirmed order cannot be confirmed again or cancelled.
	if _, updated, _ := svc.Confirm(ctx, o.ID); updated {
		t.Error("repeat Confirm() updated, want false")
	}
	if _, updated, _ := svc.Cancel(ctx, o.ID, testCustomerID); updated {
		t.Error("Cancel() after confirm updated, want false")
	}
}

func TestDeliverOwnerOnly(t *testing.T) {
	ctx := context.Background()
	fc := newFakeCatalog()
	fc.add("p1", "Burger", 500, 10)
	svc := newTestService(fc)

	o, _ := svc.Place(ctx, "p1", 1, testCustomerID)

	// Delivery requires the confirmed state.
	if _, updated, _ := svc.Deliver(ctx, o.ID, testOwnerID); updated {
		t.Error("Deliver() of placed order updated, want false")
	}

	svc.Confirm(ctx, o.ID)

	if _, updated, _ := svc.Deliver(ctx, o.ID, testCustomerID); updated {
		t.Error("Deliver() by non-owner updated, want false")
	}

	got, updated, err := svc.Deliver(ctx, o.ID, testOwnerID)
	if err != nil || !updated {
		t.Fatalf("Deliver() = %v, %v; want true, nil", updated, err)
	}
	if got.Status != domain.StatusDelivered {
		t.Errorf("status = %q, want %q", got.Status, "delivered")
	}

	if _, updated, _ := svc.Deliver(ctx, o.ID, testOwnerID); updated {
		t.Error("repeat Deliver() updated, want false")
	}
}

func TestListByCustomer(t *testing.T) {
	ctx := context.Background()
	fc := newFakeCatalog()
	fc.add("p1", "Burger", 500, 10)
	svc := newTestService(fc)

	svc.Place(ctx, "p1", 1, "customer-a")
	svc.Place(ctx, "p1", 2, "customer-a")
	svc.Place(ctx, "p1", 1, "customer-b")

	orders, err := svc.ListByCustomer(ctx, "customer-a")
	if err != nil {
		t.Fatalf("ListByCustomer() error = %v", err)
	}
	if len(orders) != 2 {
		t.Errorf("ListByCustomer() returned %d orders, want 2", len(orders))
	}
	for _, o := range orders {
		if o.CustomerID != "customer-a" {
			t.Errorf("order %s belongs to %q, want customer-a", o.ID, o.CustomerID)
		}
	}

	if _, err := svc.ListByCustomer(ctx, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ListByCustomer(\"\") error = %v, want ErrInvalidInput", err)
	}
}

// TestBurgerLifecycle walks an order through its whole life: place against
// a stocked product, confirm, deliver, and verify the terminal state
// rejects further transitions.
func TestBurgerLifecycle(t *testing.T) {
	ctx := context.Background()
	fc := newFakeCatalog()
	fc.add("burger", "Burger", 500, 10)
	svc := newTestService(fc)

	o, err := svc.Place(ctx, "burger", 3, testCustomerID)
	if err != nil {
		t.Fatalf("Place() error = %v", err)
	}
	if got := fc.products["burger"].QuantityAvailable; got != 7 {
		t.Fatalf("quantity after place = %d, want 7", got)
	}
	if o.Status != domain.StatusPlaced {
		t.Fatalf("status = %q, want placed", o.Status)
	}

	if _, updated, _ := svc.Confirm(ctx, o.ID); !updated {
		t.Fatal("Confirm() not applied")
	}
	if _, updated, _ := svc.Deliver(ctx, o.ID, testOwnerID); !updated {
		t.Fatal("Deliver() not applied")
	}
	if _, updated, _ := svc.Deliver(ctx, o.ID, testOwnerID); updated {
		t.Fatal("second Deliver() applied, want rejected")
	}

	final, _, _ := svc.Cancel(ctx, o.ID, testCustomerID)
	if final.Status != domain.StatusDelivered {
		t.Errorf("final status = %q, want delivered", final.Status)
	}
}
