package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/example/food-ordering/modules/kvstore"
)

const testOwnerID = "owner-1"

func newTestService() *Service {
	repo := NewRepository(kvstore.NewMemoryBucket())
	return NewService(repo, testOwnerID)
}

func TestAddProductThenLookup(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	added, err := svc.AddProduct(ctx, "Burger", "Juicy beef burger", 999, 10)
	if err != nil {
		t.Fatalf("AddProduct() error = %v", err)
	}
	if added.ID == "" {
		t.Fatal("AddProduct() returned empty id")
	}

	got, err := svc.LookupProduct(ctx, added.ID)
	if err != nil {
		t.Fatalf("LookupProduct() error = %v", err)
	}
	if got.Name != "Burger" || got.Description != "Juicy beef burger" ||
		got.Price != 999 || got.QuantityAvailable != 10 {
		t.Errorf("LookupProduct() = %+v, want the added product back", got)
	}
}

func TestAddProductValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	tests := []struct {
		name        string
		productName string
		description string
		price       int64
		quantity    int
	}{
		{"empty name", "", "desc", 100, 5},
		{"empty description", "Burger", "", 100, 5},
		// A zero value is indistinguishable from a missing field.
		{"zero price", "Burger", "desc", 0, 5},
		{"zero quantity", "Burger", "desc", 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddProduct(ctx, tt.productName, tt.description, tt.price, tt.quantity)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("AddProduct() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestLookupProductMissing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	if _, err := svc.LookupProduct(ctx, "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LookupProduct() error = %v, want ErrNotFound", err)
	}
	if _, err := svc.LookupProduct(ctx, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("LookupProduct(\"\") error = %v, want ErrInvalidInput", err)
	}
}

func TestListProducts(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	if products, err := svc.ListProducts(ctx); err != nil || len(products) != 0 {
		t.Fatalf("ListProducts() on empty catalog = %v, %v; want empty, nil", products, err)
	}

	svc.AddProduct(ctx, "Burger", "desc", 999, 10)
	svc.AddProduct(ctx, "Pizza", "desc", 1299, 5)

	products, err := svc.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if len(products) != 2 {
		t.Errorf("ListProducts() returned %d products, want 2", len(products))
	}
}

func TestUpdateQuantityOwnerOnly(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	added, err := svc.AddProduct(ctx, "Burger", "desc", 999, 10)
	if err != nil {
		t.Fatalf("AddProduct() error = %v", err)
	}

	if _, err := svc.UpdateQuantity(ctx, added.ID, 25, "customer-7"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("UpdateQuantity() by non-owner error = %v, want ErrUnauthorized", err)
	}

	// Rejection must not touch the stored record.
	got, _ := svc.LookupProduct(ctx, added.ID)
	if got.QuantityAvailable != 10 {
		t.Errorf("quantity after rejected update = %d, want 10", got.QuantityAvailable)
	}

	updated, err := svc.UpdateQuantity(ctx, added.ID, 25, testOwnerID)
	if err != nil {
		t.Fatalf("UpdateQuantity() by owner error = %v", err)
	}
	if updated.QuantityAvailable != 25 {
		t.Errorf("quantity = %d, want 25", updated.QuantityAvailable)
	}
}

func TestUpdateQuantityMissingProduct(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	// The lookup runs before the owner check, so an unknown id reports
	// not-found even to a non-owner caller.
	if _, err := svc.UpdateQuantity(ctx, "no-such-id", 5, "customer-7"); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateQuantity() error = %v, want ErrNotFound", err)
	}
}

func TestAdjustQuantityAllowsNegative(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	added, err := svc.AddProduct(ctx, "Burger", "desc", 999, 3)
	if err != nil {
		t.Fatalf("AddProduct() error = %v", err)
	}

	// No floor check: adjusting below zero is permitted.
	got, err := svc.AdjustQuantity(ctx, added.ID, -5)
	if err != nil {
		t.Fatalf("AdjustQuantity() error = %v", err)
	}
	if got.QuantityAvailable != -2 {
		t.Errorf("quantity = %d, want -2", got.QuantityAvailable)
	}
}

func TestFailureCode(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidInput, CodeInvalidInput},
		{ErrNotFound, CodeNotFound},
		{ErrUnauthorized, CodeUnauthorized},
		{ErrDuplicateID, CodeDuplicateID},
		{errors.New("storage fault"), ""},
	}

	for _, tt := range tests {
		if got := failureCode(tt.err); got != tt.want {
			t.Errorf("failureCode(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
