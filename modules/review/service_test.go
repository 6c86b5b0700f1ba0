package review

import (
	"context"
	"errors"
	"testing"

	"github.com/example/food-ordering/modules/kvstore"
)

func newTestService() *Service {
	return NewService(NewRepository(kvstore.NewMemoryBucket()))
}

func TestAddReviewThenList(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	added, err := svc.Add(ctx, "p1", 5, "Great burger", "customer-1")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if added.ID == "" {
		t.Fatal("Add() returned empty id")
	}
	if added.CustomerID != "customer-1" || added.ProductID != "p1" ||
		added.Rating != 5 || added.Review != "Great burger" {
		t.Errorf("Add() = %+v, want fields recorded", added)
	}

	reviews, err := svc.ListByProduct(ctx, "p1")
	if err != nil {
		t.Fatalf("ListByProduct() error = %v", err)
	}
	if len(reviews) != 1 || reviews[0].ID != added.ID {
		t.Errorf("ListByProduct() = %+v, want the added review", reviews)
	}
}

func TestAddReviewValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	tests := []struct {
		name      string
		productID string
		rating    int
		text      string
	}{
		{"empty product id", "", 5, "text"},
		// A zero rating is indistinguishable from a missing field.
		{"zero rating", "p1", 0, "text"},
		{"empty text", "p1", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tt.productID, tt.rating, tt.text, "customer-1")
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Add() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestAddReviewNoRangeOrReferenceCheck(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	// Ratings are not range-checked and the product need not exist.
	if _, err := svc.Add(ctx, "no-such-product", 42, "off the scale", "customer-1"); err != nil {
		t.Errorf("Add() error = %v, want nil", err)
	}
}

func TestListByProductFiltersAndValidates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	svc.Add(ctx, "p1", 5, "good", "customer-1")
	svc.Add(ctx, "p1", 2, "meh", "customer-2")
	svc.Add(ctx, "p2", 4, "fine", "customer-1")

	reviews, err := svc.ListByProduct(ctx, "p1")
	if err != nil {
		t.Fatalf("ListByProduct() error = %v", err)
	}
	if len(reviews) != 2 {
		t.Errorf("ListByProduct(p1) returned %d reviews, want 2", len(reviews))
	}

	if _, err := svc.ListByProduct(ctx, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ListByProduct(\"\") error = %v, want ErrInvalidInput", err)
	}

	// A product with no reviews lists empty, not an error.
	reviews, err = svc.ListByProduct(ctx, "p3")
	if err != nil || len(reviews) != 0 {
		t.Errorf("ListByProduct(p3) = %v, %v; want empty, nil", reviews, err)
	}
}
