package catalog

import (
	"context"
	"time"
)

// ProductRecord is the wire shape of a product.
type ProductRecord struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Price             int64     `json:"price"`
	QuantityAvailable int       `json:"quantity_available"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// AddProductRequest is the request for adding a product.
type AddProductRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	Price             int64  `json:"price"`
	QuantityAvailable int    `json:"quantity_available"`
}

// GetProductRequest is the request for looking up a product.
type GetProductRequest struct {
	ProductID string `json:"product_id"`
}

// UpdateQuantityRequest is the request for replacing a product's quantity.
// CallerID must be the deployment owner.
type UpdateQuantityRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	CallerID  string `json:"caller_id"`
}

// AdjustQuantityRequest is the request for adding a delta to a product's
// quantity. Used by the order module to decrement stock on placement.
type AdjustQuantityRequest struct {
	ProductID string `json:"product_id"`
	Delta     int    `json:"delta"`
}

// ProductResponse carries a product or a failure reason code. Error is
// empty on success; failures are values, never transported faults.
type ProductResponse struct {
	Product *ProductRecord `json:"product,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// ListProductsRequest is the request for listing all products.
type ListProductsRequest struct{}

// ListProductsResponse is the response for listing all products.
type ListProductsResponse struct {
	Products []ProductRecord `json:"products"`
	Total    int             `json:"total"`
}

// CatalogPort defines the interface other modules use to reach the
// catalog (hexagonal port).
type CatalogPort interface {
	AddProduct(ctx context.Context, req *AddProductRequest) (*ProductResponse, error)
	GetProduct(ctx context.Context, productID string) (*ProductResponse, error)
	ListProducts(ctx context.Context) (*ListProductsResponse, error)
	UpdateQuantity(ctx context.Context, req *UpdateQuantityRequest) (*ProductResponse, error)
	AdjustQuantity(ctx context.Context, req *AdjustQuantityRequest) (*ProductResponse, error)
}
