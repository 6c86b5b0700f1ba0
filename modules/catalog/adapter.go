package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// catalogAdapter wraps ServiceContainer for type-safe cross-module
// communication. This is the adapter that implements the CatalogPort.
type catalogAdapter struct {
	container mono.ServiceContainer
}

// NewCatalogAdapter creates a new adapter for catalog services.
// container is the ServiceContainer from the catalog module received via
// SetDependencyServiceContainer.
func NewCatalogAdapter(container mono.ServiceContainer) CatalogPort {
	if container == nil {
		panic("catalog adapter requires non-nil ServiceContainer")
	}
	return &catalogAdapter{container: container}
}

// AddProduct inserts a new product via the add-product service.
func (a *catalogAdapter) AddProduct(ctx context.Context, req *AddProductRequest) (*ProductResponse, error) {
	var resp ProductResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "add-product",
		json.Marshal, json.Unmarshal,
		req, &resp,
	); err != nil {
		return nil, fmt.Errorf("add-product service call failed: %w", err)
	}
	return &resp, nil
}

// GetProduct looks up a product by id via the get-product service.
func (a *catalogAdapter) GetProduct(ctx context.Context, productID string) (*ProductResponse, error) {
	req := GetProductRequest{ProductID: productID}
	var resp ProductResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-product",
		json.Marshal, json.Unmarshal,
		&req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get-product service call failed: %w", err)
	}
	return &resp, nil
}

// ListProducts returns all products via the list-products service.
func (a *catalogAdapter) ListProducts(ctx context.Context) (*ListProductsResponse, error) {
	req := ListProductsRequest{}
	var resp ListProductsResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-products",
		json.Marshal, json.Unmarshal,
		&req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-products service call failed: %w", err)
	}
	return &resp, nil
}

// UpdateQuantity replaces a product's quantity via the
// update-product-quantity service.
func (a *catalogAdapter) UpdateQuantity(ctx context.Context, req *UpdateQuantityRequest) (*ProductResponse, error) {
	var resp ProductResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "update-product-quantity",
		json.Marshal, json.Unmarshal,
		req, &resp,
	); err != nil {
		return nil, fmt.Errorf("update-product-quantity service call failed: %w", err)
	}
	return &resp, nil
}

// AdjustQuantity adds a delta to a product's quantity via the
// adjust-product-quantity service.
func (a *catalogAdapter) AdjustQuantity(ctx context.Context, req *AdjustQuantityRequest) (*ProductResponse, error) {
	var resp ProductResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "adjust-product-quantity",
		json.Marshal, json.Unmarshal,
		req, &resp,
	); err != nil {
		return nil, fmt.Errorf("adjust-product-quantity service call failed: %w", err)
	}
	return &resp, nil
}
