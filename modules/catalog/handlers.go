package catalog

import (
	"context"
	"log"

	domain "github.com/example/food-ordering/domain/product"
	"github.com/example/food-ordering/events"
	"github.com/go-monolith/mono"
)

// addProduct handles the add-product service request.
func (m *Module) addProduct(ctx context.Context, req AddProductRequest, _ *mono.Msg) (ProductResponse, error) {
	product, err := m.service.AddProduct(ctx, req.Name, req.Description, req.Price, req.QuantityAvailable)
	if err != nil {
		if code := failureCode(err); code != "" {
			return ProductResponse{Error: code}, nil
		}
		return ProductResponse{}, err
	}

	if m.eventBus != nil {
		event := events.ProductAddedEvent{
			ProductID:         product.ID,
			Name:              product.Name,
			Price:             product.Price,
			QuantityAvailable: product.QuantityAvailable,
			AddedAt:           product.CreatedAt,
		}
		if err := events.ProductAddedV1.Publish(m.eventBus, event, nil); err != nil {
			// Event publishing is best-effort; log but don't fail the operation
			log.Printf("[catalog] Warning: failed to publish ProductAdded event for %s: %v", product.ID, err)
		}
	}

	return ProductResponse{Product: toProductRecord(product)}, nil
}

// getProduct handles the get-product service request.
func (m *Module) getProduct(ctx context.Context, req GetProductRequest, _ *mono.Msg) (ProductResponse, error) {
	product, err := m.service.LookupProduct(ctx, req.ProductID)
	if err != nil {
		if code := failureCode(err); code != "" {
			return ProductResponse{Error: code}, nil
		}
		return ProductResponse{}, err
	}
	return ProductResponse{Product: toProductRecord(product)}, nil
}

// listProducts handles the list-products service request.
func (m *Module) listProducts(ctx context.Context, _ ListProductsRequest, _ *mono.Msg) (ListProductsResponse, error) {
	products, err := m.service.ListProducts(ctx)
	if err != nil {
		return ListProductsResponse{}, err
	}

	response := ListProductsResponse{
		Products: make([]ProductRecord, 0, len(products)),
		Total:    len(products),
	}
	for _, p := range products {
		response.Products = append(response.Products, *toProductRecord(p))
	}
	return response, nil
}

// updateQuantity handles the update-product-quantity service request.
func (m *Module) updateQuantity(ctx context.Context, req UpdateQuantityRequest, _ *mono.Msg) (ProductResponse, error) {
	product, err := m.service.UpdateQuantity(ctx, req.ProductID, req.Quantity, req.CallerID)
	if err != nil {
		if code := failureCode(err); code != "" {
			return ProductResponse{Error: code}, nil
		}
		return ProductResponse{}, err
	}
	return ProductResponse{Product: toProductRecord(product)}, nil
}

// adjustQuantity handles the adjust-product-quantity service request.
func (m *Module) adjustQuantity(ctx context.Context, req AdjustQuantityRequest, _ *mono.Msg) (ProductResponse, error) {
	product, err := m.service.AdjustQuantity(ctx, req.ProductID, req.Delta)
	if err != nil {
		if code := failureCode(err); code != "" {
			return ProductResponse{Error: code}, nil
		}
		return ProductResponse{}, err
	}
	return ProductResponse{Product: toProductRecord(product)}, nil
}

// toProductRecord converts a domain Product to its wire shape.
func toProductRecord(p *domain.Product) *ProductRecord {
	return &ProductRecord{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		QuantityAvailable: p.QuantityAvailable,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
