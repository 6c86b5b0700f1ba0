package review

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// reviewAdapter wraps ServiceContainer for type-safe cross-module
// communication. This is the adapter that implements the ReviewPort.
type reviewAdapter struct {
	container mono.ServiceContainer
}

// NewReviewAdapter creates a new adapter for review services.
func NewReviewAdapter(container mono.ServiceContainer) ReviewPort {
	if container == nil {
		panic("review adapter requires non-nil ServiceContainer")
	}
	return &reviewAdapter{container: container}
}

// AddReview inserts a new review via the add-review service.
func (a *reviewAdapter) AddReview(ctx context.Context, req *AddReviewRequest) (*ReviewResponse, error) {
	var resp ReviewResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "add-review",
		json.Marshal, json.Unmarshal,
		req, &resp,
	); err != nil {
		return nil, fmt.Errorf("add-review service call failed: %w", err)
	}
	return &resp, nil
}

// ListReviews lists a product's reviews via the list-reviews service.
func (a *reviewAdapter) ListReviews(ctx context.Context, productID string) (*ListReviewsResponse, error) {
	req := ListReviewsRequest{ProductID: productID}
	var resp ListReviewsResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-reviews",
		json.Marshal, json.Unmarshal,
		&req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-reviews service call failed: %w", err)
	}
	return &resp, nil
}
