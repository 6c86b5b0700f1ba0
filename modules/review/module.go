package review

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	domain "github.com/example/food-ordering/domain/review"
	"github.com/example/food-ordering/events"
	"github.com/example/food-ordering/modules/kvstore"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// Module provides the customer interaction services.
type Module struct {
	kv       *kvstore.Module
	service  *Service
	eventBus mono.EventBus
}

var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.EventEmitterModule = (*Module)(nil)

// NewModule creates a new review module.
func NewModule(kv *kvstore.Module) *Module {
	return &Module{kv: kv}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "review"
}

// SetEventBus receives the EventBus from the framework.
func (m *Module) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *Module) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.ReviewAddedV1.ToBase(),
	}
}

// RegisterServices registers the review request-reply services.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "add-review", json.Unmarshal, json.Marshal, m.addReview,
	); err != nil {
		return fmt.Errorf("failed to register add-review service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-reviews", json.Unmarshal, json.Marshal, m.listReviews,
	); err != nil {
		return fmt.Errorf("failed to register list-reviews service: %w", err)
	}

	log.Printf("[review] Registered services: add-review, list-reviews")
	return nil
}

// addReview handles the add-review service request.
func (m *Module) addReview(ctx context.Context, req AddReviewRequest, _ *mono.Msg) (ReviewResponse, error) {
	rev, err := m.service.Add(ctx, req.ProductID, req.Rating, req.Review, req.CallerID)
	if err != nil {
		if code := failureCode(err); code != "" {
			return ReviewResponse{Error: code}, nil
		}
		return ReviewResponse{}, err
	}

	if m.eventBus != nil {
		event := events.ReviewAddedEvent{
			ReviewID:   rev.ID,
			ProductID:  rev.ProductID,
			CustomerID: rev.CustomerID,
			Rating:     rev.Rating,
			AddedAt:    rev.CreatedAt,
		}
		if err := events.ReviewAddedV1.Publish(m.eventBus, event, nil); err != nil {
			// Event publishing is best-effort; log but don't fail the operation
			log.Printf("[review] Warning: failed to publish ReviewAdded event for %s: %v", rev.ID, err)
		}
	}

	return ReviewResponse{Review: toReviewRecord(rev)}, nil
}

// listReviews handles the list-reviews service request.
func (m *Module) listReviews(ctx context.Context, req ListReviewsRequest, _ *mono.Msg) (ListReviewsResponse, error) {
	reviews, err := m.service.ListByProduct(ctx, req.ProductID)
	if err != nil {
		if code := failureCode(err); code != "" {
			return ListReviewsResponse{Error: code}, nil
		}
		return ListReviewsResponse{}, err
	}

	response := ListReviewsResponse{
		Reviews: make([]ReviewRecord, 0, len(reviews)),
		Total:   len(reviews),
	}
	for _, rev := range reviews {
		response.Reviews = append(response.Reviews, *toReviewRecord(rev))
	}
	return response, nil
}

// Start wires the repository to the reviews bucket.
func (m *Module) Start(_ context.Context) error {
	bucket := m.kv.Bucket(kvstore.ReviewsBucket)
	if bucket == nil {
		return fmt.Errorf("reviews bucket not available")
	}
	m.service = NewService(NewRepository(bucket))

	log.Println("[review] Module started")
	return nil
}

// Stop shuts down the module.
func (m *Module) Stop(_ context.Context) error {
	log.Println("[review] Module stopped")
	return nil
}

// toReviewRecord converts a domain Review to its wire shape.
func toReviewRecord(rev *domain.Review) *ReviewRecord {
	return &ReviewRecord{
		ID:         rev.ID,
		CustomerID: rev.CustomerID,
		ProductID:  rev.ProductID,
		Rating:     rev.Rating,
		Review:     rev.Review,
		CreatedAt:  rev.CreatedAt,
	}
}
