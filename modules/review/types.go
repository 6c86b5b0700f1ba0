package review

import (
	"context"
	"time"
)

// ReviewRecord is the wire shape of a review.
type ReviewRecord struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	ProductID  string    `json:"product_id"`
	Rating     int       `json:"rating"`
	Review     string    `json:"review"`
	CreatedAt  time.Time `json:"created_at"`
}

// AddReviewRequest is the request for adding a review. CallerID is the
// authenticated customer writing it.
type AddReviewRequest struct {
	ProductID string `json:"product_id"`
	Rating    int    `json:"rating"`
	Review    string `json:"review"`
	CallerID  string `json:"caller_id"`
}

// ReviewResponse carries a review or a failure reason code.
type ReviewResponse struct {
	Review *ReviewRecord `json:"review,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// ListReviewsRequest is the request for listing a product's reviews.
type ListReviewsRequest struct {
	ProductID string `json:"product_id"`
}

// ListReviewsResponse is the response for listing a product's reviews.
type ListReviewsResponse struct {
	Reviews []ReviewRecord `json:"reviews"`
	Total   int            `json:"total"`
	Error   string         `json:"error,omitempty"`
}

// ReviewPort defines the interface the API uses to reach the review
// collection (hexagonal port).
type ReviewPort interface {
	AddReview(ctx context.Context, req *AddReviewRequest) (*ReviewResponse, error)
	ListReviews(ctx context.Context, productID string) (*ListReviewsResponse, error)
}
