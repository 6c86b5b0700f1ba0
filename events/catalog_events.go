package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// ProductAddedEvent is emitted when a new product enters the catalog.
type ProductAddedEvent struct {
	ProductID         string    `json:"product_id"`
	Name              string    `json:"name"`
	Price             int64     `json:"price"`
	QuantityAvailable int       `json:"quantity_available"`
	AddedAt           time.Time `json:"added_at"`
}

// ProductAddedV1 is the typed event definition for product creation.
// Subject: events.catalog.v1.product-added
var ProductAddedV1 = helper.EventDefinition[ProductAddedEvent](
	"catalog", "ProductAdded", "v1",
)

// ReviewAddedEvent is emitted when a customer reviews a product.
type ReviewAddedEvent struct {
	ReviewID   string    `json:"review_id"`
	ProductID  string    `json:"product_id"`
	CustomerID string    `json:"customer_id"`
	Rating     int       `json:"rating"`
	AddedAt    time.Time `json:"added_at"`
}

// ReviewAddedV1 is the typed event definition for review creation.
// Subject: events.review.v1.review-added
var ReviewAddedV1 = helper.EventDefinition[ReviewAddedEvent](
	"review", "ReviewAdded", "v1",
)
