package review

import "time"

// Review is a customer interaction with a product. Reviews are immutable
// once created. Rating is an unconstrained integer: no 1-5 bound is
// enforced and callers must not assume one.
type Review struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	ProductID  string    `json:"product_id"`
	Rating     int       `json:"rating"`
	Review     string    `json:"review"`
	CreatedAt  time.Time `json:"created_at"`
}
