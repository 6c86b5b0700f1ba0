package order

import "time"

// Status represents the state of an order.
type Status string

const (
	StatusPlaced    Status = "placed"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusDelivered Status = "delivered"
)

// CanTransitionTo reports whether moving from s to next is a legal step.
// The only paths are placed -> confirmed -> delivered and the side branch
// placed -> cancelled; cancelled and delivered are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPlaced:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusDelivered
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is valid from s.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusDelivered
}

// Order is the core domain entity for a customer order.
type Order struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	ProductID  string    `json:"product_id"`
	Quantity   int       `json:"quantity"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
