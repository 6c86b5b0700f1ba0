package product

import "time"

// Product is the core domain entity for a catalog item.
// Price is an integer in the smallest currency unit; there is no float
// money anywhere in the system. Products are never deleted.
type Product struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Price             int64     `json:"price"`
	QuantityAvailable int       `json:"quantity_available"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
