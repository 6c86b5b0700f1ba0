package cart

import "time"

// Item is a single cart line keyed by product ID. Adding the same product
// twice merges into one line by incrementing Quantity.
type Item struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// Cart holds the pending items for one customer.
type Cart struct {
	CustomerID string    `json:"customer_id"`
	Items      []Item    `json:"items"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ItemCount returns the total quantity across all lines (the badge count).
func (c *Cart) ItemCount() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// AddItem merges item into the cart, incrementing the quantity when a line
// for the same product already exists.
func (c *Cart) AddItem(item Item) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}
