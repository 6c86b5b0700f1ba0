package api

// RegisterRequest is the HTTP request for creating an account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the HTTP request for authenticating.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the HTTP request for rotating tokens.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AddProductRequest is the HTTP request for adding a product.
type AddProductRequest struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	Price             int64  `json:"price"`
	QuantityAvailable int    `json:"quantity_available"`
}

// UpdateQuantityRequest is the HTTP request for replacing a product's
// stock level.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// PlaceOrderRequest is the HTTP request for placing an order.
type PlaceOrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// AddReviewRequest is the HTTP request for reviewing a product.
type AddReviewRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// AddCartItemRequest is the HTTP request for adding a product to the cart.
type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// HealthResponse is the HTTP response for health check.
type HealthResponse struct {
	Status  string         `json:"status"`
	Details map[string]any `json:"details,omitempty"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
