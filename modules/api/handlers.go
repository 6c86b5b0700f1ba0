package api

import (
	"github.com/example/food-ordering/modules/cart"
	"github.com/example/food-ordering/modules/catalog"
	"github.com/example/food-ordering/modules/customer"
	"github.com/example/food-ordering/modules/order"
	"github.com/example/food-ordering/modules/review"
	"github.com/gofiber/fiber/v2"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes() {
	m.app.Get("/health", m.healthHandler)

	api := m.app.Group("/api/v1")
	authRequired := AuthMiddleware(m.customerAdapter)

	auth := api.Group("/auth")
	auth.Post("/register", m.register)
	auth.Post("/login", m.login)
	auth.Post("/refresh", m.refresh)
	auth.Get("/me", authRequired, m.me)

	products := api.Group("/products")
	products.Get("/", m.listProducts)
	products.Get("/:id", m.getProduct)
	products.Get("/:id/reviews", m.listReviews)
	products.Post("/", authRequired, m.addProduct)
	products.Put("/:id/quantity", authRequired, m.updateQuantity)
	products.Post("/:id/reviews", authRequired, m.addReview)

	orders := api.Group("/orders", authRequired)
	orders.Post("/", m.placeOrder)
	orders.Get("/", m.listOrders)
	orders.Post("/:id/cancel", m.cancelOrder)
	orders.Post("/:id/confirm", m.confirmOrder)
	orders.Post("/:id/deliver", m.deliverOrder)

	carts := api.Group("/cart", authRequired)
	carts.Get("/", m.getCart)
	carts.Post("/items", m.addCartItem)
	carts.Delete("/", m.clearCart)
}

// failureStatus maps a module reason code to an HTTP status and message.
func failureStatus(code string) (int, string) {
	switch code {
	case "invalid_input":
		return fiber.StatusBadRequest, "Invalid input"
	case "not_found":
		return fiber.StatusNotFound, "Not found"
	case "unauthorized":
		return fiber.StatusForbidden, "Caller is not allowed to perform this operation"
	case "duplicate_id", "already_exists":
		return fiber.StatusConflict, "Resource already exists"
	case "invalid_credentials":
		return fiber.StatusUnauthorized, "Invalid credentials"
	default:
		return fiber.StatusInternalServerError, "Internal error"
	}
}

// failure writes the error envelope for a module reason code.
func failure(c *fiber.Ctx, code string) error {
	status, message := failureStatus(code)
	return c.Status(status).JSON(ErrorResponse{
		Error:   code,
		Message: message,
	})
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"port":   m.port,
		},
	})
}

// register handles POST /api/v1/auth/register.
func (m *APIModule) register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	resp, err := m.customerAdapter.Register(c.Context(), &customer.RegisterRequest{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if resp.Error != "" {
		return failure(c, resp.Error)
	}

	return c.Status(fiber.StatusCreated).JSON(resp.Customer)
}

// login handles POST /api/v1/auth/login.
func (m *APIModule) login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	resp, err := m.customerAdapter.Login(c.Context(), &customer.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if resp.Error != "" {
		return failure(c, resp.Error)
	}

	return c.JSON(resp)
}

// refresh handles POST /api/v1/auth/refresh.
func (m *APIModule) refresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	resp, err := m.customerAdapter.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if resp.Error != "" {
		return failure(c, resp.Error)
	}

	return c.JSON(resp)
}

// me handles GET /api/v1/auth/me.
func (m *APIModule) me(c *fiber.Ctx) error {
	caller := callerFrom(c)

	resp, err := m.customerAdapter.GetCustomer(c.Context(), caller.CustomerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if resp.Error != "" {
		return failure(c, resp.Error)
	}

	return c.JSON(resp.Customer)
}

// listProducts handles GET /api/v1/products.
func (m *APIModule) listProducts(c *fiber.Ctx) error {
	resp, err := m.catalogAdapter.ListProducts(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(resp)
}

// getProduct handles GET /api/v1/products/:id.
func (m *APIModule) getProduct(c *fiber.Ctx) error {
	resp, err := m.catalogAdapter.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if resp.Error != "" {
		return failure(c, resp.Error)
	}
	return c.JSON(resp.Product)
}

// addProduct handles POST /api/v1/products.
func (m *APIModule) addProduct(c *fiber.Ctx) error {
	var req AddProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	resp, err := m.catalogAdapter.AddProduct(c.Context(), &catalog.AddProductRequest{
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		QuantityAvailable: req.QuantityAvailable,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if resp.Error != "" {
		return failure(c, resp.Error)
	}

	return c.Status(fiber.StatusCreated).JSON(resp.Product)
}

// updateQuantity handles PUT /api/v1/products/:id/quantity. Only the shop
// owner may replace stock levels.
func (m *APIModule) updateQuantity(c *fiber.Ctx) error {
	var req UpdateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	caller := callerFrom(c)
	resp, err := m.catalogAdapter.UpdateQuantity(c.Context(), &catalog.UpdateQuantityRequest{
		ProductID: c.Params("id"),
		Quantity:  req.Quantity,
		CallerID:  caller.CustomerID,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if resp.Error != "" {
		return failure(c, resp.Error)
	}

	return c.JSON(resp.Product)
}

// listReviews handles GET /api/v1/products/:id/reviews.
func (m *APIModule) listReviews(c *fiber.Ctx) error {
	resp, err := m.reviewAdapter.ListReviews(c.Context(), c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if resp.Error != "" {
		return failure(c, resp.Error)
	}
	return c.JSON(resp)
}

// addReview handles POST /api/v1/products/:id/reviews.
func (m *APIModule) addReview(c *fiber.Ctx) error {
	var req AddReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	caller := callerFrom(c)
	resp, err := m.reviewAdapter.AddReview(c.Context(), &review.AddReviewRequest{
		ProductID: c.Params("id"),
		Rating:    req.Rating,
		Review:    req.Review,
		CallerID:  caller.CustomerID,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if resp.Error != "" {
		return failure(c, resp.Error)
	}

	return c.Status(fiber.StatusCreated).JSON(resp.Review)
}

// placeOrder handles POST /api/v1/orders.
func (m *APIModule) placeOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	caller := callerFrom(c)
	resp, err := m.orderAdapter.PlaceOrder(c.Context(), &order.PlaceOrderRequest{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		CallerID:  caller.CustomerID,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if resp.Error != "" {
		return failure(c, resp.Error)
	}

	return c.Status(fiber.StatusCreated).JSON(resp.Order)
}

// listOrders handles GET /api/v1/orders, scoped to the caller's own
// orders.
func (m *APIModule) listOrders(c *fiber.Ctx) error {
	caller := callerFrom(c)

	resp, err := m.orderAdapter.ListOrders(c.Context(), caller.CustomerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if resp.Error != "" {
		return failure(c, resp.Error)
	}

	return c.JSON(resp)
}

// cancelOrder handles POST /api/v1/orders/:id/cancel.
func (m *APIModule) cancelOrder(c *fiber.Ctx) error {
	caller := callerFrom(c)

	resp, err := m.orderAdapter.CancelOrder(c.Context(), c.Params("id"), caller.CustomerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !resp.Updated {
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error:   "transition_rejected",
			Message: "Order is missing, not owned by the caller, or not in a cancellable state",
		})
	}

	return c.JSON(resp)
}

// confirmOrder handles POST /api/v1/orders/:id/confirm.
func (m *APIModule) confirmOrder(c *fiber.Ctx) error {
	resp, err := m.orderAdapter.ConfirmOrder(c.Context(), c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !resp.Updated {
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error:   "transition_rejected",
			Message: "Order is missing or not in a confirmable state",
		})
	}

	return c.JSON(resp)
}

// deliverOrder handles POST /api/v1/orders/:id/deliver. Only the shop
// owner may mark orders delivered.
func (m *APIModule) deliverOrder(c *fiber.Ctx) error {
	caller := callerFrom(c)

	resp, err := m.orderAdapter.DeliverOrder(c.Context(), c.Params("id"), caller.CustomerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if !resp.Updated {
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error:   "transition_rejected",
			Message: "Order is missing, caller is not the owner, or order is not confirmed",
		})
	}

	return c.JSON(resp)
}

// getCart handles GET /api/v1/cart.
func (m *APIModule) getCart(c *fiber.Ctx) error {
	caller := callerFrom(c)

	resp, err := m.cartAdapter.GetCart(c.Context(), caller.CustomerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if resp.Error != "" {
		return failure(c, resp.Error)
	}

	return c.JSON(resp)
}

// addCartItem handles POST /api/v1/cart/items.
func (m *APIModule) addCartItem(c *fiber.Ctx) error {
	var req AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	caller := callerFrom(c)
	resp, err := m.cartAdapter.AddItem(c.Context(), &cart.AddItemRequest{
		CustomerID: caller.CustomerID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if resp.Error != "" {
		return failure(c, resp.Error)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// clearCart handles DELETE /api/v1/cart.
func (m *APIModule) clearCart(c *fiber.Ctx) error {
	caller := callerFrom(c)

	resp, err := m.cartAdapter.ClearCart(c.Context(), caller.CustomerID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if resp.Error != "" {
		return failure(c, resp.Error)
	}

	return c.JSON(resp)
}
