package api

import (
	"strings"

	"github.com/example/food-ordering/modules/customer"
	"github.com/gofiber/fiber/v2"
)

const (
	// CallerContextKey is the key used to store the caller identity in the
	// Fiber context.
	CallerContextKey = "caller"
)

// Caller is the authenticated identity attached to each request.
type Caller struct {
	CustomerID string
	Email      string
}

// AuthMiddleware creates a middleware that resolves the caller identity
// from a Bearer token via the customer module.
func AuthMiddleware(customerAdapter customer.CustomerPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Authorization header is required",
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Invalid authorization header format. Use: Bearer <token>",
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Token is required",
			})
		}

		resp, err := customerAdapter.ValidateToken(c.UserContext(), token)
		if err != nil || !resp.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
				Error:   "unauthorized",
				Message: "Invalid or expired token",
			})
		}

		c.Locals(CallerContextKey, Caller{
			CustomerID: resp.CustomerID,
			Email:      resp.Email,
		})

		return c.Next()
	}
}

// callerFrom extracts the caller identity stored by AuthMiddleware.
func callerFrom(c *fiber.Ctx) Caller {
	caller, _ := c.Locals(CallerContextKey).(Caller)
	return caller
}
