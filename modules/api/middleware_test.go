package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/example/food-ordering/modules/customer"
	"github.com/gofiber/fiber/v2"
)

// mockCustomerPort implements customer.CustomerPort for testing.
type mockCustomerPort struct {
	validateTokenFunc func(ctx context.Context, token string) (*customer.ValidateTokenResponse, error)
}

func (m *mockCustomerPort) Register(_ context.Context, _ *customer.RegisterRequest) (*customer.RegisterResponse, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCustomerPort) Login(_ context.Context, _ *customer.LoginRequest) (*customer.TokenResponse, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCustomerPort) Refresh(_ context.Context, _ string) (*customer.TokenResponse, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCustomerPort) ValidateToken(ctx context.Context, token string) (*customer.ValidateTokenResponse, error) {
	if m.validateTokenFunc != nil {
		return m.validateTokenFunc(ctx, token)
	}
	return nil, errors.New("not implemented")
}

func (m *mockCustomerPort) GetCustomer(_ context.Context, _ string) (*customer.GetCustomerResponse, error) {
	return nil, errors.New("not implemented")
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		mockCustomer   *mockCustomerPort
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "missing authorization header",
			authHeader:     "",
			mockCustomer:   &mockCustomerPort{},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"Authorization header is required"`,
		},
		{
			name:           "invalid authorization format - no bearer",
			authHeader:     "Basic token123",
			mockCustomer:   &mockCustomerPort{},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `Invalid authorization header format`,
		},
		{
			name:       "transport failure",
			authHeader: "Bearer some-token",
			mockCustomer: &mockCustomerPort{
				validateTokenFunc: func(_ context.Context, _ string) (*customer.ValidateTokenResponse, error) {
					return nil, errors.New("service unavailable")
				},
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"Invalid or expired token"`,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer invalid-token",
			mockCustomer: &mockCustomerPort{
				validateTokenFunc: func(_ context.Context, _ string) (*customer.ValidateTokenResponse, error) {
					return &customer.ValidateTokenResponse{Valid: false}, nil
				},
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"Invalid or expired token"`,
		},
		{
			name:       "valid token",
			authHeader: "Bearer valid-token",
			mockCustomer: &mockCustomerPort{
				validateTokenFunc: func(_ context.Context, _ string) (*customer.ValidateTokenResponse, error) {
					return &customer.ValidateTokenResponse{
						Valid:      true,
						CustomerID: "customer-123",
						Email:      "test@example.com",
					}, nil
				},
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"authenticated"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(AuthMiddleware(tt.mockCustomer))
			app.Get("/test", func(c *fiber.Ctx) error {
				return c.JSON(fiber.Map{"status": "authenticated"})
			})

			req := httptest.NewRequest("GET", "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.expectedStatus {
				t.Errorf("status = %v, want %v", resp.StatusCode, tt.expectedStatus)
			}

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				t.Fatalf("io.ReadAll() error = %v", err)
			}
			if tt.expectedBody != "" && !strings.Contains(string(body), tt.expectedBody) {
				t.Errorf("body = %v, want to contain %v", string(body), tt.expectedBody)
			}
		})
	}
}

func TestAuthMiddlewareCallerContext(t *testing.T) {
	mockCustomer := &mockCustomerPort{
		validateTokenFunc: func(_ context.Context, _ string) (*customer.ValidateTokenResponse, error) {
			return &customer.ValidateTokenResponse{
				Valid:      true,
				CustomerID: "customer-456",
				Email:      "context@example.com",
			}, nil
		},
	}

	app := fiber.New()
	app.Use(AuthMiddleware(mockCustomer))

	var captured Caller
	app.Get("/test", func(c *fiber.Ctx) error {
		captured = callerFrom(c)
		return c.JSON(fiber.Map{"status": "ok"})
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer valid-token")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %v, want %v", resp.StatusCode, http.StatusOK)
	}
	if captured.CustomerID != "customer-456" {
		t.Errorf("caller.CustomerID = %v, want %v", captured.CustomerID, "customer-456")
	}
	if captured.Email != "context@example.com" {
		t.Errorf("caller.Email = %v, want %v", captured.Email, "context@example.com")
	}
}

func TestFailureStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"invalid_input", http.StatusBadRequest},
		{"not_found", http.StatusNotFound},
		{"unauthorized", http.StatusForbidden},
		{"duplicate_id", http.StatusConflict},
		{"already_exists", http.StatusConflict},
		{"invalid_credentials", http.StatusUnauthorized},
		{"something_else", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got, _ := failureStatus(tt.code); got != tt.want {
			t.Errorf("failureStatus(%q) = %d, want %d", tt.code, got, tt.want)
		}
	}
}
