package customer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// customerAdapter wraps ServiceContainer for type-safe cross-module
// communication. This is the adapter that implements the CustomerPort.
type customerAdapter struct {
	container mono.ServiceContainer
}

// NewCustomerAdapter creates a new adapter for customer services.
func NewCustomerAdapter(container mono.ServiceContainer) CustomerPort {
	if container == nil {
		panic("customer adapter requires non-nil ServiceContainer")
	}
	return &customerAdapter{container: container}
}

// Register creates an account via the register-customer service.
func (a *customerAdapter) Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "register-customer",
		json.Marshal, json.Unmarshal,
		req, &resp,
	); err != nil {
		return nil, fmt.Errorf("register-customer service call failed: %w", err)
	}
	return &resp, nil
}

// Login authenticates via the login-customer service.
func (a *customerAdapter) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	var resp TokenResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "login-customer",
		json.Marshal, json.Unmarshal,
		req, &resp,
	); err != nil {
		return nil, fmt.Errorf("login-customer service call failed: %w", err)
	}
	return &resp, nil
}

// Refresh rotates tokens via the refresh-tokens service.
func (a *customerAdapter) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	req := RefreshRequest{RefreshToken: refreshToken}
	var resp TokenResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "refresh-tokens",
		json.Marshal, json.Unmarshal,
		&req, &resp,
	); err != nil {
		return nil, fmt.Errorf("refresh-tokens service call failed: %w", err)
	}
	return &resp, nil
}

// ValidateToken resolves a caller identity via the validate-token service.
func (a *customerAdapter) ValidateToken(ctx context.Context, token string) (*ValidateTokenResponse, error) {
	req := ValidateTokenRequest{Token: token}
	var resp ValidateTokenResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "validate-token",
		json.Marshal, json.Unmarshal,
		&req, &resp,
	); err != nil {
		return nil, fmt.Errorf("validate-token service call failed: %w", err)
	}
	return &resp, nil
}

// GetCustomer fetches an account via the get-customer service.
func (a *customerAdapter) GetCustomer(ctx context.Context, customerID string) (*GetCustomerResponse, error) {
	req := GetCustomerRequest{CustomerID: customerID}
	var resp GetCustomerResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-customer",
		json.Marshal, json.Unmarshal,
		&req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get-customer service call failed: %w", err)
	}
	return &resp, nil
}
