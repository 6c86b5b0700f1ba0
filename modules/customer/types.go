package customer

import (
	"context"
	"errors"
	"time"
)

// Failure reason codes carried in responses across the service container.
const (
	CodeInvalidInput       = "invalid_input"
	CodeAlreadyExists      = "already_exists"
	CodeInvalidCredentials = "invalid_credentials"
	CodeNotFound           = "not_found"
)

// failureCode maps a sentinel error to its wire-level reason code.
func failureCode(err error) string {
	switch {
	case errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrWeakPassword),
		errors.Is(err, ErrPasswordTooLong),
		errors.Is(err, ErrMissingName):
		return CodeInvalidInput
	case errors.Is(err, ErrCustomerExists):
		return CodeAlreadyExists
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrExpiredToken):
		return CodeInvalidCredentials
	case errors.Is(err, ErrCustomerNotFound):
		return CodeNotFound
	default:
		return ""
	}
}

// CustomerRecord is the wire shape of a customer account. The password
// hash never leaves the module.
type CustomerRecord struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest is the request for creating an account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// RegisterResponse is the response for creating an account.
type RegisterResponse struct {
	Customer *CustomerRecord `json:"customer,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// LoginRequest is the request for authenticating a customer.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the request for rotating tokens.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse is the response for login and refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	Error        string `json:"error,omitempty"`
}

// ValidateTokenRequest is the request for validating an access token.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// ValidateTokenResponse is the caller identity for a valid token.
type ValidateTokenResponse struct {
	Valid      bool   `json:"valid"`
	CustomerID string `json:"customer_id,omitempty"`
	Email      string `json:"email,omitempty"`
}

// GetCustomerRequest is the request for fetching an account.
type GetCustomerRequest struct {
	CustomerID string `json:"customer_id"`
}

// GetCustomerResponse is the response for fetching an account.
type GetCustomerResponse struct {
	Customer *CustomerRecord `json:"customer,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// CustomerPort defines the interface the API uses for accounts and
// caller identity (hexagonal port).
type CustomerPort interface {
	Register(ctx context.Context, req *RegisterRequest) (*RegisterResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error)
	ValidateToken(ctx context.Context, token string) (*ValidateTokenResponse, error)
	GetCustomer(ctx context.Context, customerID string) (*GetCustomerResponse, error)
}
