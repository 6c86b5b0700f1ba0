package customer

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	domain "github.com/example/food-ordering/domain/customer"
	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidEmail is returned when email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrWeakPassword is returned when password is too weak.
	ErrWeakPassword = errors.New("password must be at least 8 characters")
	// ErrPasswordTooLong is returned when password exceeds bcrypt's 72-byte limit.
	ErrPasswordTooLong = errors.New("password must be at most 72 characters")
	// ErrMissingName is returned when the customer name is empty.
	ErrMissingName = errors.New("name is required")
)

// Service handles customer accounts and caller identity.
type Service struct {
	repo   *Repository
	hasher *PasswordHasher
	jwt    *JWTManager
}

// NewService creates a customer service.
func NewService(repo *Repository, hasher *PasswordHasher, jwt *JWTManager) *Service {
	return &Service{repo: repo, hasher: hasher, jwt: jwt}
}

// Register creates a new customer account.
func (s *Service) Register(_ context.Context, email, name, password string) (*domain.Customer, error) {
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}
	if name == "" {
		return nil, ErrMissingName
	}

	// bcrypt has a 72-byte input limit
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}
	if len(password) > 72 {
		return nil, ErrPasswordTooLong
	}

	exists, err := s.repo.EmailExists(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, ErrCustomerExists
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	c := &domain.Customer{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(c); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return c, nil
}

// Login authenticates a customer and returns tokens.
func (s *Service) Login(_ context.Context, email, password string) (*domain.TokenPair, error) {
	c, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	if !s.hasher.Verify(password, c.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.generateTokenPair(c.ID, c.Email)
}

// RefreshTokens generates new access and refresh tokens.
func (s *Service) RefreshTokens(_ context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	c, err := s.repo.FindByID(claims.CustomerID)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return s.generateTokenPair(c.ID, c.Email)
}

// ValidateToken validates an access token and returns the caller identity.
func (s *Service) ValidateToken(_ context.Context, token string) (*domain.Claims, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}
	return &domain.Claims{
		CustomerID: claims.CustomerID,
		Email:      claims.Email,
	}, nil
}

// GetCustomer retrieves a customer by ID.
func (s *Service) GetCustomer(_ context.Context, customerID string) (*domain.Customer, error) {
	return s.repo.FindByID(customerID)
}

// generateTokenPair generates both access and refresh tokens.
func (s *Service) generateTokenPair(customerID, email string) (*domain.TokenPair, error) {
	accessToken, err := s.jwt.GenerateAccessToken(customerID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwt.GenerateRefreshToken(customerID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    s.jwt.AccessTokenDuration(),
		TokenType:    "Bearer",
	}, nil
}
