package customer

import (
	"errors"
	"testing"
	"time"
)

func testJWTConfig() JWTConfig {
	return JWTConfig{
		SecretKey:            "test-secret-key",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 7 * 24 * time.Hour,
		Issuer:               "food-ordering-test",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testJWTConfig())

	token, err := m.GenerateAccessToken("customer-1", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken() error = %v", err)
	}
	if claims.CustomerID != "customer-1" {
		t.Errorf("CustomerID = %q, want %q", claims.CustomerID, "customer-1")
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "alice@example.com")
	}
	if claims.TokenType != "access" {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, "access")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testJWTConfig())

	token, err := m.GenerateRefreshToken("customer-1", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	claims, err := m.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("ValidateRefreshToken() error = %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, "refresh")
	}
}

func TestTokenTypeMismatch(t *testing.T) {
	m := NewJWTManager(testJWTConfig())

	access, _ := m.GenerateAccessToken("customer-1", "alice@example.com")
	refresh, _ := m.GenerateRefreshToken("customer-1", "alice@example.com")

	if _, err := m.ValidateAccessToken(refresh); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateAccessToken(refresh token) error = %v, want ErrInvalidToken", err)
	}
	if _, err := m.ValidateRefreshToken(access); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateRefreshToken(access token) error = %v, want ErrInvalidToken", err)
	}
}

func TestExpiredToken(t *testing.T) {
	config := testJWTConfig()
	config.AccessTokenDuration = -time.Minute
	m := NewJWTManager(config)

	token, err := m.GenerateAccessToken("customer-1", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := m.ValidateAccessToken(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateAccessToken(expired) error = %v, want ErrExpiredToken", err)
	}
}

func TestTamperedToken(t *testing.T) {
	m := NewJWTManager(testJWTConfig())

	token, _ := m.GenerateAccessToken("customer-1", "alice@example.com")

	other := NewJWTManager(JWTConfig{
		SecretKey:           "a-different-secret",
		AccessTokenDuration: 15 * time.Minute,
		Issuer:              "food-ordering-test",
	})
	if _, err := other.ValidateAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateAccessToken(wrong secret) error = %v, want ErrInvalidToken", err)
	}

	if _, err := m.ValidateAccessToken(token + "x"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateAccessToken(mangled) error = %v, want ErrInvalidToken", err)
	}
	if _, err := m.ValidateAccessToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateAccessToken(garbage) error = %v, want ErrInvalidToken", err)
	}
}
