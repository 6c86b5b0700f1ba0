package customer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	domain "github.com/example/food-ordering/domain/customer"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Module provides customer account and caller identity services.
type Module struct {
	db      *gorm.DB
	service *Service
	dbPath  string
}

var _ mono.Module = (*Module)(nil)
var _ mono.ServiceProviderModule = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

// NewModule creates a new customer module.
func NewModule() *Module {
	dbPath := os.Getenv("CUSTOMER_DB_PATH")
	if dbPath == "" {
		dbPath = "customers.db"
	}
	return &Module{dbPath: dbPath}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "customer"
}

// RegisterServices registers the customer request-reply services.
func (m *Module) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "register-customer", json.Unmarshal, json.Marshal, m.register,
	); err != nil {
		return fmt.Errorf("failed to register register-customer service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "login-customer", json.Unmarshal, json.Marshal, m.login,
	); err != nil {
		return fmt.Errorf("failed to register login-customer service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "refresh-tokens", json.Unmarshal, json.Marshal, m.refresh,
	); err != nil {
		return fmt.Errorf("failed to register refresh-tokens service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "validate-token", json.Unmarshal, json.Marshal, m.validateToken,
	); err != nil {
		return fmt.Errorf("failed to register validate-token service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "get-customer", json.Unmarshal, json.Marshal, m.getCustomer,
	); err != nil {
		return fmt.Errorf("failed to register get-customer service: %w", err)
	}

	log.Printf("[customer] Registered services: register-customer, login-customer, refresh-tokens, validate-token, get-customer")
	return nil
}

// register handles the register-customer service request.
func (m *Module) register(ctx context.Context, req RegisterRequest, _ *mono.Msg) (RegisterResponse, error) {
	c, err := m.service.Register(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		if code := failureCode(err); code != "" {
			return RegisterResponse{Error: code}, nil
		}
		return RegisterResponse{}, err
	}
	return RegisterResponse{Customer: toCustomerRecord(c)}, nil
}

// login handles the login-customer service request.
func (m *Module) login(ctx context.Context, req LoginRequest, _ *mono.Msg) (TokenResponse, error) {
	pair, err := m.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if code := failureCode(err); code != "" {
			return TokenResponse{Error: code}, nil
		}
		return TokenResponse{}, err
	}
	return toTokenResponse(pair), nil
}

// refresh handles the refresh-tokens service request.
func (m *Module) refresh(ctx context.Context, req RefreshRequest, _ *mono.Msg) (TokenResponse, error) {
	pair, err := m.service.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		if code := failureCode(err); code != "" {
			return TokenResponse{Error: code}, nil
		}
		return TokenResponse{}, err
	}
	return toTokenResponse(pair), nil
}

// validateToken handles the validate-token service request. An invalid
// token is a Valid=false value, not an error.
func (m *Module) validateToken(ctx context.Context, req ValidateTokenRequest, _ *mono.Msg) (ValidateTokenResponse, error) {
	claims, err := m.service.ValidateToken(ctx, req.Token)
	if err != nil {
		return ValidateTokenResponse{Valid: false}, nil
	}
	return ValidateTokenResponse{
		Valid:      true,
		CustomerID: claims.CustomerID,
		Email:      claims.Email,
	}, nil
}

// getCustomer handles the get-customer service request.
func (m *Module) getCustomer(ctx context.Context, req GetCustomerRequest, _ *mono.Msg) (GetCustomerResponse, error) {
	c, err := m.service.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		if code := failureCode(err); code != "" {
			return GetCustomerResponse{Error: code}, nil
		}
		return GetCustomerResponse{}, err
	}
	return GetCustomerResponse{Customer: toCustomerRecord(c)}, nil
}

// Start opens the SQLite database and wires the service.
func (m *Module) Start(_ context.Context) error {
	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&domain.Customer{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	repo := NewRepository(db)
	hasher := NewPasswordHasher()
	jwtManager := NewJWTManager(loadJWTConfig())
	m.service = NewService(repo, hasher, jwtManager)

	log.Printf("[customer] Module started (database: %s)", m.dbPath)
	return nil
}

// Stop closes the database connection.
func (m *Module) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[customer] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{Healthy: false, Message: "database not initialized"}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{Healthy: false, Message: fmt.Sprintf("failed to get database connection: %v", err)}
	}
	if err := sqlDB.Ping(); err != nil {
		return mono.HealthStatus{Healthy: false, Message: fmt.Sprintf("database ping failed: %v", err)}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{"database": m.dbPath},
	}
}

// loadJWTConfig loads JWT configuration from the environment, falling
// back to defaults.
func loadJWTConfig() JWTConfig {
	config := DefaultJWTConfig()
	if secret := os.Getenv("JWT_SECRET_KEY"); secret != "" {
		config.SecretKey = secret
	}
	if issuer := os.Getenv("JWT_ISSUER"); issuer != "" {
		config.Issuer = issuer
	}
	if ttl := os.Getenv("JWT_ACCESS_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			config.AccessTokenDuration = d
		}
	}
	return config
}

// toCustomerRecord converts a domain Customer to its wire shape.
func toCustomerRecord(c *domain.Customer) *CustomerRecord {
	return &CustomerRecord{
		ID:        c.ID,
		Email:     c.Email,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

// toTokenResponse converts a domain TokenPair to its wire shape.
func toTokenResponse(pair *domain.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		TokenType:    pair.TokenType,
	}
}
