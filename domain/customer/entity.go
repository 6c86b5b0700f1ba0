package customer

import "time"

// Customer represents a registered customer account.
type Customer struct {
	ID           string `gorm:"primaryKey;type:text" json:"id"`
	Email        string `gorm:"uniqueIndex;not null;type:text" json:"email"`
	Name         string `gorm:"not null;type:text" json:"name"`
	PasswordHash string `gorm:"not null;type:text" json:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for the Customer entity.
func (Customer) TableName() string {
	return "customers"
}

// TokenPair represents access and refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// Claims is the caller identity extracted from a validated token.
type Claims struct {
	CustomerID string `json:"customer_id"`
	Email      string `json:"email"`
}
