package customer

import (
	"errors"

	domain "github.com/example/food-ordering/domain/customer"
	"gorm.io/gorm"
)

var (
	// ErrCustomerNotFound is returned when a customer is not found.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrCustomerExists is returned when the email is already registered.
	ErrCustomerExists = errors.New("customer with this email already exists")
)

// Repository handles customer persistence using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new customer repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new customer.
func (r *Repository) Create(c *domain.Customer) error {
	if err := r.db.Create(c).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a customer by ID.
func (r *Repository) FindByID(id string) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByEmail finds a customer by email.
func (r *Repository) FindByEmail(email string) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.First(&c, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// EmailExists reports whether the email is already registered.
func (r *Repository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&domain.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
