package repositories

import (
	"context"

	"github.com/corebank/retail_banking_app/internal/core/domain"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	// SaveCustomer inserts a new customer and returns it with the
	// storage-assigned ID populated. Returns apperrors.ErrDuplicate when the
	// email is already registered.
	SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)

	// FindCustomerByID retrieves a live customer by internal ID.
	// Returns apperrors.ErrNotFound when missing or soft-deleted.
	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)

	// FindCustomerByEmail retrieves a live customer by email address.
	FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error)

	// UpdateCustomerProfile updates the mutable profile fields.
	UpdateCustomerProfile(ctx context.Context, customer domain.Customer) error

	// UpdateCustomerPassword replaces the stored password hash.
	UpdateCustomerPassword(ctx context.Context, customerID int64, passwordHash string) error
}
