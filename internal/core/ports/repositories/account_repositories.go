package repositories

import (
	"context"
	"time"

	"github.com/corebank/retail_banking_app/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts. Balance
// writes are deliberately absent here: they happen only inside the
// TransactionRepository's atomic operations.
type AccountRepository interface {
	// SaveAccount inserts a new account and returns it with the
	// storage-assigned ID populated. Returns apperrors.ErrDuplicate when the
	// generated account number collides with an existing one.
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// FindAccountByID retrieves a live account by internal ID.
	// Returns apperrors.ErrNotFound when missing or soft-deleted.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// FindAccountsByCustomerID retrieves all live accounts owned by a customer.
	FindAccountsByCustomerID(ctx context.Context, customerID int64) ([]domain.Account, error)

	// SoftDeleteAccountByUUID marks the customer's account as deleted.
	// Returns apperrors.ErrNotFound when no live account matches.
	SoftDeleteAccountByUUID(ctx context.Context, accountUUID string, customerID int64, now time.Time) error
}
