package repositories

import (
	"context"

	"github.com/corebank/retail_banking_app/internal/core/domain"
)

// TransactionRepository persists the balance-mutating operations. Each
// mutating method runs as one database transaction: the affected account rows
// are locked for update, the transaction rows inserted, and the balances
// delta-updated, so either every effect is visible or none is.
type TransactionRepository interface {
	// SaveTransaction records a single debit/credit and applies it to the
	// account balance atomically. The caller supplies UUID, type, amount,
	// account ID and timestamps; the new balance is returned.
	// Returns apperrors.ErrNotFound when the account is missing or deleted.
	SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error)

	// SaveTransfer resolves both accounts by UUID, records the debit against
	// the donor and the credit against the recipient, and applies both
	// balance changes, all atomically. The debit and credit rows carry their
	// UUIDs, type, amount and timestamps; their account IDs are filled from
	// the resolved rows. Returns apperrors.ErrNotFound unless exactly two
	// distinct live accounts match.
	SaveTransfer(ctx context.Context, donorUUID, recipientUUID string, debit, credit domain.Transaction) (*domain.TransferResult, error)

	// FindTransactionsByAccountIDs lists transactions belonging to any of the
	// given accounts. A non-empty searchTerm keeps only rows whose amount
	// (rendered as text) or type contains it as a substring.
	FindTransactionsByAccountIDs(ctx context.Context, accountIDs []int64, searchTerm string) ([]domain.Transaction, error)
}
