package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/corebank/retail_banking_app/internal/apperrors"
	"github.com/corebank/retail_banking_app/internal/core/domain"
	portsrepo "github.com/corebank/retail_banking_app/internal/core/ports/repositories"
	"github.com/corebank/retail_banking_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// NewTransactionRepository creates a new repository for transaction data and
// the balance mutations tied to it.
func NewTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const insertTransactionQuery = `
	INSERT INTO transactions (uuid, type, amount, account_id, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id;
`

// Balance writes are delta updates against rows already locked FOR UPDATE in
// the same transaction, so concurrent mutations of one account serialize on
// the row lock and no update can be lost.
const applyBalanceDeltaQuery = `
	UPDATE accounts
	SET balance = balance + $2, updated_at = $3
	WHERE id = $1
	RETURNING balance;
`

// SaveTransaction records a single debit/credit and applies it to the account
// balance within one database transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after successful commit

	// Lock the account row first; this also serves as the existence and
	// soft-deletion check.
	var accountID int64
	err = tx.QueryRow(ctx,
		`SELECT id FROM accounts WHERE id = $1 AND deleted_at IS NULL FOR UPDATE;`,
		txn.AccountID,
	).Scan(&accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to lock account %d", txn.AccountID), err)
	}

	if err := insertTransaction(ctx, tx, &txn); err != nil {
		return 0, err
	}

	var newBalance int64
	err = tx.QueryRow(ctx, applyBalanceDeltaQuery,
		txn.AccountID,
		txn.Type.SignedAmount(txn.Amount),
		txn.UpdatedAt,
	).Scan(&newBalance)
	if err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to update balance for account %d", txn.AccountID), err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// SaveTransfer records a debit against the donor and a credit against the
// recipient and applies both balance changes within one database transaction.
// Both account rows are locked in a single FOR UPDATE query ordered by
// internal id, so two transfers over the same pair in opposite directions
// acquire locks in the same order and cannot deadlock.
func (r *PgxTransactionRepository) SaveTransfer(ctx context.Context, donorUUID, recipientUUID string, debit, credit domain.Transaction) (*domain.TransferResult, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after successful commit

	rows, err := tx.Query(ctx,
		`SELECT id, uuid FROM accounts
		 WHERE uuid = ANY($1) AND deleted_at IS NULL
		 ORDER BY id
		 FOR UPDATE;`,
		[]string{donorUUID, recipientUUID},
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock accounts for transfer", err)
	}

	idsByUUID := make(map[string]int64, 2)
	for rows.Next() {
		var id int64
		var accUUID string
		if err := rows.Scan(&id, &accUUID); err != nil {
			rows.Close()
			return nil, apperrors.NewAppError(500, "failed to scan locked account row", err)
		}
		idsByUUID[accUUID] = id
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating locked account rows", err)
	}

	donorID, donorOK := idsByUUID[donorUUID]
	recipientID, recipientOK := idsByUUID[recipientUUID]
	if !donorOK || !recipientOK || donorID == recipientID {
		// Either UUID failed to resolve to a distinct live account.
		return nil, apperrors.ErrNotFound
	}

	debit.AccountID = donorID
	credit.AccountID = recipientID
	if err := insertTransaction(ctx, tx, &debit); err != nil {
		return nil, err
	}
	if err := insertTransaction(ctx, tx, &credit); err != nil {
		return nil, err
	}

	result := &domain.TransferResult{
		DebitTransactionUUID:  debit.UUID,
		CreditTransactionUUID: credit.UUID,
		DonorAccountID:        donorID,
		RecipientAccountID:    recipientID,
	}

	err = tx.QueryRow(ctx, applyBalanceDeltaQuery,
		donorID, -debit.Amount, debit.UpdatedAt,
	).Scan(&result.DonorNewBalance)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to update donor balance for account %d", donorID), err)
	}

	err = tx.QueryRow(ctx, applyBalanceDeltaQuery,
		recipientID, credit.Amount, credit.UpdatedAt,
	).Scan(&result.RecipientNewBalance)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to update recipient balance for account %d", recipientID), err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return result, nil
}

func insertTransaction(ctx context.Context, tx pgx.Tx, txn *domain.Transaction) error {
	err := tx.QueryRow(ctx, insertTransactionQuery,
		txn.UUID,
		models.TransactionType(txn.Type),
		txn.Amount,
		txn.AccountID,
		txn.CreatedAt,
		txn.UpdatedAt,
	).Scan(&txn.ID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert transaction "+txn.UUID, err)
	}
	return nil
}

// FindTransactionsByAccountIDs lists transactions for the given accounts,
// optionally filtered by a substring match on the amount text or the type.
func (r *PgxTransactionRepository) FindTransactionsByAccountIDs(ctx context.Context, accountIDs []int64, searchTerm string) ([]domain.Transaction, error) {
	if len(accountIDs) == 0 {
		return []domain.Transaction{}, nil
	}

	query := `
		SELECT id, uuid, type, amount, account_id, created_at, updated_at
		FROM transactions
		WHERE account_id = ANY($1) AND deleted_at IS NULL
	`
	args := []any{accountIDs}
	if searchTerm != "" {
		query += ` AND (amount::text ILIKE '%' || $2 || '%' OR type::text ILIKE '%' || $2 || '%')`
		args = append(args, searchTerm)
	}
	query += ` ORDER BY created_at DESC, id DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.ID,
			&m.UUID,
			&m.Type,
			&m.Amount,
			&m.AccountID,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		transactions = append(transactions, domain.Transaction{
			ID:        m.ID,
			UUID:      m.UUID,
			Type:      domain.TransactionType(m.Type),
			Amount:    m.Amount,
			AccountID: m.AccountID,
			Timestamps: domain.Timestamps{
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	return transactions, nil
}
