package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corebank/retail_banking_app/internal/apperrors"
	"github.com/corebank/retail_banking_app/internal/core/domain"
	portsrepo "github.com/corebank/retail_banking_app/internal/core/ports/repositories"
	"github.com/corebank/retail_banking_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `id, uuid, name, number, type, balance,
	credit_card_issued, credit_card_issued_at,
	debit_card_issued, debit_card_issued_at,
	cheque_book_issued, cheque_book_issued_at,
	customer_id, created_at, updated_at, deleted_at`

type PgxAccountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:                 m.ID,
		UUID:               m.UUID,
		Name:               m.Name,
		Number:             m.Number,
		AccountType:        domain.AccountType(m.AccountType),
		Balance:            m.Balance,
		CreditCardIssued:   m.CreditCardIssued,
		CreditCardIssuedAt: m.CreditCardIssuedAt,
		DebitCardIssued:    m.DebitCardIssued,
		DebitCardIssuedAt:  m.DebitCardIssuedAt,
		ChequeBookIssued:   m.ChequeBookIssued,
		ChequeBookIssuedAt: m.ChequeBookIssuedAt,
		CustomerID:         m.CustomerID,
		Timestamps: domain.Timestamps{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
			DeletedAt: m.DeletedAt,
		},
	}
}

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.ID,
		&m.UUID,
		&m.Name,
		&m.Number,
		&m.AccountType,
		&m.Balance,
		&m.CreditCardIssued,
		&m.CreditCardIssuedAt,
		&m.DebitCardIssued,
		&m.DebitCardIssuedAt,
		&m.ChequeBookIssued,
		&m.ChequeBookIssuedAt,
		&m.CustomerID,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.DeletedAt,
	)
	return m, err
}

// SaveAccount inserts a new account and returns it with the assigned ID.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (uuid, name, number, type, balance, customer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		account.UUID,
		account.Name,
		account.Number,
		models.AccountType(account.AccountType),
		account.Balance,
		account.CustomerID,
		account.CreatedAt,
		account.UpdatedAt,
	).Scan(&account.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: account number %d already in use", apperrors.ErrDuplicate, account.Number)
		}
		return nil, fmt.Errorf("failed to save account %s: %w", account.UUID, err)
	}
	return &account, nil
}

// FindAccountByID retrieves a live account by internal ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 AND deleted_at IS NULL;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %d: %w", accountID, err)
	}

	domainAcc := toDomainAccount(m)
	return &domainAcc, nil
}

// FindAccountsByCustomerID retrieves all live accounts owned by a customer.
func (r *PgxAccountRepository) FindAccountsByCustomerID(ctx context.Context, customerID int64) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + `
		FROM accounts
		WHERE customer_id = $1 AND deleted_at IS NULL
		ORDER BY created_at;`

	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for customer %d: %w", customerID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row for customer %d: %w", customerID, err)
		}
		accounts = append(accounts, toDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows for customer %d: %w", customerID, err)
	}

	return accounts, nil
}

// SoftDeleteAccountByUUID marks the customer's account as deleted.
func (r *PgxAccountRepository) SoftDeleteAccountByUUID(ctx context.Context, accountUUID string, customerID int64, now time.Time) error {
	query := `
		UPDATE accounts
		SET deleted_at = $3, updated_at = $3
		WHERE uuid = $1 AND customer_id = $2 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, accountUUID, customerID, now)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountUUID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
