package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/corebank/retail_banking_app/internal/apperrors"
	"github.com/corebank/retail_banking_app/internal/core/domain"
	portsrepo "github.com/corebank/retail_banking_app/internal/core/ports/repositories"
	"github.com/corebank/retail_banking_app/internal/dto"
	"github.com/corebank/retail_banking_app/internal/middleware"
	"github.com/corebank/retail_banking_app/internal/utils"
	"github.com/google/uuid"
)

// TransactionService is the balance mutation core: it owns every write to an
// account balance and the append-only transaction log behind it.
type TransactionService struct {
	accountRepo portsrepo.AccountRepository
	txnRepo     portsrepo.TransactionRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(accountRepo portsrepo.AccountRepository, txnRepo portsrepo.TransactionRepository) *TransactionService {
	return &TransactionService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

// CreateDeposit credits amount to the account and returns the new balance.
func (s *TransactionService) CreateDeposit(ctx context.Context, accountID int64, amount int64) (*dto.TransactionResult, error) {
	return s.recordTransaction(ctx, accountID, domain.Credit, amount)
}

// CreateWithdrawal debits amount from the account and returns the new
// balance. No sufficient-funds check is performed; balances may go negative.
func (s *TransactionService) CreateWithdrawal(ctx context.Context, accountID int64, amount int64) (*dto.TransactionResult, error) {
	return s.recordTransaction(ctx, accountID, domain.Debit, amount)
}

// recordTransaction appends one transaction row and applies it to the account
// balance as a single atomic unit. The HTTP layer validates amounts before we
// run, but a non-positive amount is rejected here again rather than trusted.
func (s *TransactionService) recordTransaction(ctx context.Context, accountID int64, kind domain.TransactionType, amount int64) (*dto.TransactionResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount <= 0 {
		return nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		UUID:      uuid.NewString(),
		Type:      kind,
		Amount:    amount,
		AccountID: accountID,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	newBalance, err := s.txnRepo.SaveTransaction(ctx, txn)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to save transaction", slog.String("error", err.Error()), slog.Int64("account_id", accountID))
		}
		return nil, err
	}

	logger.Info("Transaction recorded",
		slog.String("transaction_uuid", txn.UUID),
		slog.String("type", string(kind)),
		slog.Int64("account_id", accountID),
		slog.Int64("new_balance", newBalance),
	)
	return &dto.TransactionResult{
		TransactionUUID:   txn.UUID,
		NewBalance:        newBalance,
		NewBalanceDisplay: utils.FormatAmount(newBalance),
	}, nil
}

// TransferFunds moves amount from the donor account to the recipient account.
// The debit, credit and both balance updates are atomic as a group: a
// transfer is never observable half-applied.
func (s *TransactionService) TransferFunds(ctx context.Context, donorUUID, recipientUUID string, amount int64) (*dto.TransferResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount <= 0 {
		return nil, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}
	if donorUUID == recipientUUID {
		return nil, apperrors.ErrSameAccount
	}

	now := time.Now().UTC()
	stamps := domain.Timestamps{CreatedAt: now, UpdatedAt: now}
	debit := domain.Transaction{
		UUID:       uuid.NewString(),
		Type:       domain.Debit,
		Amount:     amount,
		Timestamps: stamps,
	}
	credit := domain.Transaction{
		UUID:       uuid.NewString(),
		Type:       domain.Credit,
		Amount:     amount,
		Timestamps: stamps,
	}

	result, err := s.txnRepo.SaveTransfer(ctx, donorUUID, recipientUUID, debit, credit)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to save transfer", slog.String("error", err.Error()),
				slog.String("donor_uuid", donorUUID), slog.String("recipient_uuid", recipientUUID))
		}
		return nil, err
	}

	logger.Info("Transfer completed",
		slog.Int64("donor_account_id", result.DonorAccountID),
		slog.Int64("recipient_account_id", result.RecipientAccountID),
		slog.Int64("amount", amount),
	)
	return &dto.TransferResult{
		DonorNewBalance:     result.DonorNewBalance,
		RecipientNewBalance: result.RecipientNewBalance,
	}, nil
}

// ListTransactions returns the customer's transactions across all their live
// accounts, filtered by searchTerm, each enriched with its owning account's
// display attributes, plus the account list itself.
func (s *TransactionService) ListTransactions(ctx context.Context, customerID int64, searchTerm string) (*dto.TransactionListResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.FindAccountsByCustomerID(ctx, customerID)
	if err != nil {
		logger.Error("Failed to list accounts for transaction query", slog.String("error", err.Error()), slog.Int64("customer_id", customerID))
		return nil, err
	}

	accountsByID := make(map[int64]*domain.Account, len(accounts))
	accountIDs := make([]int64, len(accounts))
	for i := range accounts {
		accountsByID[accounts[i].ID] = &accounts[i]
		accountIDs[i] = accounts[i].ID
	}

	transactions, err := s.txnRepo.FindTransactionsByAccountIDs(ctx, accountIDs, searchTerm)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()), slog.Int64("customer_id", customerID))
		return nil, err
	}

	records := make([]dto.TransactionRecord, len(transactions))
	for i := range transactions {
		records[i] = dto.ToTransactionRecord(&transactions[i], accountsByID[transactions[i].AccountID])
	}

	logger.Debug("Transactions listed", slog.Int("count", len(records)), slog.Int64("customer_id", customerID))
	return &dto.TransactionListResponse{
		Transactions: records,
		Accounts:     dto.ToAccountResponseList(accounts),
	}, nil
}
