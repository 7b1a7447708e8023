package services

import (
	"context"
	"errors"
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

// accountNumberRetries bounds how often account creation retries when the
// randomly generated 8-digit number collides with an existing one.
const accountNumberRetries = 5

type AccountService struct {
	accountRepo portsrepo.AccountRepository
}

func NewAccountService(repo portsrepo.AccountRepository) *AccountService {
	return &AccountService{accountRepo: repo}
}

// CreateAccount opens a new account for the customer with a zero balance and
// a freshly generated account number. The number's uniqueness is enforced by
// the store; generation retries on collision.
func (s *AccountService) CreateAccount(ctx context.Context, customerID int64, req dto.CreateAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	account := domain.Account{
		UUID:        uuid.NewString(),
		Name:        req.AccountName,
		AccountType: req.AccountType,
		Balance:     0,
		CustomerID:  customerID,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	var saved *domain.Account
	for attempt := 0; attempt < accountNumberRetries; attempt++ {
		number, err := utils.GenerateAccountNumber()
		if err != nil {
			logger.Error("Failed to generate account number", slog.String("error", err.Error()))
			return nil, err
		}
		account.Number = number

		saved, err = s.accountRepo.SaveAccount(ctx, account)
		if err == nil {
			break
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Account number collision, retrying", slog.Int64("number", number), slog.Int("attempt", attempt+1))
			continue
		}
		logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("account_uuid", account.UUID))
		return nil, err
	}
	if saved == nil {
		return nil, apperrors.NewAppError(500, "exhausted account number generation retries", apperrors.ErrDuplicate)
	}

	logger.Info("Account created", slog.String("account_uuid", saved.UUID), slog.Int64("customer_id", customerID))
	return saved, nil
}

// ListCustomerAccounts returns all live accounts owned by the customer.
func (s *AccountService) ListCustomerAccounts(ctx context.Context, customerID int64) ([]domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.accountRepo.FindAccountsByCustomerID(ctx, customerID)
	if err != nil {
		logger.Error("Failed to list customer accounts", slog.String("error", err.Error()), slog.Int64("customer_id", customerID))
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}

	logger.Debug("Accounts listed", slog.Int("count", len(accounts)), slog.Int64("customer_id", customerID))
	return accounts, nil
}

// CloseAccount soft-deletes the customer's account. The row is never
// physically removed; its transaction history remains intact.
func (s *AccountService) CloseAccount(ctx context.Context, customerID int64, accountUUID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	err := s.accountRepo.SoftDeleteAccountByUUID(ctx, accountUUID, customerID, time.Now().UTC())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to close account", slog.String("error", err.Error()), slog.String("account_uuid", accountUUID))
		}
		return err
	}

	logger.Info("Account closed", slog.String("account_uuid", accountUUID), slog.Int64("customer_id", customerID))
	return nil
}
