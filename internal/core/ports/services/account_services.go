package services

import (
	"context"

	"github.com/corebank/retail_banking_app/internal/core/domain"
	"github.com/corebank/retail_banking_app/internal/dto"
)

// AccountSvcFacade defines the account operations exposed to handlers.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, customerID int64, req dto.CreateAccountRequest) (*domain.Account, error)
	ListCustomerAccounts(ctx context.Context, customerID int64) ([]domain.Account, error)
	CloseAccount(ctx context.Context, customerID int64, accountUUID string) error
}
