package services

import (
	"context"

	"github.com/corebank/retail_banking_app/internal/dto"
)

// TransactionSvcFacade defines the balance-mutating and query operations
// exposed to handlers. Nothing outside this facade and its repository may
// write an account balance.
type TransactionSvcFacade interface {
	CreateDeposit(ctx context.Context, accountID int64, amount int64) (*dto.TransactionResult, error)
	CreateWithdrawal(ctx context.Context, accountID int64, amount int64) (*dto.TransactionResult, error)
	TransferFunds(ctx context.Context, donorUUID, recipientUUID string, amount int64) (*dto.TransferResult, error)
	ListTransactions(ctx context.Context, customerID int64, searchTerm string) (*dto.TransactionListResponse, error)
}
