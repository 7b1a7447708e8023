package dto

import (
	"time"

	"github.com/corebank/retail_banking_app/internal/core/domain"
	"github.com/corebank/retail_banking_app/internal/utils"
)

// CreateTransactionRequest defines a single-account debit or credit.
type CreateTransactionRequest struct {
	AccountID         int64                  `json:"accountId" binding:"required,gt=0"`
	TransactionType   domain.TransactionType `json:"transactionType" binding:"required,oneof=DEBIT CREDIT"`
	TransactionAmount int64                  `json:"transactionAmount" binding:"required,gt=0"`
}

// TransferFundsRequest defines a two-account transfer by public account UUIDs.
type TransferFundsRequest struct {
	DonorID           string `json:"donorId" binding:"required,uuid4"`
	RecipientID       string `json:"recipientId" binding:"required,uuid4"`
	TransactionAmount int64  `json:"transactionAmount" binding:"required,gt=0"`
}

// TransactionResult reports a recorded debit/credit and the resulting balance.
type TransactionResult struct {
	TransactionUUID   string `json:"transactionId"`
	NewBalance        int64  `json:"newBalance"`
	NewBalanceDisplay string `json:"newBalanceDisplay"`
}

// TransferResult reports both post-transfer balances.
type TransferResult struct {
	DonorNewBalance     int64 `json:"donorNewBalance"`
	RecipientNewBalance int64 `json:"recipientNewBalance"`
}

// TransactionRecord is a transaction enriched with its owning account's
// display attributes for client-side rendering.
type TransactionRecord struct {
	ID            int64                  `json:"id"`
	UUID          string                 `json:"uuid"`
	Type          domain.TransactionType `json:"type"`
	Amount        int64                  `json:"amount"`
	AmountDisplay string                 `json:"amountDisplay"`
	AccountID     int64                  `json:"accountId"`
	AccountName   string                 `json:"accountName"`
	AccountNumber int64                  `json:"accountNumber"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// TransactionListResponse carries the filtered transactions plus the
// customer's accounts for client-side lookup.
type TransactionListResponse struct {
	Transactions []TransactionRecord `json:"transactions"`
	Accounts     []AccountResponse   `json:"accounts"`
}

// ToTransactionRecord converts a domain transaction plus its owning account.
func ToTransactionRecord(txn *domain.Transaction, account *domain.Account) TransactionRecord {
	rec := TransactionRecord{
		ID:            txn.ID,
		UUID:          txn.UUID,
		Type:          txn.Type,
		Amount:        txn.Amount,
		AmountDisplay: utils.FormatAmount(txn.Amount),
		AccountID:     txn.AccountID,
		CreatedAt:     txn.CreatedAt,
	}
	if account != nil {
		rec.AccountName = account.Name
		rec.AccountNumber = account.Number
	}
	return rec
}
