package dto

import (
	"time"

	"github.com/corebank/retail_banking_app/internal/core/domain"
	"github.com/corebank/retail_banking_app/internal/utils"
)

// CreateAccountRequest defines the data needed to open a new account.
type CreateAccountRequest struct {
	AccountName string             `json:"accountName" binding:"required,max=100"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=PERSONAL BUSINESS"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID                 int64              `json:"id"`
	UUID               string             `json:"uuid"`
	Name               string             `json:"name"`
	Number             int64              `json:"number"`
	AccountType        domain.AccountType `json:"type"`
	Balance            int64              `json:"currentAmount"`
	BalanceDisplay     string             `json:"currentAmountDisplay"`
	CreditCardIssued   bool               `json:"creditCardIssued"`
	CreditCardIssuedAt *time.Time         `json:"creditCardIssuedAt,omitempty"`
	DebitCardIssued    bool               `json:"debitCardIssued"`
	DebitCardIssuedAt  *time.Time         `json:"debitCardIssuedAt,omitempty"`
	ChequeBookIssued   bool               `json:"chequeBookIssued"`
	ChequeBookIssuedAt *time.Time         `json:"chequeBookIssuedAt,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:                 acc.ID,
		UUID:               acc.UUID,
		Name:               acc.Name,
		Number:             acc.Number,
		AccountType:        acc.AccountType,
		Balance:            acc.Balance,
		BalanceDisplay:     utils.FormatAmount(acc.Balance),
		CreditCardIssued:   acc.CreditCardIssued,
		CreditCardIssuedAt: acc.CreditCardIssuedAt,
		DebitCardIssued:    acc.DebitCardIssued,
		DebitCardIssuedAt:  acc.DebitCardIssuedAt,
		ChequeBookIssued:   acc.ChequeBookIssued,
		ChequeBookIssuedAt: acc.ChequeBookIssuedAt,
		CreatedAt:          acc.CreatedAt,
	}
}

// ToAccountResponseList converts a slice of domain accounts to response DTOs.
func ToAccountResponseList(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
