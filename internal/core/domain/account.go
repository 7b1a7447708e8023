package domain

import "time"

// AccountType classifies an account as personal or business.
type AccountType string

const (
	Personal AccountType = "PERSONAL"
	Business AccountType = "BUSINESS"
)

// Account represents a customer bank account within the core domain.
// Balance is held in the smallest currency unit; the invariant is that it
// always equals the sum of signed transaction amounts recorded against the
// account (credit positive, debit negative). Only the transaction service's
// persistence path may change it.
type Account struct {
	ID          int64       `json:"id"`
	UUID        string      `json:"uuid"`
	Name        string      `json:"name"`
	Number      int64       `json:"number"` // 8-digit externally quoted number
	AccountType AccountType `json:"accountType"`
	Balance     int64       `json:"balance"`

	CreditCardIssued   bool       `json:"creditCardIssued"`
	CreditCardIssuedAt *time.Time `json:"creditCardIssuedAt,omitempty"`
	DebitCardIssued    bool       `json:"debitCardIssued"`
	DebitCardIssuedAt  *time.Time `json:"debitCardIssuedAt,omitempty"`
	ChequeBookIssued   bool       `json:"chequeBookIssued"`
	ChequeBookIssuedAt *time.Time `json:"chequeBookIssuedAt,omitempty"`

	CustomerID int64 `json:"customerID"`
	Timestamps
}
