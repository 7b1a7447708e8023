package models

import "time"

// AccountType classifies an account as personal or business.
type AccountType string

const (
	Personal AccountType = "PERSONAL"
	Business AccountType = "BUSINESS"
)

// Account mirrors the accounts table.
type Account struct {
	ID          int64       `db:"id"`
	UUID        string      `db:"uuid"`
	Name        string      `db:"name"`
	Number      int64       `db:"number"`
	AccountType AccountType `db:"type"`
	Balance     int64       `db:"balance"`

	CreditCardIssued   bool       `db:"credit_card_issued"`
	CreditCardIssuedAt *time.Time `db:"credit_card_issued_at"`
	DebitCardIssued    bool       `db:"debit_card_issued"`
	DebitCardIssuedAt  *time.Time `db:"debit_card_issued_at"`
	ChequeBookIssued   bool       `db:"cheque_book_issued"`
	ChequeBookIssuedAt *time.Time `db:"cheque_book_issued_at"`

	CustomerID int64 `db:"customer_id"`
	Timestamps
}
