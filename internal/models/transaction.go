package models

// TransactionType indicates whether a transaction debits or credits its account.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// Transaction mirrors the transactions table.
type Transaction struct {
	ID        int64           `db:"id"`
	UUID      string          `db:"uuid"`
	Type      TransactionType `db:"type"`
	Amount    int64           `db:"amount"`
	AccountID int64           `db:"account_id"`
	Timestamps
}
