package domain

// TransactionType indicates whether a transaction debits or credits its account.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// SignedAmount returns the amount with the sign implied by the transaction
// type: credits add to a balance, debits subtract from it.
func (t TransactionType) SignedAmount(amount int64) int64 {
	if t == Debit {
		return -amount
	}
	return amount
}

// Transaction is a single debit or credit against one account. Transactions
// are an append-only audit trail: once created they are never updated or
// physically deleted.
type Transaction struct {
	ID        int64           `json:"id"`
	UUID      string          `json:"uuid"`
	Type      TransactionType `json:"type"`
	Amount    int64           `json:"amount"` // positive, smallest currency unit
	AccountID int64           `json:"accountID"`
	Timestamps
}

// TransferResult reports the outcome of a two-account transfer after both
// transaction rows are recorded and both balances updated.
type TransferResult struct {
	DebitTransactionUUID  string `json:"debitTransactionUUID"`
	CreditTransactionUUID string `json:"creditTransactionUUID"`
	DonorAccountID        int64  `json:"donorAccountID"`
	RecipientAccountID    int64  `json:"recipientAccountID"`
	DonorNewBalance       int64  `json:"donorNewBalance"`
	RecipientNewBalance   int64  `json:"recipientNewBalance"`
}
