package domain

// Customer is the owner of zero or more accounts. Credential handling lives
// in the customer service; the transaction core only ever reads customers.
type Customer struct {
	ID           int64  `json:"id"`
	UUID         string `json:"uuid"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	PhoneNumber  string `json:"phoneNumber"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Timestamps
}
