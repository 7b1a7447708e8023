package models

// Customer mirrors the customers table.
type Customer struct {
	ID          int64  `db:"id"`
	UUID        string `db:"uuid"`
	FirstName   string `db:"first_name"`
	LastName    string `db:"last_name"`
	PhoneNumber string `db:"phone_number"`
	Email       string `db:"email"`
	Password    string `db:"password"`
	Timestamps
}
