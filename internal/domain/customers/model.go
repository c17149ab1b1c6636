package customers

import "time"

type Customer struct {
	ID        string
	FullName  string
	Email     string
	Phone     string
	Address   string
	City      string
	Country   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
