package model

// Customer is the person a booking is made for.  Corresponds to a
// row in the `customers` table.
type Customer struct {
	ID    uint64 // customers.id
	Name  string // customers.name
	Phone string // customers.phone
	Email string // customers.email
}
