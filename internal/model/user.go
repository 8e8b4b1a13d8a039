package model

// User is the signed-in customer.
type User struct {
	ID     string
	Name   string
	Email  string
	Cedula string
	Phone  string
}
