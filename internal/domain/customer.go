package domain

import "github.com/google/uuid"

// Customer and Employee are reference data owned by the identity
// system. The booking engine only records their IDs; the job runner
// reads customers to address reminder emails.

type Customer struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
}

type EmployeeRole string

const (
	EmployeeRoleAdmin EmployeeRole = "ADMIN"
	EmployeeRoleStaff EmployeeRole = "STAFF"
)

type Employee struct {
	ID        uuid.UUID    `json:"id"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Email     string       `json:"email"`
	Role      EmployeeRole `json:"role"`
}
