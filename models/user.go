package models

import "time"

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleFarmer   UserRole = "farmer"
	RoleDriver   UserRole = "driver"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleFarmer, RoleDriver:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	FarmName     string    `json:"farm_name,omitempty"` // farmers only
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
