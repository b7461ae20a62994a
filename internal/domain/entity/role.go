// Package entity contains the core business objects of the project.
package entity

import "github.com/pkg/errors"

// Role represents the single role an account holds. It is fixed at registration.
type Role string

const (
	// RoleCustomer places orders and leaves reviews.
	RoleCustomer Role = "customer"
	// RoleShopOwner manages shops and products and assigns delivery agents.
	RoleShopOwner Role = "shop_owner"
	// RoleDeliveryAgent is assigned to orders and updates their status.
	RoleDeliveryAgent Role = "delivery_agent"
)

// ErrUnknownRole is returned when a string does not name a known role.
var ErrUnknownRole = errors.New("unknown role")

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleShopOwner, RoleDeliveryAgent:
		return true
	default:
		return false
	}
}

// ParseRole maps a boundary string to a Role.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", errors.Wrapf(ErrUnknownRole, "%q", s)
	}

	return role, nil
}
