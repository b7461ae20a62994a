package entity

import "github.com/google/uuid"

// Principal is the authenticated caller as carried by a session token.
// Role comes from the token claims and is not re-read from storage.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// Is reports whether the caller holds the given role.
func (p Principal) Is(role Role) bool {
	return p.Role == role
}
