package domain

import "time"

// Role values accepted for user records.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether role is one of the accepted role values.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User represents a registered account of the store.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Email        *string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
