package users

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an identity plus its credential bundle. The normalized email is
// the uniqueness key and never changes after creation. Salt/PassHash are
// replaced together on password reset; the recovery pair is set once at
// registration and kept for the account's lifetime.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	Salt         string    `json:"salt"`
	PassHash     string    `json:"passHash"`
	RecoverySalt string    `json:"recoverySalt"`
	RecoveryHash string    `json:"recoveryHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// All lookups and uniqueness checks operate on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
