// Package domain contains the core entities of the vehicle registry:
// administrator accounts and vehicles.
package domain

// Administrator roles. Role values are free text in storage; authorization
// only ever compares against these two constants, so an unrecognized role
// fails every role check.
const (
	RoleAdm    = "Adm"
	RoleEditor = "Editor"
)

// Administrator represents an account that can manage the registry.
// Passwords are stored and compared as plain text, matching the system this
// replaces. See DESIGN.md for the hardening discussion.
type Administrator struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"` // never exposed in JSON
	Role     string `json:"role"`
}

// ValidRole reports whether role is one of the known administrator roles.
func ValidRole(role string) bool {
	return role == RoleAdm || role == RoleEditor
}
