package models

// Role is the display role attached to an authenticated session.
// It is cosmetic: no authorization decisions hang off it.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents the account behind an authenticated session.
//
// Authentication in billman is a placeholder: accounts registered via
// sign-up live only for the process lifetime, and logins with unknown
// emails are accepted after the simulated delay.
type User struct {
	// Email identifies the account.
	Email string

	// Role is the display role chosen at login.
	Role Role

	// PasswordHash is the bcrypt hash for accounts created via
	// sign-up; empty for placeholder logins.
	PasswordHash string
}
