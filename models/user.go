package models

import "time"

// Role values assigned to user accounts. New registrations always receive
// RoleUser; RoleAdmin is granted out-of-band (no endpoint promotes a user).
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique public handle chosen at registration.
	Username string `json:"username"`

	// Email is the unique address used as the login identifier.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It MUST never be serialized or returned by any endpoint.
	PasswordHash string `json:"-"`

	// Role is either RoleUser or RoleAdmin and gates mutating endpoints.
	Role string `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// PublicUser is the subset of User safe to return to API callers.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Public returns the caller-facing view of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
