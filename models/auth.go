package models

// RegisterRequest is the request payload for POST /api/auth/register.
// All three fields are required.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned on successful login: the signed token plus the
// public view of the authenticated user.
type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}
