// Package models defines the records exchanged with the user administration API.
package models

// Credentials is one login attempt.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegistrationData is the register form. ConfirmPassword only exists to be
// compared with Password before submitting and is never serialised.
type RegistrationData struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	Email           string `json:"email"`
	ConfirmPassword string `json:"-"`
}

// RegisterRequest is the wire body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// PasswordsMatch reports whether the confirmation equals the password.
func (r RegistrationData) PasswordsMatch() bool {
	return r.Password == r.ConfirmPassword
}

// Request drops the client-only confirmation field.
func (r RegistrationData) Request() RegisterRequest {
	return RegisterRequest{Username: r.Username, Password: r.Password, Email: r.Email}
}

// MessageResponse is the {message} body returned by register and delete.
type MessageResponse struct {
	Message string `json:"message"`
}
