package dto

import "strings"

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=50" example:"jdoe"`
	Email    string `json:"email" validate:"required,max=255" example:"jdoe@example.com"`
	Password string `json:"password" validate:"required,max=72" example:"s3cret-pass"`
	Role     string `json:"role" validate:"required,oneof=student alumni" example:"alumni" enums:"student,alumni"`
}

// Normalize trims identity fields and lower-cases the role.
// The password is kept as typed.
func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

// RegisterResponse is returned after a successful registration
type RegisterResponse struct {
	PersonID int64 `json:"person_id" example:"1"`
}

// LoginRequest represents login credentials; identifier is a username or an email
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required" example:"jdoe"`
	Password   string `json:"password" validate:"required" example:"s3cret-pass"`
}

// Normalize trims the identifier
func (r *LoginRequest) Normalize() {
	r.Identifier = strings.TrimSpace(r.Identifier)
}

// LoginResponse describes the session created by a login
type LoginResponse struct {
	PersonID int64  `json:"person_id" example:"1"`
	Role     string `json:"role" example:"student"`
}
