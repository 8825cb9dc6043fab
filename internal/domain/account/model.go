package account

import (
	"time"

	"github.com/google/uuid"
)

// User maps to the users table. The password hash is never serialized; login
// responses deliberately omit it.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"firstName"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FirstName       string `json:"firstName"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginInput carries the login form fields.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
