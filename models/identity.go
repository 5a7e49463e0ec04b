package models

import "time"

// Identity is an authenticated user record. PasswordHash never leaves the server.
type Identity struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role"`
	Department   *string   `json:"department" db:"department"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
	// PasswordChangedAt bounds the validity of refresh tokens.
	PasswordChangedAt time.Time `json:"-" db:"password_changed_at"`
}
