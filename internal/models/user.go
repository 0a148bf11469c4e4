package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	PublicID     string    `json:"public_id" db:"public_id"`   // Opaque identifier exposed to clients
	Email        string    `json:"email" db:"email"`           // Unique email
	PasswordHash string    `json:"-" db:"hashed_password"`     // bcrypt hash
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
