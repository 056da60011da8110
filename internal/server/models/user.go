package models

import "time"

// User is a registered account. PasswordHash holds the bcrypt hash, never the
// plaintext. Email is stored trimmed and lowercased.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
