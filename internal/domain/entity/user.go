// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAvatar is the avatar reference assigned to accounts that have
// never uploaded an image.
const DefaultAvatar = "default-avatar.png"

// User is the core account entity. Username and email are each globally
// unique; email is stored lower-cased so lookups are case-insensitive.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Username     string    // Unique display handle chosen at registration.
	Email        string    // Unique, case-normalized login email.
	PasswordHash string    // bcrypt hash of the password. Never the plaintext.
	Avatar       string    // Reference to the stored avatar image.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
