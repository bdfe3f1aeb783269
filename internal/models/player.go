package models

import (
	"time"

	"github.com/google/uuid"
)

// PlayerDB represents a player record in the database
type PlayerDB struct {
	PlayerID     uuid.UUID `db:"id"`            // Primary key
	Name         string    `db:"name"`          // Display name
	Email        string    `db:"email"`         // Unique email, case-sensitive as stored
	PasswordHash string    `db:"password_hash"` // bcrypt hash
	CreatedAt    time.Time `db:"created_at"`    // Creation timestamp
	UpdatedAt    time.Time `db:"updated_at"`    // Last update timestamp
}

// PlayerResponse is the public view of a player. The password hash is never exposed.
// swagger:model PlayerResponse
type PlayerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" example:"John Doe"`
	Email     string    `json:"email" example:"john@example.com"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewPlayerResponse builds the public view of p.
func NewPlayerResponse(p *PlayerDB) PlayerResponse {
	return PlayerResponse{
		ID:        p.PlayerID,
		Name:      p.Name,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PlayerPatch holds optional profile changes. Nil fields are left untouched.
type PlayerPatch struct {
	Name     *string
	Email    *string
	Password *string
}

// PlayerIdentity identifies the player to add to a game: by id when PlayerID is set,
// otherwise by email, creating the player from Name and Password when absent.
type PlayerIdentity struct {
	PlayerID *uuid.UUID
	Name     string
	Email    string
	Password string
}

// Key returns the value identifying the entry in error messages.
func (p PlayerIdentity) Key() string {
	if p.PlayerID != nil {
		return p.PlayerID.String()
	}
	return p.Email
}
