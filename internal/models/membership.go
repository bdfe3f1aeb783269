package models

import (
	"time"

	"github.com/google/uuid"
)

// Status is the invitation status of a player in a game.
type Status string

// Supported membership statuses
const (
	StatusInvited  Status = "invited"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusInvited, StatusAccepted, StatusDeclined:
		return true
	}
	return false
}

// MembershipDB represents a game_players row in the database
type MembershipDB struct {
	MembershipID uuid.UUID `db:"id"`         // Primary key
	GameID       uuid.UUID `db:"game_id"`    // Owning game
	PlayerID     uuid.UUID `db:"player_id"`  // Referenced player
	Status       Status    `db:"status"`     // invited, accepted or declined
	CreatedAt    time.Time `db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `db:"updated_at"` // Last update timestamp
}

// RosterEntry is a player of a game with their membership status.
type RosterEntry struct {
	PlayerDB
	Status Status `db:"status"`
}

// MembershipResponse is the public view of a membership.
// swagger:model MembershipResponse
type MembershipResponse struct {
	ID        uuid.UUID      `json:"id"`
	GameID    uuid.UUID      `json:"gameId"`
	Status    Status         `json:"status" example:"invited"`
	Player    PlayerResponse `json:"player"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Membership is a membership row together with its player.
type Membership struct {
	MembershipDB
	Player PlayerDB
}

// NewMembershipResponse builds the public view of m.
func NewMembershipResponse(m *Membership) MembershipResponse {
	return MembershipResponse{
		ID:        m.MembershipID,
		GameID:    m.GameID,
		Status:    m.Status,
		Player:    NewPlayerResponse(&m.Player),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// RosterEntryResponse is the public view of a roster entry.
// swagger:model RosterEntryResponse
type RosterEntryResponse struct {
	PlayerResponse
	Status Status `json:"status" example:"accepted"`
}

// NewRosterEntryResponse builds the public view of e.
func NewRosterEntryResponse(e *RosterEntry) RosterEntryResponse {
	return RosterEntryResponse{
		PlayerResponse: NewPlayerResponse(&e.PlayerDB),
		Status:         e.Status,
	}
}

// BatchFailure describes one entry of a batch operation that could not be applied.
type BatchFailure struct {
	Index   int    `json:"index"`
	Player  string `json:"player"`
	Message string `json:"message"`
}

// BatchResult is the outcome of adding several players to a game.
type BatchResult struct {
	Succeeded []Membership
	Failed    []BatchFailure
}

// BatchResponse is the public view of a BatchResult.
// swagger:model BatchResponse
type BatchResponse struct {
	Succeeded []MembershipResponse `json:"succeeded"`
	Failed    []BatchFailure       `json:"failed"`
}

// NewBatchResponse builds the public view of r.
func NewBatchResponse(r *BatchResult) BatchResponse {
	resp := BatchResponse{
		Succeeded: make([]MembershipResponse, 0, len(r.Succeeded)),
		Failed:    r.Failed,
	}
	if resp.Failed == nil {
		resp.Failed = []BatchFailure{}
	}
	for i := range r.Succeeded {
		resp.Succeeded = append(resp.Succeeded, NewMembershipResponse(&r.Succeeded[i]))
	}
	return resp
}
