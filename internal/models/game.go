package models

import (
	"time"

	"github.com/google/uuid"
)

// GameDB represents a game row in the database
type GameDB struct {
	GameID      uuid.UUID `db:"id"`          // Primary key
	Title       string    `db:"title"`       // Event title
	Date        time.Time `db:"date"`        // Scheduled date and time
	Location    string    `db:"location"`    // Where the game takes place
	Description *string   `db:"description"` // Optional free text
	CreatedAt   time.Time `db:"created_at"`  // Creation timestamp
	UpdatedAt   time.Time `db:"updated_at"`  // Last update timestamp
}

// CreateGameInput carries the fields of a new game. Date is parsed by the service.
type CreateGameInput struct {
	Title       string
	Date        string
	Location    string
	Description *string
}

// GamePatch holds optional game changes. Nil fields keep their previous value.
type GamePatch struct {
	Title       *string
	Date        *string
	Location    *string
	Description *string
}

// GameDetails is a game together with its roster.
type GameDetails struct {
	Game   GameDB
	Roster []RosterEntry
}

// GameResponse is the public view of a game.
// swagger:model GameResponse
type GameResponse struct {
	ID          uuid.UUID             `json:"id"`
	Title       string                `json:"title" example:"Trivia Night"`
	Date        time.Time             `json:"date" example:"2025-03-01T19:00:00Z"`
	Location    string                `json:"location" example:"Pub"`
	Description *string               `json:"description,omitempty"`
	Players     []RosterEntryResponse `json:"players,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// NewGameResponse builds the public view of g without roster.
func NewGameResponse(g *GameDB) GameResponse {
	return GameResponse{
		ID:          g.GameID,
		Title:       g.Title,
		Date:        g.Date.UTC(),
		Location:    g.Location,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// NewGameDetailsResponse builds the public view of a game with its roster.
func NewGameDetailsResponse(d *GameDetails) GameResponse {
	resp := NewGameResponse(&d.Game)
	resp.Players = make([]RosterEntryResponse, 0, len(d.Roster))
	for i := range d.Roster {
		resp.Players = append(resp.Players, NewRosterEntryResponse(&d.Roster[i]))
	}
	return resp
}
