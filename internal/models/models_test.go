package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusInvited.Valid())
	assert.True(t, StatusAccepted.Valid())
	assert.True(t, StatusDeclined.Valid())
	assert.False(t, Status("maybe").Valid())
	assert.False(t, Status("").Valid())
}

func TestPlayerResponse_NoPasswordHash(t *testing.T) {
	p := &PlayerDB{
		PlayerID:     uuid.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$secret",
	}

	data, err := json.Marshal(NewPlayerResponse(p))
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret")
	assert.NotContains(t, string(data), "password")
	assert.Contains(t, string(data), `"email":"alice@example.com"`)
}

func TestNewGameDetailsResponse(t *testing.T) {
	date := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	d := &GameDetails{
		Game: GameDB{GameID: uuid.New(), Title: "Trivia Night", Date: date, Location: "Pub"},
		Roster: []RosterEntry{
			{PlayerDB: PlayerDB{PlayerID: uuid.New(), Name: "Alice"}, Status: StatusAccepted},
			{PlayerDB: PlayerDB{PlayerID: uuid.New(), Name: "Bob"}, Status: StatusInvited},
		},
	}

	resp := NewGameDetailsResponse(d)

	assert.Equal(t, "Trivia Night", resp.Title)
	assert.Equal(t, date, resp.Date)
	require.Len(t, resp.Players, 2)
	assert.Equal(t, StatusAccepted, resp.Players[0].Status)
	assert.Equal(t, "Bob", resp.Players[1].Name)
}

func TestNewBatchResponse_EmptyFailures(t *testing.T) {
	resp := NewBatchResponse(&BatchResult{
		Succeeded: []Membership{{MembershipDB: MembershipDB{Status: StatusInvited}}},
	})

	assert.Len(t, resp.Succeeded, 1)
	assert.NotNil(t, resp.Failed)
	assert.Empty(t, resp.Failed)
}

func TestPlayerIdentity_Key(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, id.String(), PlayerIdentity{PlayerID: &id, Email: "x@example.com"}.Key())
	assert.Equal(t, "x@example.com", PlayerIdentity{Email: "x@example.com"}.Key())
}
