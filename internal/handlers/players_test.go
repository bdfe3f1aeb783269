package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-game-roster/internal/apperr"
	"github.com/sbilibin2017/gw-game-roster/internal/models"
)

func testMembership(status models.Status) *models.Membership {
	player := testPlayer()
	return &models.Membership{
		MembershipDB: models.MembershipDB{
			MembershipID: uuid.New(),
			GameID:       testGame().GameID,
			PlayerID:     player.PlayerID,
			Status:       status,
		},
		Player: *player,
	}
}

func TestAddPlayerHandler(t *testing.T) {
	gameID := testGame().GameID
	playerID := testPlayer().PlayerID

	tests := []struct {
		name         string
		body         any
		mockSetup    func(m *MockPlayerAdder)
		expectedCode int
	}{
		{
			name: "by id",
			body: map[string]any{"playerId": playerID},
			mockSetup: func(m *MockPlayerAdder) {
				m.EXPECT().AddPlayer(gomock.Any(), gameID, models.PlayerIdentity{PlayerID: &playerID}).
					Return(testMembership(models.StatusInvited), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "by email",
			body: map[string]string{"name": "Jane", "email": "jane@example.com", "password": "secret123"},
			mockSetup: func(m *MockPlayerAdder) {
				m.EXPECT().AddPlayer(gomock.Any(), gameID, models.PlayerIdentity{
					Name: "Jane", Email: "jane@example.com", Password: "secret123",
				}).Return(testMembership(models.StatusInvited), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "neither id nor email",
			body:         map[string]string{},
			mockSetup:    func(m *MockPlayerAdder) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "short password",
			body:         map[string]string{"name": "Jane", "email": "jane@example.com", "password": "123"},
			mockSetup:    func(m *MockPlayerAdder) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "already in game",
			body: map[string]any{"playerId": playerID},
			mockSetup: func(m *MockPlayerAdder) {
				m.EXPECT().AddPlayer(gomock.Any(), gameID, gomock.Any()).
					Return(nil, apperr.Wrap(apperr.Conflict, errors.New("player is already in this game")))
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "unknown player",
			body: map[string]any{"playerId": playerID},
			mockSetup: func(m *MockPlayerAdder) {
				m.EXPECT().AddPlayer(gomock.Any(), gameID, gomock.Any()).
					Return(nil, apperr.Wrap(apperr.NotFound, errors.New("player not found")))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockPlayerAdder(ctrl)
			tt.mockSetup(svc)

			rr := httptest.NewRecorder()
			req := withURLParams(newJSONRequest(t, http.MethodPost, "/games/x/players", tt.body),
				map[string]string{"id": gameID.String()})
			NewAddPlayerHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusCreated {
				data := string(decodeEnvelope(t, rr).Data)
				assert.Contains(t, data, `"status":"invited"`)
				assert.NotContains(t, data, "password")
			}
		})
	}
}

func TestAddMultiplePlayersHandler(t *testing.T) {
	gameID := testGame().GameID
	missing := uuid.New()

	t.Run("partial success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockMultiplePlayerAdder(ctrl)
		svc.EXPECT().AddMultiplePlayers(gomock.Any(), gameID, gomock.Len(2)).Return(&models.BatchResult{
			Succeeded: []models.Membership{*testMembership(models.StatusInvited)},
			Failed: []models.BatchFailure{{
				Index:   1,
				Player:  missing.String(),
				Message: fmt.Sprintf("Player with ID %s does not exist", missing),
			}},
		}, nil)

		body := map[string]any{"players": []map[string]any{
			{"playerId": testPlayer().PlayerID},
			{"playerId": missing},
		}}
		rr := httptest.NewRecorder()
		req := withURLParams(newJSONRequest(t, http.MethodPost, "/games/x/players/multiple", body),
			map[string]string{"id": gameID.String()})
		NewAddMultiplePlayersHandler(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		data := string(decodeEnvelope(t, rr).Data)
		assert.Contains(t, data, `"index":1`)
		assert.Contains(t, data, "does not exist")
	})

	t.Run("all failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockMultiplePlayerAdder(ctrl)
		failures := []models.BatchFailure{{Index: 0, Player: missing.String(), Message: "Player with ID x does not exist"}}
		svc.EXPECT().AddMultiplePlayers(gomock.Any(), gameID, gomock.Any()).
			Return(nil, apperr.WrapDetails(apperr.BadRequest, errors.New("failed to add players: Player with ID x does not exist"), failures))

		body := map[string]any{"players": []map[string]any{{"playerId": missing}}}
		rr := httptest.NewRecorder()
		req := withURLParams(newJSONRequest(t, http.MethodPost, "/games/x/players/multiple", body),
			map[string]string{"id": gameID.String()})
		NewAddMultiplePlayersHandler(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decodeEnvelope(t, rr)
		assert.Equal(t, "Failed to add players: Player with ID x does not exist", env.Message)
		require.NotNil(t, env.Error)
		assert.Contains(t, string(env.Error.Details), `"index":0`)
	})

	t.Run("empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockMultiplePlayerAdder(ctrl)

		rr := httptest.NewRecorder()
		req := withURLParams(newJSONRequest(t, http.MethodPost, "/games/x/players/multiple", map[string]any{"players": []any{}}),
			map[string]string{"id": gameID.String()})
		NewAddMultiplePlayersHandler(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockMultiplePlayerAdder(ctrl)

		body := map[string]any{"players": []map[string]any{{"email": "not-an-email", "name": "x", "password": "secret123"}}}
		rr := httptest.NewRecorder()
		req := withURLParams(newJSONRequest(t, http.MethodPost, "/games/x/players/multiple", body),
			map[string]string{"id": gameID.String()})
		NewAddMultiplePlayersHandler(svc).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		env := decodeEnvelope(t, rr)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})
}

func TestUpdatePlayerStatusHandler(t *testing.T) {
	gameID := testGame().GameID
	playerID := testPlayer().PlayerID
	params := map[string]string{"id": gameID.String(), "playerId": playerID.String()}

	tests := []struct {
		name         string
		params       map[string]string
		body         any
		mockSetup    func(m *MockStatusUpdater)
		expectedCode int
	}{
		{
			name:   "accepted",
			params: params,
			body:   map[string]string{"status": "accepted"},
			mockSetup: func(m *MockStatusUpdater) {
				m.EXPECT().UpdateStatus(gomock.Any(), gameID, playerID, models.StatusAccepted).
					Return(testMembership(models.StatusAccepted), nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "unknown status",
			params:       params,
			body:         map[string]string{"status": "maybe"},
			mockSetup:    func(m *MockStatusUpdater) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "bad player id",
			params:       map[string]string{"id": gameID.String(), "playerId": "nope"},
			body:         map[string]string{"status": "accepted"},
			mockSetup:    func(m *MockStatusUpdater) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "not a member",
			params: params,
			body:   map[string]string{"status": "declined"},
			mockSetup: func(m *MockStatusUpdater) {
				m.EXPECT().UpdateStatus(gomock.Any(), gameID, playerID, models.StatusDeclined).
					Return(nil, apperr.Wrap(apperr.NotFound, errors.New("player is not part of this game")))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockStatusUpdater(ctrl)
			tt.mockSetup(svc)

			rr := httptest.NewRecorder()
			req := withURLParams(newJSONRequest(t, http.MethodPatch, "/games/x/players/y", tt.body), tt.params)
			NewUpdatePlayerStatusHandler(svc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Contains(t, string(decodeEnvelope(t, rr).Data), `"status":"accepted"`)
			}
		})
	}
}
