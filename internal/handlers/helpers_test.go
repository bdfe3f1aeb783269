package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-game-roster/internal/middlewares"
	"github.com/sbilibin2017/gw-game-roster/internal/models"
)

var testCookies = CookieConfig{AccessMaxAge: 7 * 24 * time.Hour, RefreshMaxAge: 30 * 24 * time.Hour}

// envelope decodes either response envelope.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func newJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withIdentity(r *http.Request, playerID uuid.UUID) *http.Request {
	return r.WithContext(middlewares.WithIdentity(r.Context(), middlewares.Identity{PlayerID: playerID}))
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env
}

func cookieByName(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func testPlayer() *models.PlayerDB {
	return &models.PlayerDB{
		PlayerID:     uuid.MustParse("2b0a6a4e-3d57-4c8e-a2c3-6c7e8f1a9b10"),
		Name:         "John Doe",
		Email:        "john@example.com",
		PasswordHash: "$2a$10$secret",
	}
}
