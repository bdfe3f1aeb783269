package main

import (
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestParseConfig_Defaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.env")

	cfg, err := parseConfig(missing, map[string]string{
		"JWT_SECRET":         "access-secret",
		"JWT_REFRESH_SECRET": "refresh-secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5432, cfg.PGPort)
	assert.True(t, cfg.MigrateOnStart)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpire)
	assert.Equal(t, 7*24*time.Hour, cfg.CookieAccessMaxAge)
	assert.Equal(t, 30*24*time.Hour, cfg.JWTRefreshExpire)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.False(t, cfg.Production())
}

func TestParseConfig_Overrides(t *testing.T) {
	cfg, err := parseConfig("", map[string]string{
		"APP_ENV":            "production",
		"APP_PORT":           "9090",
		"POSTGRES_PORT":      "6543",
		"MIGRATE_ON_START":   "false",
		"JWT_SECRET":         "a",
		"JWT_REFRESH_SECRET": "b",
		"JWT_ACCESS_EXPIRE":  "1h",
		"BCRYPT_COST":        "12",
	})
	require.NoError(t, err)

	assert.True(t, cfg.Production())
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, 6543, cfg.PGPort)
	assert.False(t, cfg.MigrateOnStart)
	assert.Equal(t, time.Hour, cfg.JWTAccessExpire)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secrets", env: map[string]string{}},
		{name: "bad port", env: map[string]string{"JWT_SECRET": "a", "JWT_REFRESH_SECRET": "b", "POSTGRES_PORT": "abc"}},
		{name: "bad duration", env: map[string]string{"JWT_SECRET": "a", "JWT_REFRESH_SECRET": "b", "JWT_ACCESS_EXPIRE": "weekly"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig("", tt.env)
			assert.Error(t, err)
		})
	}
}

func TestParseConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=file-secret\nJWT_REFRESH_SECRET=file-refresh\nAPP_PORT=7070\n"), 0o600))
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")
	t.Setenv("APP_PORT", "")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("JWT_REFRESH_SECRET")
	os.Unsetenv("APP_PORT")

	cfg, err := parseConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.Equal(t, "7070", cfg.AppPort)
}

func TestConfig_PostgresDSN(t *testing.T) {
	cfg := &Config{PGHost: "db", PGPort: 5432, PGUser: "roster", PGPassword: "p@ss word", PGDB: "games"}
	assert.Equal(t, "postgres://roster:p%40ss%20word@db:5432/games?sslmode=disable", cfg.PostgresDSN())
}

func TestNewRouter(t *testing.T) {
	named := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Handler", name)
			if id := chi.URLParam(r, "playerId"); id != "" {
				w.Header().Set("X-Player", id)
			}
			w.WriteHeader(http.StatusOK)
		}
	}
	auth := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}

	r := newRouter(routes{
		auth:         auth,
		health:       named("health"),
		register:     named("register"),
		login:        named("login"),
		logout:       named("logout"),
		refresh:      named("refresh"),
		getMe:        named("getMe"),
		updateMe:     named("updateMe"),
		createGame:   named("createGame"),
		listGames:    named("listGames"),
		getGame:      named("getGame"),
		updateGame:   named("updateGame"),
		deleteGame:   named("deleteGame"),
		addPlayer:    named("addPlayer"),
		addPlayers:   named("addPlayers"),
		updateStatus: named("updateStatus"),
	})

	tests := []struct {
		method  string
		path    string
		authed  bool
		handler string
		code    int
	}{
		{method: http.MethodGet, path: "/", handler: "health", code: http.StatusOK},
		{method: http.MethodPost, path: "/auth/register", handler: "register", code: http.StatusOK},
		{method: http.MethodPost, path: "/auth/login", handler: "login", code: http.StatusOK},
		{method: http.MethodPost, path: "/auth/refresh", handler: "refresh", code: http.StatusOK},
		{method: http.MethodPost, path: "/auth/logout", code: http.StatusUnauthorized},
		{method: http.MethodPost, path: "/auth/logout", authed: true, handler: "logout", code: http.StatusOK},
		{method: http.MethodGet, path: "/auth/me", code: http.StatusUnauthorized},
		{method: http.MethodPatch, path: "/auth/me", authed: true, handler: "updateMe", code: http.StatusOK},
		{method: http.MethodGet, path: "/games", code: http.StatusUnauthorized},
		{method: http.MethodGet, path: "/games", authed: true, handler: "listGames", code: http.StatusOK},
		{method: http.MethodPost, path: "/games", authed: true, handler: "createGame", code: http.StatusOK},
		{method: http.MethodGet, path: "/games/1", authed: true, handler: "getGame", code: http.StatusOK},
		{method: http.MethodPatch, path: "/games/1", authed: true, handler: "updateGame", code: http.StatusOK},
		{method: http.MethodDelete, path: "/games/1", authed: true, handler: "deleteGame", code: http.StatusOK},
		{method: http.MethodPost, path: "/games/1/players", authed: true, handler: "addPlayer", code: http.StatusOK},
		{method: http.MethodPost, path: "/games/1/players/multiple", authed: true, handler: "addPlayers", code: http.StatusOK},
		{method: http.MethodPatch, path: "/games/1/players/2", authed: true, handler: "updateStatus", code: http.StatusOK},
		{method: http.MethodPut, path: "/games/1", authed: true, code: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.authed {
				req.Header.Set("Authorization", "Bearer token")
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.code, rr.Code)
			assert.Equal(t, tt.handler, rr.Header().Get("X-Handler"))
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
			if tt.handler == "updateStatus" {
				assert.Equal(t, "2", rr.Header().Get("X-Player"))
			}
		})
	}
}
