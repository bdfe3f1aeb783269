package handlers

import (
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-game-roster/internal/jwt"
	"github.com/sbilibin2017/gw-game-roster/internal/models"
)

// CookieConfig controls the auth cookies.
type CookieConfig struct {
	AccessMaxAge  time.Duration
	RefreshMaxAge time.Duration
	// Secure marks cookies Secure with SameSite=None. Otherwise SameSite=Lax.
	Secure bool
}

func (c CookieConfig) cookie(name, value string, maxAge time.Duration) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if c.Secure {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: sameSite,
	}
}

// setAuthCookies writes both token cookies.
func setAuthCookies(w http.ResponseWriter, cfg CookieConfig, res *models.AuthResult) {
	http.SetCookie(w, cfg.cookie(jwt.AccessTokenCookie, res.AccessToken, cfg.AccessMaxAge))
	http.SetCookie(w, cfg.cookie(jwt.RefreshTokenCookie, res.RefreshToken, cfg.RefreshMaxAge))
}

// clearAuthCookies expires both token cookies.
func clearAuthCookies(w http.ResponseWriter, cfg CookieConfig) {
	access := cfg.cookie(jwt.AccessTokenCookie, "", 0)
	access.MaxAge = -1
	refresh := cfg.cookie(jwt.RefreshTokenCookie, "", 0)
	refresh.MaxAge = -1

	http.SetCookie(w, access)
	http.SetCookie(w, refresh)
}
