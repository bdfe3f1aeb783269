package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Cookie names carrying the tokens.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// Error variables
var (
	ErrTokenExpired        = errors.New("token has expired")
	ErrTokenInvalid        = errors.New("invalid token")
	ErrSecretNotConfigured = errors.New("jwt secret is not configured")
	ErrTokenMissing        = errors.New("token missing")
)

// Claims is the payload of an access token.
type Claims struct {
	PlayerID uuid.UUID `json:"playerId"`
	Email    string    `json:"email"`
	jwt.RegisteredClaims
}

// RefreshClaims is the payload of a refresh token. ID (jti) identifies the
// token in the revocation store, Subject holds the player id.
type RefreshClaims struct {
	jwt.RegisteredClaims
}

// PlayerID parses the subject of the refresh token.
func (c *RefreshClaims) PlayerID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}
	return id, nil
}

// JWT provides methods to generate and validate access and refresh tokens.
type JWT struct {
	SecretKey        string        // Secret key for signing access tokens
	Exp              time.Duration // Access token expiration duration
	RefreshSecretKey string        // Secret key for signing refresh tokens
	RefreshExp       time.Duration // Refresh token expiration duration
}

// Opt configures a JWT.
type Opt func(*JWT)

// WithSecretKey sets the access token secret.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) { j.SecretKey = secret }
}

// WithExpiration sets the access token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.Exp = exp }
}

// WithRefreshSecretKey sets the refresh token secret.
func WithRefreshSecretKey(secret string) Opt {
	return func(j *JWT) { j.RefreshSecretKey = secret }
}

// WithRefreshExpiration sets the refresh token lifetime.
func WithRefreshExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.RefreshExp = exp }
}

// New creates a new JWT instance. Lifetimes default to 15 minutes and 30 days.
func New(opts ...Opt) *JWT {
	j := &JWT{
		Exp:        15 * time.Minute,
		RefreshExp: 30 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// GenerateAccessToken creates a signed access token for the player.
func (j *JWT) GenerateAccessToken(ctx context.Context, playerID uuid.UUID, email string) (string, error) {
	if j.SecretKey == "" {
		return "", ErrSecretNotConfigured
	}

	now := time.Now()
	claims := Claims{
		PlayerID: playerID,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.Exp)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GenerateRefreshToken creates a signed refresh token and returns it with its id.
func (j *JWT) GenerateRefreshToken(ctx context.Context, playerID uuid.UUID) (token string, tokenID string, err error) {
	if j.RefreshSecretKey == "" {
		return "", "", ErrSecretNotConfigured
	}

	now := time.Now()
	tokenID = uuid.NewString()
	claims := RefreshClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   playerID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.RefreshExp)),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(j.RefreshSecretKey))
	if err != nil {
		return "", "", err
	}
	return token, tokenID, nil
}

// Validate checks the signature and expiry of an access token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetClaims parses and validates an access token.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	if err := parse(tokenString, j.SecretKey, claims); err != nil {
		return nil, err
	}
	if claims.PlayerID == uuid.Nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// GetRefreshClaims parses and validates a refresh token.
func (j *JWT) GetRefreshClaims(ctx context.Context, tokenString string) (*RefreshClaims, error) {
	claims := &RefreshClaims{}
	if err := parse(tokenString, j.RefreshSecretKey, claims); err != nil {
		return nil, err
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

func parse(tokenString, secret string, claims jwt.Claims) error {
	if secret == "" {
		return ErrSecretNotConfigured
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	switch {
	case err == nil:
		return nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	default:
		return ErrTokenInvalid
	}
}

// GetTokenFromRequest extracts the access token from the access cookie or the Authorization header.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrTokenMissing
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

// GetRefreshTokenFromRequest extracts the refresh token from its cookie.
func (j *JWT) GetRefreshTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	cookie, err := r.Cookie(RefreshTokenCookie)
	if err != nil || cookie.Value == "" {
		return "", ErrTokenMissing
	}
	return cookie.Value, nil
}
