package services

import "errors"

// Error variables. Services return them wrapped with an apperr code.
var (
	ErrPlayerAlreadyExists = errors.New("player with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrRefreshTokenInvalid = errors.New("invalid refresh token")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")

	ErrGameNotFound        = errors.New("game not found")
	ErrInvalidDate         = errors.New("invalid date")
	ErrAlreadyInGame       = errors.New("player already exists in this game")
	ErrMembershipNotFound  = errors.New("player is not in this game")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrAddPlayersFailed    = errors.New("failed to add players")
	ErrEmptyPlayerIdentity = errors.New("player id or email is required")
)
