package models

// AuthResult is the outcome of a successful register, login or refresh.
type AuthResult struct {
	Player       *PlayerDB
	AccessToken  string
	RefreshToken string
}
