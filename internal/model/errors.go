package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Session errors
	ErrSessionNotFound      = errors.New("game session not found")
	ErrInvalidCharacterType = errors.New("invalid character type")
)
