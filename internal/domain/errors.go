package domain

import "errors"

var (
	// ErrPlayerNotFound is returned when a submission names an unknown player.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrChallengeNotFound indicates a submitted challenge ID is not in the catalog.
	ErrChallengeNotFound = errors.New("challenge not found")
	// ErrGameNotActive is returned when the current phase forbids the operation.
	ErrGameNotActive = errors.New("game not active")
	// ErrMissingFields is returned when a required request field is empty.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidPhase indicates an unknown phase value.
	ErrInvalidPhase = errors.New("invalid game status")
	// ErrInvalidAction indicates an unknown game-control action.
	ErrInvalidAction = errors.New("invalid action")
)
