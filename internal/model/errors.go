package model

import "errors"

// Common errors used across the application
var (
	// Rules errors
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidDieValue = errors.New("die value must be between 1 and 6")

	// Score card errors
	ErrCategoryAlreadyScored = errors.New("category has already been scored")

	// Game errors
	ErrInvalidPlayerCount = errors.New("player count must be between 1 and 4")
	ErrNoPlayers          = errors.New("no players")
	ErrGameNotComplete    = errors.New("game is not complete")

	// History errors
	ErrSummaryNotFound = errors.New("game summary not found")

	// Collaborator errors
	ErrInputClosed = errors.New("input closed")
)
