package model

import "errors"

var (
	// ErrTeamExists indicates that a team with the given name already exists
	// (names are compared case-insensitively).
	ErrTeamExists = errors.New("team already exists")
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrInvalidTeamName indicates that the provided team name is invalid (e.g., empty).
	ErrInvalidTeamName = errors.New("invalid team name")
	// ErrNegativeAmount indicates a purse update with a negative amount.
	ErrNegativeAmount = errors.New("purse amount must not be negative")
)
