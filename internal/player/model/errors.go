package model

import "errors"

var (
	// ErrPlayerNotFound indicates that the requested player does not exist.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrInvalidCategory indicates an unknown player category.
	ErrInvalidCategory = errors.New("invalid player category")
	// ErrInvalidBasePrice indicates a base price that is not strictly positive.
	ErrInvalidBasePrice = errors.New("base price must be greater than 0")
	// ErrInvalidName indicates an empty player name.
	ErrInvalidName = errors.New("player name is required")
	// ErrCategoryMismatch indicates a stats update whose category does not
	// match the player's stored category.
	ErrCategoryMismatch = errors.New("category does not match player category")
)
