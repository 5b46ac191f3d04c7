package model

import "errors"

var (
	// ErrBidTooLow indicates a sale price below the minimum bid floor.
	ErrBidTooLow = errors.New("minimum selling price is 2")
	// ErrInsufficientPurse indicates a sale price exceeding the team's purse.
	ErrInsufficientPurse = errors.New("insufficient team budget")
	// ErrPlayerAlreadySold indicates an auction action on a player that is
	// already owned by a team.
	ErrPlayerAlreadySold = errors.New("player is already sold")
	// ErrPlayerNotSold indicates a release of a player that no team owns.
	ErrPlayerNotSold = errors.New("player is not sold to a team")
)
