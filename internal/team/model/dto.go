// Package model provides domain models and DTOs for the team module.
package model

import (
	"github.com/shopspring/decimal"

	playerModel "github.com/cricbid/auction/internal/player/model"
)

// AddTeamRequest represents the request to create a franchise.
type AddTeamRequest struct {
	Name      string `json:"name" binding:"required"`
	OwnerName string `json:"owner_name"`
}

// UpdateTeamRequest represents the request to rename a team or change its owner.
// Empty fields are left untouched.
type UpdateTeamRequest struct {
	TeamID    int64  `json:"team_id" binding:"required"`
	Name      string `json:"name"`
	OwnerName string `json:"owner_name"`
}

// PurseRequest represents the request to set a team's purse directly.
type PurseRequest struct {
	TeamID int64           `json:"team_id" binding:"required"`
	Amount decimal.Decimal `json:"amount"`
}

// TeamRequest addresses a single team (reset, delete, get).
type TeamRequest struct {
	TeamID int64 `json:"team_id" binding:"required"`
}

// TeamResponse represents a franchise with its roster in API responses.
// Players are grouped by category; counts and spend are derived from the
// roster, never stored.
type TeamResponse struct {
	ID        int64                                    `json:"id"`
	Name      string                                   `json:"name"`
	OwnerName string                                   `json:"owner_name"`
	Purse     decimal.Decimal                          `json:"purse"`
	Players   map[string][]playerModel.PlayerResponse `json:"players"`
	Counts    map[string]int                           `json:"counts"`
	Spent     map[string]decimal.Decimal               `json:"spent"`
}

// TeamListResponse represents all franchises.
type TeamListResponse struct {
	Teams []TeamResponse `json:"teams"`
	Total int            `json:"total"`
}

// NewTeamResponse builds a response for one team from its roster snapshot.
func NewTeamResponse(t *Team, roster []playerModel.Player) TeamResponse {
	resp := TeamResponse{
		ID:        t.ID,
		Name:      t.Name,
		OwnerName: t.OwnerName,
		Purse:     t.Purse,
		Players:   make(map[string][]playerModel.PlayerResponse, len(playerModel.Categories())),
		Counts:    make(map[string]int, len(playerModel.Categories())),
		Spent:     make(map[string]decimal.Decimal, len(playerModel.Categories())+1),
	}

	overall := decimal.Zero
	for _, category := range playerModel.Categories() {
		resp.Players[category] = []playerModel.PlayerResponse{}
		resp.Counts[category] = 0
		resp.Spent[category] = decimal.Zero
	}

	name := t.Name
	for i := range roster {
		p := &roster[i]
		resp.Players[p.Category] = append(resp.Players[p.Category], playerModel.NewPlayerResponse(p, &name))
		resp.Counts[p.Category]++
		resp.Spent[p.Category] = resp.Spent[p.Category].Add(p.SalePrice())
		overall = overall.Add(p.SalePrice())
	}
	resp.Spent["overall"] = overall

	return resp
}
