// Package model provides domain models and DTOs for the player module.
package model

import "github.com/shopspring/decimal"

// StatsInput carries the full set of stat fields a client may submit.
// Fields that do not apply to the player's category are ignored.
type StatsInput struct {
	Matches      int     `json:"matches"`
	Runs         int     `json:"runs"`
	Average      float64 `json:"average"`
	StrikeRate   float64 `json:"strike_rate"`
	HighestScore int     `json:"highest_score"`
	Fifties      int     `json:"fifties"`
	Hundreds     int     `json:"hundreds"`
	Wickets      int     `json:"wickets"`
	Economy      float64 `json:"economy"`
	BestBowling  string  `json:"best_bowling"`
}

// ApplyTo overwrites the player's stat columns with the input, restricted to
// the columns the player's category carries. Matches apply to every category.
func (s StatsInput) ApplyTo(p *Player) {
	p.Matches = s.Matches

	if HasBatting(p.Category) {
		p.Runs = s.Runs
		p.Average = s.Average
		p.StrikeRate = s.StrikeRate
		p.HighestScore = s.HighestScore
		p.Fifties = s.Fifties
		p.Hundreds = s.Hundreds
	}

	if HasBowling(p.Category) {
		p.Wickets = s.Wickets
		p.Economy = s.Economy
		p.BestBowling = s.BestBowling
	}
}

// AddPlayerRequest represents the request to add a player to the roster.
type AddPlayerRequest struct {
	Name      string          `json:"name"      binding:"required"`
	Category  string          `json:"category"  binding:"required"`
	BasePrice decimal.Decimal `json:"base_price"`
	Stats     StatsInput      `json:"stats"`
}

// UpdateStatsRequest represents the request to overwrite a player's stats.
type UpdateStatsRequest struct {
	Name     string     `json:"name"     binding:"required"`
	Category string     `json:"category" binding:"required"`
	Stats    StatsInput `json:"stats"`
}

// DeletePlayerRequest represents the request to remove a player globally.
type DeletePlayerRequest struct {
	Name string `json:"name" binding:"required"`
}

// PlayerStats is the category-appropriate stats view of a player. Pointer
// fields are nil for categories the stat does not apply to.
type PlayerStats struct {
	Matches      int      `json:"matches"`
	Runs         *int     `json:"runs,omitempty"`
	Average      *float64 `json:"average,omitempty"`
	StrikeRate   *float64 `json:"strike_rate,omitempty"`
	HighestScore *int     `json:"highest_score,omitempty"`
	Fifties      *int     `json:"fifties,omitempty"`
	Hundreds     *int     `json:"hundreds,omitempty"`
	Wickets      *int     `json:"wickets,omitempty"`
	Economy      *float64 `json:"economy,omitempty"`
	BestBowling  *string  `json:"best_bowling,omitempty"`
}

// PlayerResponse represents a player in API responses.
type PlayerResponse struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	PlayerNumber int              `json:"player_number"`
	BasePrice    decimal.Decimal  `json:"base_price"`
	Status       string           `json:"status"`
	SellingPrice *decimal.Decimal `json:"selling_price,omitempty"`
	SoldTo       *string          `json:"sold_to,omitempty"`
	Stats        PlayerStats      `json:"stats"`
}

// PlayerListResponse represents players grouped by category.
type PlayerListResponse struct {
	Players map[string][]PlayerResponse `json:"players"`
	Total   int                         `json:"total"`
}

// NewPlayerResponse builds a response for one player. soldTo is the owning
// team's name resolved via the team reference, or nil.
func NewPlayerResponse(p *Player, soldTo *string) PlayerResponse {
	resp := PlayerResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		PlayerNumber: p.PlayerNumber,
		BasePrice:    p.BasePrice,
		Status:       p.Status,
		SoldTo:       soldTo,
		Stats:        PlayerStats{Matches: p.Matches},
	}

	if p.SellingPrice.Valid {
		price := p.SellingPrice.Decimal
		resp.SellingPrice = &price
	}

	if HasBatting(p.Category) {
		resp.Stats.Runs = intPtr(p.Runs)
		resp.Stats.Average = floatPtr(p.Average)
		resp.Stats.StrikeRate = floatPtr(p.StrikeRate)
		resp.Stats.HighestScore = intPtr(p.HighestScore)
		resp.Stats.Fifties = intPtr(p.Fifties)
		resp.Stats.Hundreds = intPtr(p.Hundreds)
	}

	if HasBowling(p.Category) {
		resp.Stats.Wickets = intPtr(p.Wickets)
		resp.Stats.Economy = floatPtr(p.Economy)
		resp.Stats.BestBowling = strPtr(p.BestBowling)
	}

	return resp
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }
