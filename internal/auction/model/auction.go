// Package model provides domain models and DTOs for the auction module.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MinimumBid is the floor for any sale price.
var MinimumBid = decimal.NewFromInt(2)

// BidHistory is an append-only record of a bid on a player.
// The table is reserved for a future bid ledger; nothing writes to it yet.
type BidHistory struct {
	ID        int64           `gorm:"primaryKey;column:id;type:bigserial"                       json:"id"`
	PlayerID  int64           `gorm:"column:player_id;not null;index:idx_bid_history_player_id" json:"player_id"`
	TeamID    int64           `gorm:"column:team_id;not null;index:idx_bid_history_team_id"     json:"team_id"`
	Amount    decimal.Decimal `gorm:"column:amount;type:numeric(10,2);not null"                 json:"amount"`
	Timestamp time.Time       `gorm:"column:timestamp;type:timestamptz;not null;default:now()"  json:"timestamp"`
}

// TableName specifies the table name for GORM.
func (BidHistory) TableName() string {
	return "bid_history"
}

// SaleRequest represents the request to sell a player to a team.
type SaleRequest struct {
	PlayerID int64           `json:"player_id" binding:"required"`
	TeamID   int64           `json:"team_id"   binding:"required"`
	Price    decimal.Decimal `json:"price"`
}

// UnsoldRequest represents the request to mark a player unsold.
type UnsoldRequest struct {
	PlayerID int64 `json:"player_id" binding:"required"`
}

// ReleaseRequest represents the request to remove a player from a team,
// refunding the purse and returning the player to the unassigned pool.
type ReleaseRequest struct {
	TeamID   int64  `json:"team_id"  binding:"required"`
	Player   string `json:"player"   binding:"required"`
	Category string `json:"category" binding:"required"`
}

// SaleResponse represents the outcome of an auction action.
type SaleResponse struct {
	PlayerID     int64            `json:"player_id"`
	PlayerName   string           `json:"player_name"`
	Status       string           `json:"status"`
	SellingPrice *decimal.Decimal `json:"selling_price,omitempty"`
	TeamID       *int64           `json:"team_id,omitempty"`
	TeamPurse    *decimal.Decimal `json:"team_purse,omitempty"`
}
