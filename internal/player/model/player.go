package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Player categories. The category decides which stats columns apply and
// which player-number range is used.
const (
	CategoryBatsmen       = "batsmen"
	CategoryBowlers       = "bowlers"
	CategoryWicketkeepers = "wicketkeepers"
	CategoryAllrounders   = "allrounders"
)

// Player auction statuses.
const (
	StatusUntouched = "untouched"
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusUnsold    = "unsold"
)

// Categories returns all valid categories in display order.
func Categories() []string {
	return []string{CategoryBatsmen, CategoryBowlers, CategoryWicketkeepers, CategoryAllrounders}
}

// ValidCategory reports whether c is a known category.
func ValidCategory(c string) bool {
	switch c {
	case CategoryBatsmen, CategoryBowlers, CategoryWicketkeepers, CategoryAllrounders:
		return true
	}
	return false
}

// HasBatting reports whether players of category c carry batting stats.
func HasBatting(c string) bool {
	return c == CategoryBatsmen || c == CategoryWicketkeepers || c == CategoryAllrounders
}

// HasBowling reports whether players of category c carry bowling stats.
func HasBowling(c string) bool {
	return c == CategoryBowlers || c == CategoryAllrounders
}

// NumberBase returns the first player number of a category's range.
func NumberBase(c string) int {
	switch c {
	case CategoryBatsmen:
		return 1
	case CategoryBowlers:
		return 101
	case CategoryWicketkeepers:
		return 201
	case CategoryAllrounders:
		return 301
	}
	return 1
}

// Player represents an auction roster entry. A single table with a category
// discriminator replaces a subclass-per-category hierarchy: batting columns
// are meaningful for batsmen/wicketkeepers/allrounders, bowling columns for
// bowlers/allrounders.
type Player struct {
	ID           int64               `gorm:"primaryKey;column:id;type:bigserial"                                        json:"id"`
	Name         string              `gorm:"column:name;type:varchar(100);not null;index:idx_players_name"              json:"name"`
	Category     string              `gorm:"column:category;type:varchar(20);not null;uniqueIndex:idx_players_category_number" json:"category"`
	PlayerNumber int                 `gorm:"column:player_number;not null;uniqueIndex:idx_players_category_number"      json:"player_number"`
	BasePrice    decimal.Decimal     `gorm:"column:base_price;type:numeric(10,2);not null"                              json:"base_price"`
	SellingPrice decimal.NullDecimal `gorm:"column:selling_price;type:numeric(10,2)"                                    json:"selling_price"`
	Status       string              `gorm:"column:status;type:varchar(20);not null;default:untouched"                  json:"status"`
	TeamID       *int64              `gorm:"column:team_id;index:idx_players_team_id"                                   json:"team_id,omitempty"`

	// Batting columns.
	Matches      int     `gorm:"column:matches;not null;default:0"       json:"matches"`
	Runs         int     `gorm:"column:runs;not null;default:0"          json:"runs"`
	Average      float64 `gorm:"column:average;not null;default:0"       json:"average"`
	StrikeRate   float64 `gorm:"column:strike_rate;not null;default:0"   json:"strike_rate"`
	HighestScore int     `gorm:"column:highest_score;not null;default:0" json:"highest_score"`
	Fifties      int     `gorm:"column:fifties;not null;default:0"       json:"fifties"`
	Hundreds     int     `gorm:"column:hundreds;not null;default:0"      json:"hundreds"`

	// Bowling columns.
	Wickets     int     `gorm:"column:wickets;not null;default:0"          json:"wickets"`
	Economy     float64 `gorm:"column:economy;not null;default:0"          json:"economy"`
	BestBowling string  `gorm:"column:best_bowling;type:varchar(20);not null;default:''" json:"best_bowling"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Player) TableName() string {
	return "players"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (p *Player) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}

// Sold reports whether the player currently belongs to a team.
func (p *Player) Sold() bool {
	return p.Status == StatusSold
}

// SalePrice returns the amount a team gets back when the player leaves it:
// the recorded selling price, or the base price if none was recorded.
func (p *Player) SalePrice() decimal.Decimal {
	if p.SellingPrice.Valid {
		return p.SellingPrice.Decimal
	}
	return p.BasePrice
}

// ClearSale resets the player's auction state to untouched and detaches it
// from its team.
func (p *Player) ClearSale() {
	p.Status = StatusUntouched
	p.SellingPrice = decimal.NullDecimal{}
	p.TeamID = nil
}
