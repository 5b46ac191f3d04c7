package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultPurse is the budget every franchise starts the auction with.
var DefaultPurse = decimal.NewFromInt(100)

// Team represents a franchise entity in the system.
// Matches the teams table schema.
type Team struct {
	ID        int64           `gorm:"primaryKey;column:id;type:bigserial"                       json:"id"`
	Name      string          `gorm:"column:name;type:varchar(100);not null;uniqueIndex:idx_teams_name" json:"name"`
	OwnerName string          `gorm:"column:owner_name;type:varchar(100);not null;default:''"   json:"owner_name"`
	Purse     decimal.Decimal `gorm:"column:purse;type:numeric(10,2);not null"                  json:"purse"`
	CreatedAt time.Time       `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt time.Time       `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}
