// Package repository provides the data access layer for the player module.
package repository

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	playerModel "github.com/cricbid/auction/internal/player/model"
	teamModel "github.com/cricbid/auction/internal/team/model"
)

// Repository defines the interface for player data access operations.
type Repository interface {
	// Create inserts a new player.
	Create(ctx context.Context, p *playerModel.Player) error

	// GetByID finds a player by id.
	GetByID(ctx context.Context, id int64) (*playerModel.Player, error)

	// GetByName finds a player by display name.
	GetByName(ctx context.Context, name string) (*playerModel.Player, error)

	// GetByTeamAndName finds a player owned by a team, by name and category.
	GetByTeamAndName(ctx context.Context, teamID int64, name, category string) (*playerModel.Player, error)

	// List returns all players ordered by player number.
	List(ctx context.Context) ([]playerModel.Player, error)

	// ListAvailable returns all players not currently sold.
	ListAvailable(ctx context.Context) ([]playerModel.Player, error)

	// ListByTeam returns all players owned by a team.
	ListByTeam(ctx context.Context, teamID int64) ([]playerModel.Player, error)

	// NextNumber allocates the smallest unused player number at or above the
	// category's base offset.
	NextNumber(ctx context.Context, category string) (int, error)

	// Save persists all fields of an existing player.
	Save(ctx context.Context, p *playerModel.Player) error

	// Delete removes a player permanently.
	Delete(ctx context.Context, id int64) error

	// CreditTeamPurse adds amount to a team's purse.
	CreditTeamPurse(ctx context.Context, teamID int64, amount decimal.Decimal) error

	// TeamNames returns a lookup of team id to team name.
	TeamNames(ctx context.Context) (map[int64]string, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new player repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *playerModel.Player) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*playerModel.Player, error) {
	var p playerModel.Player
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, playerModel.ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByName(ctx context.Context, name string) (*playerModel.Player, error) {
	var p playerModel.Player
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, playerModel.ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByTeamAndName(
	ctx context.Context,
	teamID int64,
	name, category string,
) (*playerModel.Player, error) {
	var p playerModel.Player
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND name = ? AND category = ?", teamID, name, category).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, playerModel.ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context) ([]playerModel.Player, error) {
	var players []playerModel.Player
	err := r.db.WithContext(ctx).
		Order("player_number ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *repository) ListAvailable(ctx context.Context) ([]playerModel.Player, error) {
	var players []playerModel.Player
	err := r.db.WithContext(ctx).
		Where("status <> ?", playerModel.StatusSold).
		Order("player_number ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *repository) ListByTeam(ctx context.Context, teamID int64) ([]playerModel.Player, error) {
	var players []playerModel.Player
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("player_number ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// NextNumber walks the taken numbers of a category in order and returns the
// first gap at or above the base offset, so deleted numbers are reused.
func (r *repository) NextNumber(ctx context.Context, category string) (int, error) {
	base := playerModel.NumberBase(category)

	var taken []int
	err := r.db.WithContext(ctx).
		Model(&playerModel.Player{}).
		Where("category = ? AND player_number >= ?", category, base).
		Order("player_number ASC").
		Pluck("player_number", &taken).Error
	if err != nil {
		return 0, err
	}

	next := base
	for _, n := range taken {
		if n != next {
			break
		}
		next++
	}
	return next, nil
}

func (r *repository) Save(ctx context.Context, p *playerModel.Player) error {
	// Select("*") so cleared fields (selling_price, team_id) are written too
	return r.db.WithContext(ctx).Model(p).Select("*").Omit("created_at").Updates(p).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&playerModel.Player{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return playerModel.ErrPlayerNotFound
	}
	return nil
}

func (r *repository) CreditTeamPurse(ctx context.Context, teamID int64, amount decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ?", teamID).
		UpdateColumn("purse", gorm.Expr("purse + ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}
	return nil
}

func (r *repository) TeamNames(ctx context.Context) (map[int64]string, error) {
	var teams []teamModel.Team
	if err := r.db.WithContext(ctx).Select("id", "name").Find(&teams).Error; err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.Name
	}
	return names, nil
}
