// Package repository provides the data access layer for the team module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	playerModel "github.com/cricbid/auction/internal/player/model"
	teamModel "github.com/cricbid/auction/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts a new team.
	Create(ctx context.Context, t *teamModel.Team) error

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id int64) (*teamModel.Team, error)

	// GetByNameFold finds a team by case-insensitive name.
	GetByNameFold(ctx context.Context, name string) (*teamModel.Team, error)

	// List returns all teams ordered by name.
	List(ctx context.Context) ([]teamModel.Team, error)

	// Save persists name, owner and purse of an existing team.
	Save(ctx context.Context, t *teamModel.Team) error

	// Delete removes a team permanently.
	Delete(ctx context.Context, id int64) error

	// Roster returns all players owned by a team, ordered by player number.
	Roster(ctx context.Context, teamID int64) ([]playerModel.Player, error)

	// ReleaseRoster detaches every player owned by a team: status untouched,
	// selling price and team reference cleared.
	ReleaseRoster(ctx context.Context, teamID int64) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *teamModel.Team) error {
	err := r.db.WithContext(ctx).Create(t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateError(err) {
			return teamModel.ErrTeamExists
		}
		return err
	}
	return nil
}

// isDuplicateError checks if error is a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

func (r *repository) GetByID(ctx context.Context, id int64) (*teamModel.Team, error) {
	var t teamModel.Team
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) GetByNameFold(ctx context.Context, name string) (*teamModel.Team, error) {
	var t teamModel.Team
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) List(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).Order("name ASC").Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *repository) Save(ctx context.Context, t *teamModel.Team) error {
	err := r.db.WithContext(ctx).
		Model(t).
		Select("name", "owner_name", "purse", "updated_at").
		Updates(t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateError(err) {
			return teamModel.ErrTeamExists
		}
		return err
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&teamModel.Team{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}
	return nil
}

func (r *repository) Roster(ctx context.Context, teamID int64) ([]playerModel.Player, error) {
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

func (r *repository) ReleaseRoster(ctx context.Context, teamID int64) error {
	return r.db.WithContext(ctx).
		Model(&playerModel.Player{}).
		Where("team_id = ?", teamID).
		Updates(map[string]interface{}{
			"status":        playerModel.StatusUntouched,
			"selling_price": nil,
			"team_id":       nil,
		}).Error
}
