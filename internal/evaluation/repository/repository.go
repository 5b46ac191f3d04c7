// Package repository provides read-only data access for team evaluation.
package repository

import (
	"context"

	"gorm.io/gorm"

	playerModel "github.com/cricbid/auction/internal/player/model"
	teamModel "github.com/cricbid/auction/internal/team/model"
)

type Repository interface {
	// ListTeams returns all teams ordered by name.
	ListTeams(ctx context.Context) ([]teamModel.Team, error)
	// Roster returns the sold players currently owned by the team.
	Roster(ctx context.Context, teamID int64) ([]playerModel.Player, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

func New(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) ListTeams(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

func (r *repositoryImpl) Roster(ctx context.Context, teamID int64) ([]playerModel.Player, error) {
	var players []playerModel.Player
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND status = ?", teamID, playerModel.StatusSold).
		Order("category ASC, player_number ASC").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}
