// Package service provides business logic layer for the team module.
package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	teamModel "github.com/cricbid/auction/internal/team/model"
	"github.com/cricbid/auction/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// AddTeam creates a new franchise with the default purse.
	AddTeam(ctx context.Context, req *teamModel.AddTeamRequest) (*teamModel.TeamResponse, error)

	// GetTeam returns one franchise with its roster.
	GetTeam(ctx context.Context, teamID int64) (*teamModel.TeamResponse, error)

	// ListTeams returns all franchises with their rosters.
	ListTeams(ctx context.Context) (*teamModel.TeamListResponse, error)

	// UpdateTeam renames a team and/or changes its owner.
	UpdateTeam(ctx context.Context, req *teamModel.UpdateTeamRequest) (*teamModel.TeamResponse, error)

	// UpdatePurse sets a team's purse directly.
	UpdatePurse(ctx context.Context, req *teamModel.PurseRequest) (*teamModel.TeamResponse, error)

	// ResetTeam restores the default purse and releases every owned player.
	ResetTeam(ctx context.Context, teamID int64) (*teamModel.TeamResponse, error)

	// DeleteTeam releases every owned player, then removes the team.
	DeleteTeam(ctx context.Context, teamID int64) error
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// AddTeam creates a new franchise with the default purse.
func (s *service) AddTeam(ctx context.Context, req *teamModel.AddTeamRequest) (*teamModel.TeamResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, teamModel.ErrInvalidTeamName
	}

	team := &teamModel.Team{
		Name:      name,
		OwnerName: strings.TrimSpace(req.OwnerName),
		Purse:     teamModel.DefaultPurse,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		// Name uniqueness is case-insensitive, so the unique index alone is
		// not enough.
		_, err := txRepo.GetByNameFold(ctx, name)
		if err == nil {
			return teamModel.ErrTeamExists
		}
		if !errors.Is(err, teamModel.ErrTeamNotFound) {
			return err
		}

		return txRepo.Create(ctx, team)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team added", "team_id", team.ID, "name", team.Name)
	resp := teamModel.NewTeamResponse(team, nil)
	return &resp, nil
}

// GetTeam returns one franchise with its roster.
func (s *service) GetTeam(ctx context.Context, teamID int64) (*teamModel.TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	roster, err := s.repo.Roster(ctx, teamID)
	if err != nil {
		return nil, err
	}

	resp := teamModel.NewTeamResponse(team, roster)
	return &resp, nil
}

// ListTeams returns all franchises with their rosters.
func (s *service) ListTeams(ctx context.Context) (*teamModel.TeamListResponse, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := &teamModel.TeamListResponse{Teams: make([]teamModel.TeamResponse, 0, len(teams)), Total: len(teams)}
	for i := range teams {
		roster, err := s.repo.Roster(ctx, teams[i].ID)
		if err != nil {
			return nil, err
		}
		resp.Teams = append(resp.Teams, teamModel.NewTeamResponse(&teams[i], roster))
	}
	return resp, nil
}

// UpdateTeam renames a team and/or changes its owner. A rename that collides
// case-insensitively with a different team is rejected.
func (s *service) UpdateTeam(ctx context.Context, req *teamModel.UpdateTeamRequest) (*teamModel.TeamResponse, error) {
	var team *teamModel.Team

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		var err error
		team, err = txRepo.GetByID(ctx, req.TeamID)
		if err != nil {
			return err
		}

		if name := strings.TrimSpace(req.Name); name != "" {
			existing, err := txRepo.GetByNameFold(ctx, name)
			if err == nil && existing.ID != team.ID {
				return teamModel.ErrTeamExists
			}
			if err != nil && !errors.Is(err, teamModel.ErrTeamNotFound) {
				return err
			}
			team.Name = name
		}
		if owner := strings.TrimSpace(req.OwnerName); owner != "" {
			team.OwnerName = owner
		}

		return txRepo.Save(ctx, team)
	})
	if err != nil {
		return nil, err
	}

	roster, err := s.repo.Roster(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	resp := teamModel.NewTeamResponse(team, roster)
	return &resp, nil
}

// UpdatePurse sets a team's purse directly.
func (s *service) UpdatePurse(ctx context.Context, req *teamModel.PurseRequest) (*teamModel.TeamResponse, error) {
	if req.Amount.IsNegative() {
		return nil, teamModel.ErrNegativeAmount
	}

	var team *teamModel.Team
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		var err error
		team, err = txRepo.GetByID(ctx, req.TeamID)
		if err != nil {
			return err
		}

		team.Purse = req.Amount
		return txRepo.Save(ctx, team)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team purse updated", "team_id", team.ID, "purse", team.Purse)
	roster, err := s.repo.Roster(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	resp := teamModel.NewTeamResponse(team, roster)
	return &resp, nil
}

// ResetTeam restores the default purse and returns every owned player to the
// untouched pool, in one transaction.
func (s *service) ResetTeam(ctx context.Context, teamID int64) (*teamModel.TeamResponse, error) {
	var team *teamModel.Team

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		var err error
		team, err = txRepo.GetByID(ctx, teamID)
		if err != nil {
			return err
		}

		if err := txRepo.ReleaseRoster(ctx, teamID); err != nil {
			return err
		}

		team.Purse = teamModel.DefaultPurse
		return txRepo.Save(ctx, team)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team reset", "team_id", teamID)
	resp := teamModel.NewTeamResponse(team, nil)
	return &resp, nil
}

// DeleteTeam releases every owned player back to the untouched pool, then
// removes the team.
func (s *service) DeleteTeam(ctx context.Context, teamID int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		if _, err := txRepo.GetByID(ctx, teamID); err != nil {
			return err
		}

		if err := txRepo.ReleaseRoster(ctx, teamID); err != nil {
			return err
		}

		return txRepo.Delete(ctx, teamID)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("team deleted", "team_id", teamID)
	return nil
}
