// Package service provides business logic layer for the player module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	playerModel "github.com/cricbid/auction/internal/player/model"
	"github.com/cricbid/auction/internal/player/repository"
)

// Service defines the interface for player business logic operations.
type Service interface {
	// AddPlayer creates a roster entry with a gap-filled player number.
	AddPlayer(ctx context.Context, req *playerModel.AddPlayerRequest) (*playerModel.PlayerResponse, error)

	// ListPlayers returns every player grouped by category.
	ListPlayers(ctx context.Context) (*playerModel.PlayerListResponse, error)

	// ListAvailablePlayers returns every non-sold player grouped by category.
	ListAvailablePlayers(ctx context.Context) (*playerModel.PlayerListResponse, error)

	// UpdateStats overwrites the stat columns allowed for the player's category.
	UpdateStats(ctx context.Context, req *playerModel.UpdateStatsRequest) (*playerModel.PlayerResponse, error)

	// DeletePlayer removes a player permanently, refunding its team first if sold.
	DeletePlayer(ctx context.Context, req *playerModel.DeletePlayerRequest) error
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new player service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// AddPlayer creates a roster entry. Number allocation and insert run in one
// transaction so two adds cannot claim the same number.
func (s *service) AddPlayer(ctx context.Context, req *playerModel.AddPlayerRequest) (*playerModel.PlayerResponse, error) {
	if !playerModel.ValidCategory(req.Category) {
		return nil, playerModel.ErrInvalidCategory
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, playerModel.ErrInvalidName
	}
	if !req.BasePrice.IsPositive() {
		return nil, playerModel.ErrInvalidBasePrice
	}

	p := &playerModel.Player{
		Name:      strings.TrimSpace(req.Name),
		Category:  req.Category,
		BasePrice: req.BasePrice,
		Status:    playerModel.StatusAvailable,
	}
	req.Stats.ApplyTo(p)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		number, err := txRepo.NextNumber(ctx, req.Category)
		if err != nil {
			return err
		}
		p.PlayerNumber = number

		return txRepo.Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("player added",
		"player_id", p.ID, "name", p.Name, "category", p.Category, "player_number", p.PlayerNumber)
	resp := playerModel.NewPlayerResponse(p, nil)
	return &resp, nil
}

// ListPlayers returns every player grouped by category.
func (s *service) ListPlayers(ctx context.Context) (*playerModel.PlayerListResponse, error) {
	players, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.groupByCategory(ctx, players)
}

// ListAvailablePlayers returns every non-sold player grouped by category.
func (s *service) ListAvailablePlayers(ctx context.Context) (*playerModel.PlayerListResponse, error) {
	players, err := s.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return s.groupByCategory(ctx, players)
}

func (s *service) groupByCategory(ctx context.Context, players []playerModel.Player) (*playerModel.PlayerListResponse, error) {
	teamNames, err := s.repo.TeamNames(ctx)
	if err != nil {
		return nil, err
	}

	resp := &playerModel.PlayerListResponse{
		Players: make(map[string][]playerModel.PlayerResponse, len(playerModel.Categories())),
		Total:   len(players),
	}
	for _, category := range playerModel.Categories() {
		resp.Players[category] = []playerModel.PlayerResponse{}
	}

	for i := range players {
		p := &players[i]
		var soldTo *string
		if p.TeamID != nil {
			if name, ok := teamNames[*p.TeamID]; ok {
				soldTo = &name
			}
		}
		resp.Players[p.Category] = append(resp.Players[p.Category], playerModel.NewPlayerResponse(p, soldTo))
	}

	return resp, nil
}

// UpdateStats overwrites the stat columns allowed for the player's category.
// The submitted category must match the stored one.
func (s *service) UpdateStats(ctx context.Context, req *playerModel.UpdateStatsRequest) (*playerModel.PlayerResponse, error) {
	if !playerModel.ValidCategory(req.Category) {
		return nil, playerModel.ErrInvalidCategory
	}

	var p *playerModel.Player
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		var err error
		p, err = txRepo.GetByName(ctx, req.Name)
		if err != nil {
			return err
		}

		if p.Category != req.Category {
			return playerModel.ErrCategoryMismatch
		}

		req.Stats.ApplyTo(p)
		return txRepo.Save(ctx, p)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("player stats updated", "player_id", p.ID, "name", p.Name)
	resp := playerModel.NewPlayerResponse(p, nil)
	return &resp, nil
}

// DeletePlayer removes a player permanently. A sold player refunds its team's
// purse in the same transaction before the row is removed.
func (s *service) DeletePlayer(ctx context.Context, req *playerModel.DeletePlayerRequest) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		p, err := txRepo.GetByName(ctx, req.Name)
		if err != nil {
			return err
		}

		if p.Sold() && p.TeamID != nil {
			if err := txRepo.CreditTeamPurse(ctx, *p.TeamID, p.SalePrice()); err != nil {
				return err
			}
		}

		return txRepo.Delete(ctx, p.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("player deleted", "name", req.Name)
	return nil
}
