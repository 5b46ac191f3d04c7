// Package service provides business logic layer for the auction module:
// the legal state transitions of a player and the purse movements that go
// with them.
package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	auctionModel "github.com/cricbid/auction/internal/auction/model"
	playerModel "github.com/cricbid/auction/internal/player/model"
	playerRepository "github.com/cricbid/auction/internal/player/repository"
	teamModel "github.com/cricbid/auction/internal/team/model"
	teamRepository "github.com/cricbid/auction/internal/team/repository"
)

// Service defines the interface for auction business logic operations.
type Service interface {
	// RecordSale sells a player to a team: the player becomes sold at the
	// given price and the team's purse is debited, atomically.
	RecordSale(ctx context.Context, req *auctionModel.SaleRequest) (*auctionModel.SaleResponse, error)

	// RecordUnsold marks a pool player as unsold. Safe to repeat.
	RecordUnsold(ctx context.Context, req *auctionModel.UnsoldRequest) (*auctionModel.SaleResponse, error)

	// ReleasePlayer removes a player from a team, refunds the purse and
	// returns the player to the untouched pool.
	ReleasePlayer(ctx context.Context, req *auctionModel.ReleaseRequest) (*auctionModel.SaleResponse, error)
}

type service struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new auction service instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		db:     db,
		logger: logger,
	}
}

// RecordSale sells a player to a team. Every precondition is checked inside
// the transaction so the status change and the purse debit commit together
// or not at all.
func (s *service) RecordSale(ctx context.Context, req *auctionModel.SaleRequest) (*auctionModel.SaleResponse, error) {
	if req.Price.LessThan(auctionModel.MinimumBid) {
		return nil, auctionModel.ErrBidTooLow
	}

	var (
		player *playerModel.Player
		team   *teamModel.Team
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		players := playerRepository.New(tx)
		teams := teamRepository.New(tx)

		var err error
		player, err = players.GetByID(ctx, req.PlayerID)
		if err != nil {
			return err
		}
		team, err = teams.GetByID(ctx, req.TeamID)
		if err != nil {
			return err
		}

		if player.Sold() {
			return auctionModel.ErrPlayerAlreadySold
		}
		if team.Purse.LessThan(req.Price) {
			return auctionModel.ErrInsufficientPurse
		}

		player.Status = playerModel.StatusSold
		player.SellingPrice = decimal.NullDecimal{Decimal: req.Price, Valid: true}
		player.TeamID = &team.ID
		if err := players.Save(ctx, player); err != nil {
			return err
		}

		team.Purse = team.Purse.Sub(req.Price)
		return teams.Save(ctx, team)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("player sold",
		"player_id", player.ID, "team_id", team.ID, "price", req.Price, "purse", team.Purse)
	return saleResponse(player, team), nil
}

// RecordUnsold marks a pool player as unsold. A sold player cannot go
// straight to unsold; it has to be released from its team first.
func (s *service) RecordUnsold(ctx context.Context, req *auctionModel.UnsoldRequest) (*auctionModel.SaleResponse, error) {
	var player *playerModel.Player

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		players := playerRepository.New(tx)

		var err error
		player, err = players.GetByID(ctx, req.PlayerID)
		if err != nil {
			return err
		}

		if player.Sold() {
			return auctionModel.ErrPlayerAlreadySold
		}
		if player.Status == playerModel.StatusUnsold {
			return nil
		}

		player.Status = playerModel.StatusUnsold
		player.SellingPrice = decimal.NullDecimal{}
		player.TeamID = nil
		return players.Save(ctx, player)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("player unsold", "player_id", player.ID)
	return saleResponse(player, nil), nil
}

// ReleasePlayer removes a player from a team. The refund equals the recorded
// selling price (base price if none), so re-selling at the same price
// restores the purse exactly.
func (s *service) ReleasePlayer(ctx context.Context, req *auctionModel.ReleaseRequest) (*auctionModel.SaleResponse, error) {
	if !playerModel.ValidCategory(req.Category) {
		return nil, playerModel.ErrInvalidCategory
	}

	var (
		player *playerModel.Player
		team   *teamModel.Team
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		players := playerRepository.New(tx)
		teams := teamRepository.New(tx)

		var err error
		team, err = teams.GetByID(ctx, req.TeamID)
		if err != nil {
			return err
		}

		player, err = players.GetByTeamAndName(ctx, team.ID, req.Player, req.Category)
		if err != nil {
			return err
		}
		if !player.Sold() {
			return auctionModel.ErrPlayerNotSold
		}

		team.Purse = team.Purse.Add(player.SalePrice())
		if err := teams.Save(ctx, team); err != nil {
			return err
		}

		player.ClearSale()
		return players.Save(ctx, player)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("player released",
		"player_id", player.ID, "team_id", team.ID, "purse", team.Purse)
	return saleResponse(player, team), nil
}

// saleResponse builds the response for an auction action.
func saleResponse(p *playerModel.Player, t *teamModel.Team) *auctionModel.SaleResponse {
	resp := &auctionModel.SaleResponse{
		PlayerID:   p.ID,
		PlayerName: p.Name,
		Status:     p.Status,
		TeamID:     p.TeamID,
	}
	if p.SellingPrice.Valid {
		price := p.SellingPrice.Decimal
		resp.SellingPrice = &price
	}
	if t != nil {
		purse := t.Purse
		resp.TeamPurse = &purse
	}
	return resp
}
