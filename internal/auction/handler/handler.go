// Package handler provides HTTP handlers for auction endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	auctionModel "github.com/cricbid/auction/internal/auction/model"
	"github.com/cricbid/auction/internal/auction/service"
	playerModel "github.com/cricbid/auction/internal/player/model"
	teamModel "github.com/cricbid/auction/internal/team/model"
)

// Handler handles HTTP requests for auction endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auction handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Sell handles POST /auction/sell.
func (h *Handler) Sell(c *gin.Context) {
	var req auctionModel.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.RecordSale(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auctionModel.ErrBidTooLow):
			errorResponse(c, "INVALID_REQUEST", "minimum selling price is 2", http.StatusBadRequest)
		case errors.Is(err, auctionModel.ErrInsufficientPurse):
			errorResponse(c, "INSUFFICIENT_PURSE", "insufficient team budget", http.StatusBadRequest)
		case errors.Is(err, auctionModel.ErrPlayerAlreadySold):
			errorResponse(c, "INVALID_REQUEST", "player is already sold", http.StatusBadRequest)
		case errors.Is(err, playerModel.ErrPlayerNotFound):
			notFoundResponse(c, "player not found")
		case errors.Is(err, teamModel.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		default:
			h.logger.Errorw("error selling player", "player_id", req.PlayerID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"sale": resp})
}

// Unsold handles POST /auction/unsold.
func (h *Handler) Unsold(c *gin.Context) {
	var req auctionModel.UnsoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.RecordUnsold(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auctionModel.ErrPlayerAlreadySold):
			errorResponse(c, "INVALID_REQUEST", "sold player must be released first", http.StatusBadRequest)
		case errors.Is(err, playerModel.ErrPlayerNotFound):
			notFoundResponse(c, "player not found")
		default:
			h.logger.Errorw("error marking player unsold", "player_id", req.PlayerID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"sale": resp})
}

// Release handles POST /auction/release.
func (h *Handler) Release(c *gin.Context) {
	var req auctionModel.ReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "missing required fields", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ReleasePlayer(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, playerModel.ErrInvalidCategory):
			errorResponse(c, "INVALID_REQUEST", "invalid player category", http.StatusBadRequest)
		case errors.Is(err, auctionModel.ErrPlayerNotSold):
			errorResponse(c, "INVALID_REQUEST", "player is not sold to a team", http.StatusBadRequest)
		case errors.Is(err, playerModel.ErrPlayerNotFound):
			notFoundResponse(c, "player not found in team")
		case errors.Is(err, teamModel.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		default:
			h.logger.Errorw("error releasing player", "team_id", req.TeamID, "player", req.Player, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"sale": resp})
}
