// Package handler provides HTTP handlers for player endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	playerModel "github.com/cricbid/auction/internal/player/model"
	"github.com/cricbid/auction/internal/player/service"
)

// Handler handles HTTP requests for player endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new player handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// AddPlayer handles POST /players/add.
func (h *Handler) AddPlayer(c *gin.Context) {
	var req playerModel.AddPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.AddPlayer(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, playerModel.ErrInvalidCategory):
			errorResponse(c, "INVALID_REQUEST", "invalid player category", http.StatusBadRequest)
		case errors.Is(err, playerModel.ErrInvalidBasePrice):
			errorResponse(c, "INVALID_REQUEST", "base price must be greater than 0", http.StatusBadRequest)
		case errors.Is(err, playerModel.ErrInvalidName):
			errorResponse(c, "INVALID_REQUEST", "player name is required", http.StatusBadRequest)
		default:
			h.logger.Errorw("error adding player", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"player": resp})
}

// ListPlayers handles GET /players/list.
func (h *Handler) ListPlayers(c *gin.Context) {
	resp, err := h.service.ListPlayers(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing players", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListAvailablePlayers handles GET /players/available.
func (h *Handler) ListAvailablePlayers(c *gin.Context) {
	resp, err := h.service.ListAvailablePlayers(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing available players", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateStats handles POST /players/stats/update.
func (h *Handler) UpdateStats(c *gin.Context) {
	var req playerModel.UpdateStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpdateStats(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, playerModel.ErrPlayerNotFound):
			notFoundResponse(c, "player not found")
		case errors.Is(err, playerModel.ErrInvalidCategory):
			errorResponse(c, "INVALID_REQUEST", "invalid player category", http.StatusBadRequest)
		case errors.Is(err, playerModel.ErrCategoryMismatch):
			errorResponse(c, "CATEGORY_MISMATCH", "category does not match player category", http.StatusBadRequest)
		default:
			h.logger.Errorw("error updating player stats", "name", req.Name, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"player": resp})
}

// DeletePlayer handles POST /players/delete.
func (h *Handler) DeletePlayer(c *gin.Context) {
	var req playerModel.DeletePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.DeletePlayer(c.Request.Context(), &req); err != nil {
		if errors.Is(err, playerModel.ErrPlayerNotFound) {
			notFoundResponse(c, "player not found")
			return
		}
		h.logger.Errorw("error deleting player", "name", req.Name, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
