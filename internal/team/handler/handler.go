// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	teamModel "github.com/cricbid/auction/internal/team/model"
	"github.com/cricbid/auction/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// AddTeam handles POST /teams/add.
func (h *Handler) AddTeam(c *gin.Context) {
	var req teamModel.AddTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.AddTeam(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, teamModel.ErrTeamExists):
			errorResponse(c, "TEAM_EXISTS", "team name already exists", http.StatusBadRequest)
		case errors.Is(err, teamModel.ErrInvalidTeamName):
			errorResponse(c, "INVALID_REQUEST", "team name is required", http.StatusBadRequest)
		default:
			h.logger.Errorw("error adding team", "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"team": resp})
}

// GetTeam handles GET /teams/get.
func (h *Handler) GetTeam(c *gin.Context) {
	teamID, err := strconv.ParseInt(c.Query("team_id"), 10, 64)
	if err != nil || teamID <= 0 {
		errorResponse(c, "INVALID_REQUEST", "team_id parameter is required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.GetTeam(c.Request.Context(), teamID)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error getting team", "team_id", teamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListTeams handles GET /teams/list.
func (h *Handler) ListTeams(c *gin.Context) {
	resp, err := h.service.ListTeams(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error listing teams", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateTeam handles POST /teams/update.
func (h *Handler) UpdateTeam(c *gin.Context) {
	var req teamModel.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpdateTeam(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, teamModel.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, teamModel.ErrTeamExists):
			errorResponse(c, "TEAM_EXISTS", "team name already exists", http.StatusBadRequest)
		default:
			h.logger.Errorw("error updating team", "team_id", req.TeamID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": resp})
}

// UpdatePurse handles POST /teams/purse.
func (h *Handler) UpdatePurse(c *gin.Context) {
	var req teamModel.PurseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.UpdatePurse(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, teamModel.ErrTeamNotFound):
			notFoundResponse(c, "team not found")
		case errors.Is(err, teamModel.ErrNegativeAmount):
			errorResponse(c, "INVALID_REQUEST", "purse amount must not be negative", http.StatusBadRequest)
		default:
			h.logger.Errorw("error updating purse", "team_id", req.TeamID, "error", err)
			errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": resp})
}

// ResetTeam handles POST /teams/reset.
func (h *Handler) ResetTeam(c *gin.Context) {
	var req teamModel.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.ResetTeam(c.Request.Context(), req.TeamID)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error resetting team", "team_id", req.TeamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": resp})
}

// DeleteTeam handles POST /teams/delete.
func (h *Handler) DeleteTeam(c *gin.Context) {
	var req teamModel.TeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteTeam(c.Request.Context(), req.TeamID); err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			notFoundResponse(c, "team not found")
			return
		}
		h.logger.Errorw("error deleting team", "team_id", req.TeamID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
