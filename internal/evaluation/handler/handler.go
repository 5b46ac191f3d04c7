// Package handler exposes the evaluation HTTP endpoint.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cricbid/auction/internal/evaluation/service"
)

type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

func New(service service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: service, logger: logger}
}

// EvaluateAll handles GET /evaluation.
func (h *Handler) EvaluateAll(c *gin.Context) {
	resp, err := h.service.EvaluateAll(c.Request.Context())
	if err != nil {
		h.logger.Errorw("evaluation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"code": "INTERNAL_ERROR", "message": "internal server error"},
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}
