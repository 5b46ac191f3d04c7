// Package router provides auction module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cricbid/auction/internal/auction/handler"
	"github.com/cricbid/auction/internal/auction/service"
)

// RegisterRoutes registers auction module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	svc := service.New(db, logger)
	h := handler.New(svc, logger)

	r.POST("/auction/sell", h.Sell)
	r.POST("/auction/unsold", h.Unsold)
	r.POST("/auction/release", h.Release)
}
