// Package router provides player module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cricbid/auction/internal/player/handler"
	"github.com/cricbid/auction/internal/player/repository"
	"github.com/cricbid/auction/internal/player/service"
)

// RegisterRoutes registers player module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	r.POST("/players/add", h.AddPlayer)
	r.GET("/players/list", h.ListPlayers)
	r.GET("/players/available", h.ListAvailablePlayers)
	r.POST("/players/stats/update", h.UpdateStats)
	r.POST("/players/delete", h.DeletePlayer)
}
