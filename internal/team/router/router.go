// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cricbid/auction/internal/team/handler"
	"github.com/cricbid/auction/internal/team/repository"
	"github.com/cricbid/auction/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, db, logger)
	h := handler.New(svc, logger)

	r.POST("/teams/add", h.AddTeam)
	r.GET("/teams/get", h.GetTeam)
	r.GET("/teams/list", h.ListTeams)
	r.POST("/teams/update", h.UpdateTeam)
	r.POST("/teams/purse", h.UpdatePurse)
	r.POST("/teams/reset", h.ResetTeam)
	r.POST("/teams/delete", h.DeleteTeam)
}
