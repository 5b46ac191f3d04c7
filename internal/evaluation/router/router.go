// Package router provides evaluation module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/cricbid/auction/internal/evaluation/handler"
	"github.com/cricbid/auction/internal/evaluation/repository"
	"github.com/cricbid/auction/internal/evaluation/service"
)

// RegisterRoutes registers evaluation module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/evaluation", h.EvaluateAll)
}
