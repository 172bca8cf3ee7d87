package group

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/picklepro/api/config"
	mw "github.com/picklepro/api/internal/middleware"
	"github.com/picklepro/api/internal/user"
)

// GroupRoutes sets up all group-related routes.
func GroupRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	groupRepo := NewGroupRepository(db)
	userRepo := user.NewUserRepository(db)
	controller := NewGroupController(groupRepo, userRepo)

	// Public group routes
	router.GET("/groups", controller.GetAllGroups)

	// Authenticated user routes
	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.POST("/groups", controller.CreateGroup)
		authRoutes.POST("/groups/:group_id/members/:user_id", controller.AddMember)
		authRoutes.DELETE("/groups/:group_id/members/:user_id", controller.RemoveMember)
	}
}
