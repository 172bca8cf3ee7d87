package player

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/picklepro/api/config"
	mw "github.com/picklepro/api/internal/middleware"
	"github.com/picklepro/api/internal/user"
)

// PlayerRoutes sets up all player-related routes.
func PlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	playerRepo := NewPlayerRepository(db)
	userRepo := user.NewUserRepository(db)
	service := NewPlayerService(playerRepo, userRepo)
	controller := NewPlayerController(service)

	// Public player routes
	router.GET("/players", controller.GetAllPlayers)
	router.GET("/players/by-email/:email", controller.GetPlayerByEmail)

	// Authenticated user routes
	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.POST("/players", controller.CreatePlayer)
		authRoutes.PUT("/players/:player_id", controller.UpdatePlayer)
		authRoutes.DELETE("/players/:player_id", controller.DeletePlayer)

		// Group membership management; authorization within the service
		authRoutes.POST("/players/:player_id/groups/:group_id", controller.AddToGroup)
		authRoutes.DELETE("/players/:player_id/groups/:group_id", controller.RemoveFromGroup)
	}
}
