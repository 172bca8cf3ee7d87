package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/picklepro/api/config"
	mw "github.com/picklepro/api/internal/middleware"
	"github.com/picklepro/api/internal/player"
	"github.com/picklepro/api/internal/rating"
)

// MatchRoutes sets up all match-related routes.
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	matchRepo := NewMatchRepository(db)
	playerRepo := player.NewPlayerRepository(db)
	engine := rating.NewEngine(playerRepo)
	service := NewMatchService(matchRepo, playerRepo, engine)
	controller := NewMatchController(service)

	// Public match routes
	router.GET("/matches", controller.GetAllMatches)
	router.GET("/matches/:match_id", controller.GetMatch)

	// Authenticated user routes
	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.POST("/matches", controller.CreateMatch)
		authRoutes.DELETE("/matches/:match_id", controller.DeleteMatch) // Authorization within service
	}
}
