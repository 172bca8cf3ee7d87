package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/picklepro/api/config"
	"github.com/picklepro/api/internal/auth"
	"github.com/picklepro/api/internal/group"
	"github.com/picklepro/api/internal/match"
	"github.com/picklepro/api/internal/player"
	"github.com/picklepro/api/internal/venue"
)

func SetupRoutes(appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "picklepro-api", "status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	db := config.DB
	jwtSecret := appConfig.JWT.Secret

	// API routes
	api := r.Group("/api")
	auth.AuthRoutes(api, db, appConfig, jwtSecret)
	group.GroupRoutes(api, db, appConfig, jwtSecret)
	player.PlayerRoutes(api, db, appConfig, jwtSecret)
	match.MatchRoutes(api, db, appConfig, jwtSecret)
	venue.VenueRoutes(api, db, appConfig, jwtSecret)

	return r
}
