package venue

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/picklepro/api/config"
	"github.com/picklepro/api/internal/match"
	mw "github.com/picklepro/api/internal/middleware"
)

// VenueRoutes sets up all venue-related routes.
func VenueRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	venueRepo := NewVenueRepository(db)
	matchRepo := match.NewMatchRepository(db)
	service := NewVenueService(venueRepo, matchRepo)
	controller := NewVenueController(service)

	// Public venue routes
	router.GET("/venues", controller.GetAllVenues)
	router.GET("/venues/:venue_id", controller.GetVenue)

	// Authenticated user routes
	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.POST("/venues", controller.CreateVenue)
		authRoutes.PUT("/venues/:venue_id", controller.UpdateVenue)    // Authorization within service
		authRoutes.DELETE("/venues/:venue_id", controller.DeleteVenue) // Authorization within service
	}
}
