package auth

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/picklepro/api/config"
	mw "github.com/picklepro/api/internal/middleware"
	"github.com/picklepro/api/internal/user"
)

// AuthRoutes sets up all auth-related routes.
func AuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	userRepo := user.NewUserRepository(db)
	authController := NewAuthController(userRepo, appConfig)

	router.POST("/auth/google", authController.GoogleSignIn)

	authRoutes := router.Group("/")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	{
		authRoutes.GET("/auth/me", authController.Me)
	}
}
