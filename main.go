package main

import (
	"log"

	"github.com/picklepro/api/config"
	_ "github.com/picklepro/api/docs"
	"github.com/picklepro/api/internal/group"
	"github.com/picklepro/api/internal/match"
	"github.com/picklepro/api/internal/player"
	"github.com/picklepro/api/internal/user"
	"github.com/picklepro/api/internal/venue"
	"github.com/picklepro/api/routes"
)

// @title PicklePro REST API
// @version 1.0
// @description Scheduling and rating backend for recreational pickleball.
// @host localhost:8080
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	err := config.DB.AutoMigrate(
		&user.User{},
		&group.Group{},
		&player.Player{},
		&match.Match{},
		&venue.Venue{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	log.Println("AutoMigrate successful")

	r := routes.SetupRoutes(cfg)

	// Use port from loaded configuration
	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
