package main

import (
	"log"

	"github.com/arnavshah/capacity-planner-api/pkg/auth"
	"github.com/arnavshah/capacity-planner-api/pkg/config"
	"github.com/arnavshah/capacity-planner-api/pkg/database"
	"github.com/arnavshah/capacity-planner-api/pkg/handlers"
	"github.com/arnavshah/capacity-planner-api/pkg/server"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	if cfg.GinMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	a := auth.New(cfg)
	if err := a.EnsureAdminExists(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Printf("could not ensure admin user: %v", err)
	}

	r := server.NewRouter(handlers.New(db, a, cfg))

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}
