package handler

import (
	"log"
	"net/http"

	"github.com/arnavshah/capacity-planner-api/pkg/auth"
	"github.com/arnavshah/capacity-planner-api/pkg/config"
	"github.com/arnavshah/capacity-planner-api/pkg/database"
	"github.com/arnavshah/capacity-planner-api/pkg/handlers"
	"github.com/arnavshah/capacity-planner-api/pkg/server"
	"github.com/gin-gonic/gin"
)

var r http.Handler

func init() {
	// .env only exists under vercel dev
	cfg, err := config.Load()
	if err != nil {
		r = unavailable(err)
		return
	}

	db, err := database.Open(cfg)
	if err != nil {
		r = unavailable(err)
		return
	}

	a := auth.New(cfg)
	if err := a.EnsureAdminExists(db, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Printf("could not ensure admin user: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	r = server.NewRouter(handlers.New(db, a, cfg))
}

// unavailable answers every request with 503 when startup failed
func unavailable(err error) http.Handler {
	log.Printf("startup failed: %v", err)
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"service unavailable"}`, http.StatusServiceUnavailable)
	})
}

// Handler is the entry point for Vercel Go Runtime
func Handler(w http.ResponseWriter, req *http.Request) {
	r.ServeHTTP(w, req)
}
