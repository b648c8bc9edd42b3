package server

import (
	"github.com/arnavshah/capacity-planner-api/pkg/handlers"
	"github.com/arnavshah/capacity-planner-api/pkg/obs"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every route onto a fresh gin engine.
// Both the standalone server and the serverless entry point use it.
func NewRouter(h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.Use(obs.RequestIDMiddleware(), gin.Logger(), gin.Recovery())

	r.GET("/", h.Index)
	r.GET("/health", h.Health)
	r.POST("/admin/login", h.Login)

	// Admin Endpoints
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	// Planning Endpoints
	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/plan", h.Plan)
		api.POST("/plan/heatmap", h.PlanHeatmap)
		api.POST("/plan/csv", h.PlanCSV)
		api.POST("/validate", h.ValidateInput)
		api.GET("/usage", h.GetMyUsage)
	}

	return r
}
