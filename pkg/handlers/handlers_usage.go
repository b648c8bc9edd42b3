package handlers

import (
	"net/http"

	"github.com/arnavshah/capacity-planner-api/pkg/database"
	"github.com/gin-gonic/gin"
)

// GetMyUsage returns usage stats for the authenticated API key
func (h *Handler) GetMyUsage(c *gin.Context) {
	apiKeyRaw, exists := c.Get(ctxAPIKey)
	if !exists {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API Key context missing"})
		return
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	usage, err := database.UsageHistory(c.Request.Context(), h.DB, apiKey.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch usage details"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"key_name":      apiKey.Name,
		"rate_limit":    apiKey.RateLimit,
		"usage_history": usage,
		"totals":        database.SumUsage(usage),
	})
}

// GetUsage returns usage stats for any key (admin)
func (h *Handler) GetUsage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	usage, err := database.UsageHistory(c.Request.Context(), h.DB, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch usage details"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"usage":  usage,
		"totals": database.SumUsage(usage),
	})
}
