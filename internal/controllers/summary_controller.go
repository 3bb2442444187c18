package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nagorik_desk/internal/config"
	"nagorik_desk/internal/models"
)

// ListSectorSummaries returns every sector's problem summary, newest first.
func ListSectorSummaries(c *gin.Context) {
	var summaries []models.ProblemSummary
	if err := config.DB.
		Preload("Sector").
		Order("created_at desc").
		Find(&summaries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching problem summaries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": summaries})
}
