package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nagorik_desk/internal/config"
	"nagorik_desk/internal/models"
)

type priorityResponse struct {
	ID         uint   `json:"id"`
	SectorID   uint   `json:"sectorId"`
	Priority   int    `json:"priority"`
	SectorName string `json:"sectorName"`
}

// ListPriorities returns the sector priority ranking, highest first.
func ListPriorities(c *gin.Context) {
	var priorities []priorityResponse
	if err := config.DB.Model(&models.ResolutionPriority{}).
		Select("resolution_priorities.id, resolution_priorities.sector_id, resolution_priorities.priority, sectors.name AS sector_name").
		Joins("JOIN sectors ON sectors.id = resolution_priorities.sector_id").
		Order("resolution_priorities.priority DESC").
		Find(&priorities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch priorities"})
		return
	}

	c.JSON(http.StatusOK, priorities)
}

const trendMonths = 6

type trendResponse struct {
	SectorID   uint     `json:"sectorId"`
	SectorName string   `json:"sectorName"`
	Labels     []string `json:"labels"`
	Data       []int    `json:"data"`
}

// ListTrends returns, per sector, report counts bucketed into the trailing
// six calendar months (oldest first).
func ListTrends(c *gin.Context) {
	var sectors []models.Sector
	if err := config.DB.Order("name asc").Find(&sectors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sectors"})
		return
	}

	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(trendMonths - 1), 0)

	labels := make([]string, trendMonths)
	for i := 0; i < trendMonths; i++ {
		labels[i] = start.AddDate(0, i, 0).Format("Jan")
	}

	trends := make([]trendResponse, 0, len(sectors))
	for _, sector := range sectors {
		var createdAt []time.Time
		if err := config.DB.Model(&models.Report{}).
			Where("sector_id = ? AND created_at >= ?", sector.ID, start).
			Pluck("created_at", &createdAt).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch report trends"})
			return
		}

		data := make([]int, trendMonths)
		for _, t := range createdAt {
			t = t.UTC()
			idx := (t.Year()-start.Year())*12 + int(t.Month()) - int(start.Month())
			if idx >= 0 && idx < trendMonths {
				data[idx]++
			}
		}

		trends = append(trends, trendResponse{
			SectorID:   sector.ID,
			SectorName: sector.Name,
			Labels:     labels,
			Data:       data,
		})
	}

	c.JSON(http.StatusOK, trends)
}
