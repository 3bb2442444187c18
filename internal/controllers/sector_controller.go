package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nagorik_desk/internal/config"
	"nagorik_desk/internal/models"
)

type sectorResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type subsectorResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	SectorID uint   `json:"sectorId"`
}

// ListSectors returns the sector classification, alphabetically.
func ListSectors(c *gin.Context) {
	var sectors []sectorResponse
	if err := config.DB.Model(&models.Sector{}).
		Order("name asc").
		Find(&sectors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sectors"})
		return
	}

	c.JSON(http.StatusOK, sectors)
}

// ListSubsectors returns a sector's subsectors, alphabetically.
func ListSubsectors(c *gin.Context) {
	sectorID, err := strconv.ParseUint(c.Param("sectorId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sector ID"})
		return
	}

	var subsectors []subsectorResponse
	if err := config.DB.Model(&models.Subsector{}).
		Where("sector_id = ?", uint(sectorID)).
		Order("name asc").
		Find(&subsectors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subsectors"})
		return
	}

	c.JSON(http.StatusOK, subsectors)
}
