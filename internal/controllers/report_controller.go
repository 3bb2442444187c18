package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"nagorik_desk/internal/config"
	"nagorik_desk/internal/middleware"
	"nagorik_desk/internal/models"
	"nagorik_desk/internal/storage"
	"nagorik_desk/internal/summarizer"
)

// CreateReport files a new citizen report from a multipart form. Attached
// images go through the object store and are kept as URL references. The
// report insert and the sector summary recompute share one transaction: a
// report never exists without its sector summary reflecting it.
func CreateReport(c *gin.Context) {
	userID := middleware.UserID(c)

	description := strings.TrimSpace(c.PostForm("description"))
	title := strings.TrimSpace(c.PostForm("title"))

	sectorID, sectorErr := strconv.ParseUint(c.PostForm("sectorId"), 10, 32)
	subsectorID, subsectorErr := strconv.ParseUint(c.PostForm("subsectorId"), 10, 32)
	if description == "" || sectorErr != nil || subsectorErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "Missing required fields",
			"required": []string{"description", "sectorId", "subsectorId"},
		})
		return
	}

	var images []models.ReportImage
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, file := range form.File["images"] {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not read uploaded image"})
				return
			}
			url, err := storage.Default.Save(file.Filename, src)
			src.Close()
			if err != nil {
				logrus.WithError(err).Error("CreateReport: storing image failed")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store uploaded image"})
				return
			}
			images = append(images, models.ReportImage{URL: url})
		}
	}

	report := models.Report{
		Title:       title,
		Description: description,
		Status:      models.StatusPending,
		UserID:      userID,
		SectorID:    uint(sectorID),
		SubsectorID: uint(subsectorID),
		Images:      images,
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}

	if err := tx.Create(&report).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create report: " + err.Error()})
		return
	}

	if err := recomputeSectorSummary(tx, uint(sectorID)); err != nil {
		tx.Rollback()
		logrus.WithError(err).Error("CreateReport: summary recompute failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update sector summary"})
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "report": report})
}

// recomputeSectorSummary rebuilds the sector's ProblemSummary from scratch:
// every report description in the sector, concatenated, summarized, and
// upserted as the single row for that sector. The summarizer degrades to the
// raw text on failure, so this only errors on the database.
func recomputeSectorSummary(tx *gorm.DB, sectorID uint) error {
	var descriptions []string
	if err := tx.Model(&models.Report{}).
		Where("sector_id = ?", sectorID).
		Order("created_at asc").
		Pluck("description", &descriptions).Error; err != nil {
		return err
	}

	combined := strings.Join(descriptions, "\n\n")
	summary := summarizer.Default.Summarize(combined)

	var existing models.ProblemSummary
	err := tx.Where("sector_id = ?", sectorID).First(&existing).Error
	switch {
	case err == nil:
		existing.Summary = summary
		existing.Problems = len(descriptions)
		return tx.Save(&existing).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return tx.Create(&models.ProblemSummary{
			SectorID: sectorID,
			Summary:  summary,
			Problems: len(descriptions),
		}).Error
	default:
		return err
	}
}

// ListUserReports returns the caller's own reports, newest first.
func ListUserReports(c *gin.Context) {
	userID := middleware.UserID(c)

	var reports []models.Report
	if err := config.DB.Where("user_id = ?", userID).
		Preload("Sector").
		Preload("Images").
		Order("created_at desc").
		Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reports})
}

// ListSectorReports returns the triage queue: every PENDING or UNDER_REVIEW
// report with submitter contact info and classification names, newest first.
func ListSectorReports(c *gin.Context) {
	var reports []models.Report
	if err := config.DB.
		Where("status IN ?", []string{models.StatusPending, models.StatusUnderReview}).
		Preload("User").
		Preload("Sector").
		Preload("Subsector").
		Preload("Images").
		Order("created_at desc").
		Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching sector reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reports})
}

// UpdateReportStatus moves a report to RESOLVED or UNDER_REVIEW.
func UpdateReportStatus(c *gin.Context) {
	reportID, err := strconv.ParseUint(c.Param("reportId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report id"})
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Status != models.StatusResolved && body.Status != models.StatusUnderReview {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	var report models.Report
	if err := config.DB.First(&report, uint(reportID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading report"})
		}
		return
	}

	report.Status = body.Status
	if err := config.DB.Save(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report status"})
		return
	}

	var updated models.Report
	if err := config.DB.
		Preload("User").
		Preload("Sector").
		Preload("Subsector").
		Preload("Images").
		First(&updated, report.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading updated report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": updated})
}
