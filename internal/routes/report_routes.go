package routes

import (
	"nagorik_desk/internal/controllers"
	"nagorik_desk/internal/middleware"
	"nagorik_desk/internal/models"

	"github.com/gin-gonic/gin"
)

func ReportRoutes(r *gin.Engine) {
	reports := r.Group("/api/reports")
	{
		reports.POST("", middleware.RequireAuth(), controllers.CreateReport)
		reports.GET("/user", middleware.RequireAuth(), controllers.ListUserReports)

		sectorAdmin := middleware.RequireRole(models.RoleSectorAdmin)
		reports.GET("/sector", sectorAdmin, controllers.ListSectorReports)
		reports.PATCH("/:reportId/status", sectorAdmin, controllers.UpdateReportStatus)
	}
}
