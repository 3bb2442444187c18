package routes

import (
	"nagorik_desk/internal/controllers"
	"nagorik_desk/internal/middleware"
	"nagorik_desk/internal/models"

	"github.com/gin-gonic/gin"
)

// AdminRoutes covers the admin-facing aggregation views: sector admins read
// the problem summaries, government admins read priorities and trends.
func AdminRoutes(r *gin.Engine) {
	r.GET("/api/summaries/sector",
		middleware.RequireRole(models.RoleSectorAdmin), controllers.ListSectorSummaries)

	govt := middleware.RequireRole(models.RoleGovtAdmin)
	r.GET("/api/priorities", govt, controllers.ListPriorities)
	r.GET("/api/trends", govt, controllers.ListTrends)
}
