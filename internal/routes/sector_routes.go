package routes

import (
	"nagorik_desk/internal/controllers"

	"github.com/gin-gonic/gin"
)

// SectorRoutes exposes the read-only classification tree. Public: the
// registration and report forms need it before any session exists.
func SectorRoutes(r *gin.Engine) {
	sectors := r.Group("/api/sectors")
	{
		sectors.GET("", controllers.ListSectors)
		sectors.GET("/:sectorId/subsectors", controllers.ListSubsectors)
	}
}
