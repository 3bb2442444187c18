package routes

import (
	"nagorik_desk/internal/controllers"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.GET("/verify-nid", controllers.VerifyNid)
		auth.POST("/register/complete", controllers.CompleteRegistration)
		auth.POST("/login", controllers.LoginUser)
	}
}
