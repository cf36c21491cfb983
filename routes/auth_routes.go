package routes

import (
	"github.com/StayTrack-Labs/staytrack-backend/controllers/auth_controller"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")

	auth.POST("/login", auth_controller.Login)
	auth.POST("/logout", auth_controller.Logout)
}
