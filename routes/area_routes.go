package routes

import (
	"github.com/StayTrack-Labs/staytrack-backend/controllers/area_controller"
	"github.com/gin-gonic/gin"
)

func SetupAreaRoutes(rg *gin.RouterGroup) {
	area := rg.Group("/areas")

	area.GET("", area_controller.GetAreas)
	area.GET("/stats", area_controller.GetAreaStats)
	area.GET("/:id", area_controller.GetAreaByID)

	area.POST("", area_controller.CreateArea)
	area.PATCH("/:id", area_controller.UpdateArea)
	area.POST("/:id/image", area_controller.UploadAreaImage)

	// No plain DELETE: callers must pick cascade or move explicitly
	area.POST("/:id/delete-with-options", area_controller.DeleteAreaWithOptions)
}
