package routes

import (
	"github.com/StayTrack-Labs/staytrack-backend/controllers/booking_controller"
	"github.com/StayTrack-Labs/staytrack-backend/controllers/property_controller"
	"github.com/gin-gonic/gin"
)

func SetupPropertyRoutes(rg *gin.RouterGroup) {
	property := rg.Group("/properties")

	property.GET("", property_controller.GetProperties)
	property.GET("/:id", property_controller.GetPropertyByID)

	property.POST("", property_controller.CreateProperty)
	property.PATCH("/:id", property_controller.UpdateProperty)
	property.DELETE("/:id", property_controller.DeleteProperty)

	// Calendar state lives under the owning property
	property.GET("/:id/calendar", booking_controller.GetCalendar)
	property.PUT("/:id/bookings", booking_controller.UpsertBooking)
	property.POST("/:id/bookings/:date/toggle", booking_controller.ToggleBooking)
}
