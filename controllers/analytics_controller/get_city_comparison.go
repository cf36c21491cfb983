package analytics_controller

import (
	"log"
	"net/http"

	"github.com/StayTrack-Labs/staytrack-backend/analytics"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCityComparison godoc
// @Summary Cross-city comparison
// @Description Returns one metrics row per area for the month, in insertion order, ignoring any single-city filter
// @Tags Analytics
// @Produce json
// @Param month query string false "Month (YYYY-MM, default current)"
// @Success 200 {object} models.ApiResponse{data=[]models.CityMetrics}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/city-comparison [get]
func GetCityComparison(c *gin.Context) {
	month, err := parseMonth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	snap, err := loadSnapshot()
	if err != nil {
		log.Printf("[analytics.city-comparison] ERROR loading snapshot err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load analytics data"))
		return
	}

	comparison := analytics.CalculateCityComparison(snap.Areas, snap.Properties, snap.Bookings, month)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "City comparison retrieved successfully", comparison))
}
