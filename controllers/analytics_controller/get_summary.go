package analytics_controller

import (
	"log"
	"net/http"

	"github.com/StayTrack-Labs/staytrack-backend/analytics"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
)

// GetSummary godoc
// @Summary Monthly summary metrics
// @Description Returns the single-month summary for the dashboard cards
// @Tags Analytics
// @Produce json
// @Param area_id query string false "City filter (all cities when omitted)"
// @Param month query string false "Month (YYYY-MM, default current)"
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsData}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/summary [get]
func GetSummary(c *gin.Context) {
	month, err := parseMonth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}
	areaID, err := parseAreaID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	snap, err := loadSnapshot()
	if err != nil {
		log.Printf("[analytics.summary] ERROR loading snapshot err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load analytics data"))
		return
	}

	summary := analytics.CalculateCityAnalytics(snap.Properties, snap.Bookings, areaID, month)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Summary retrieved successfully", summary))
}
