package analytics_controller

import (
	"log"
	"net/http"

	"github.com/StayTrack-Labs/staytrack-backend/analytics"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
)

// GetRevenueTrend godoc
// @Summary 12-month revenue trend
// @Description Returns exactly 12 monthly revenue points ending at the reference month; sparse months are zero
// @Tags Analytics
// @Produce json
// @Param area_id query string false "City filter (all cities when omitted)"
// @Param month query string false "Month (YYYY-MM, default current)"
// @Success 200 {object} models.ApiResponse{data=[]models.MonthlyRevenuePoint}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/revenue-trend [get]
func GetRevenueTrend(c *gin.Context) {
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
		log.Printf("[analytics.revenue-trend] ERROR loading snapshot err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load analytics data"))
		return
	}

	trend := analytics.RevenueChartData(snap.Properties, snap.Bookings, areaID, month)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Revenue trend retrieved successfully", trend))
}
