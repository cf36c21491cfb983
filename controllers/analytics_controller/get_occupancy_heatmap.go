package analytics_controller

import (
	"log"
	"net/http"

	"github.com/StayTrack-Labs/staytrack-backend/analytics"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
)

// GetOccupancyHeatmap godoc
// @Summary Daily occupancy heatmap
// @Description Returns one occupancy record per day of the month under the city filter
// @Tags Analytics
// @Produce json
// @Param area_id query string false "City filter (all cities when omitted)"
// @Param month query string false "Month (YYYY-MM, default current)"
// @Success 200 {object} models.ApiResponse{data=[]models.HeatmapDay}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/occupancy-heatmap [get]
func GetOccupancyHeatmap(c *gin.Context) {
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
		log.Printf("[analytics.occupancy-heatmap] ERROR loading snapshot err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load analytics data"))
		return
	}

	heatmap := analytics.OccupancyHeatmapData(snap.Properties, snap.Bookings, areaID, month)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Occupancy heatmap retrieved successfully", heatmap))
}
