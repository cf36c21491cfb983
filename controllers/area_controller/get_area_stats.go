package area_controller

import (
	"log"
	"net/http"

	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
)

// GetAreaStats godoc
// @Summary Tracker-wide counts
// @Description Returns area/property/booking counts for the settings screen
// @Tags Areas
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.AreaStats}
// @Failure 500 {object} models.ApiResponse
// @Router /areas/stats [get]
func GetAreaStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var stats models.AreaStats
	err := config.DB.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM areas),
			(SELECT COUNT(*) FROM properties),
			(SELECT COUNT(*) FROM bookings),
			(SELECT COUNT(*) FROM bookings WHERE status = 'booked')
	`).Scan(&stats.TotalAreas, &stats.TotalProperties, &stats.TotalBookingRows, &stats.BookedNights)
	if err != nil {
		log.Printf("[area.stats] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}

	if stats.TotalBookingRows > 0 {
		stats.BookedSharePercent = float64(stats.BookedNights) / float64(stats.TotalBookingRows) * 100
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stats retrieved successfully", stats))
}
