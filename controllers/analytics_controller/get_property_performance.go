package analytics_controller

import (
	"log"
	"net/http"

	"github.com/StayTrack-Labs/staytrack-backend/analytics"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
)

// GetPropertyPerformance godoc
// @Summary Per-property performance table
// @Description Returns per-property month metrics, sorted. Passing toggle=<column> resolves the header-click contract against sort_by/order: the active column flips direction, a new column starts descending
// @Tags Analytics
// @Produce json
// @Param area_id query string false "City filter (all cities when omitted)"
// @Param month query string false "Month (YYYY-MM, default current)"
// @Param sort_by query string false "Sort column: revenue|occupancy|rate (default revenue)"
// @Param order query string false "Sort order: asc|desc (default desc)"
// @Param toggle query string false "Column header that was clicked"
// @Success 200 {object} models.ApiResponse{data=[]models.PropertyPerformanceRow}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/property-performance [get]
func GetPropertyPerformance(c *gin.Context) {
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

	sortBy := analytics.SortKey(c.DefaultQuery("sort_by", string(analytics.SortByRevenue)))
	if !analytics.ValidSortKey(string(sortBy)) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid sort_by, expected revenue, occupancy or rate"))
		return
	}
	order := analytics.SortOrder(c.DefaultQuery("order", string(analytics.SortDesc)))
	if order != analytics.SortAsc && order != analytics.SortDesc {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order, expected asc or desc"))
		return
	}
	if clicked := c.Query("toggle"); clicked != "" {
		if !analytics.ValidSortKey(clicked) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid toggle column"))
			return
		}
		sortBy, order = analytics.NextSort(sortBy, order, analytics.SortKey(clicked))
	}

	snap, err := loadSnapshot()
	if err != nil {
		log.Printf("[analytics.property-performance] ERROR loading snapshot err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load analytics data"))
		return
	}

	rows := analytics.PropertyPerformance(snap.Properties, snap.Bookings, areaID, month)
	analytics.SortPerformance(rows, sortBy, order)

	c.Header("X-Sort-By", string(sortBy))
	c.Header("X-Sort-Order", string(order))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Property performance retrieved successfully", rows))
}
