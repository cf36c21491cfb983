package analytics_controller

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"

	"github.com/StayTrack-Labs/staytrack-backend/analytics"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
)

// summaryRows renders the monthly summary as label/value rows, shared by the
// CSV export and the PDF report.
func summaryRows(summary models.AnalyticsData) [][]string {
	return [][]string{
		{"Total Revenue", fmt.Sprintf("%.2f", summary.TotalRevenue)},
		{"Total Properties", fmt.Sprintf("%d", summary.TotalProperties)},
		{"Average Occupancy Rate", fmt.Sprintf("%.1f%%", summary.AverageOccupancyRate)},
		{"Average Daily Rate", fmt.Sprintf("%.2f", summary.AverageDailyRate)},
		{"Total Booked Nights", fmt.Sprintf("%d", summary.TotalBookedNights)},
		{"Month-over-Month Growth", fmt.Sprintf("%.1f%%", summary.MonthOverMonthGrowth)},
		{"Average Length of Stay", fmt.Sprintf("%.0f", summary.AverageLengthOfStay)},
		{"Properties with Bookings", fmt.Sprintf("%d", summary.PropertiesWithBookings)},
	}
}

// ExportCSV godoc
// @Summary Export the monthly summary as CSV
// @Description One-shot download of the eight summary metrics as label/value rows
// @Tags Analytics
// @Produce text/csv
// @Param area_id query string false "City filter (all cities when omitted)"
// @Param month query string false "Month (YYYY-MM, default current)"
// @Success 200 "CSV file"
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/export [get]
func ExportCSV(c *gin.Context) {
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
		log.Printf("[analytics.export] ERROR loading snapshot err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load analytics data"))
		return
	}

	summary := analytics.CalculateCityAnalytics(snap.Properties, snap.Bookings, areaID, month)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Metric", "Value"})
	for _, row := range summaryRows(summary) {
		_ = w.Write(row)
	}
	w.Flush()

	filename := fmt.Sprintf("analytics-%s.csv", month.Format("2006-01"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())

	log.Printf("[analytics.export] CSV downloaded month=%s", month.Format("2006-01"))
}
