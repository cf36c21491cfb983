package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/StayTrack-Labs/staytrack-backend/analytics"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/StayTrack-Labs/staytrack-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SendReportEmailRequest selects the month, city filter and recipient
type SendReportEmailRequest struct {
	Recipient string     `json:"recipient" binding:"required,email"`
	Month     string     `json:"month" binding:"omitempty,datetime=2006-01"`
	AreaID    *uuid.UUID `json:"area_id,omitempty"`
}

// SendReportEmail godoc
// @Summary Email the monthly report
// @Description Generates the monthly report PDF and sends it to the recipient via Resend
// @Tags Analytics
// @Accept json
// @Produce json
// @Param body body SendReportEmailRequest true "Recipient and month"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /analytics/report/email [post]
func SendReportEmail(c *gin.Context) {
	var input SendReportEmailRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	month := time.Now().UTC()
	if input.Month != "" {
		parsed, err := time.Parse("2006-01", input.Month)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid month, expected YYYY-MM"))
			return
		}
		month = parsed
	}

	snap, err := loadSnapshot()
	if err != nil {
		log.Printf("[analytics.report-email] ERROR loading snapshot err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load analytics data"))
		return
	}

	cityLabel := "All Cities"
	if input.AreaID != nil {
		for _, a := range snap.Areas {
			if a.ID == *input.AreaID {
				cityLabel = a.Name
				break
			}
		}
	}

	summary := analytics.CalculateCityAnalytics(snap.Properties, snap.Bookings, input.AreaID, month)
	comparison := analytics.CalculateCityComparison(snap.Areas, snap.Properties, snap.Bookings, month)

	buf, err := generateMonthlyReportPDF(month, cityLabel, summary, comparison)
	if err != nil {
		log.Printf("[analytics.report-email] ERROR generating PDF err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate report"))
		return
	}

	client, err := services.NewResendClient()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Email sending is not configured"))
		return
	}
	if err := client.SendMonthlyReportEmail(services.MonthlyReportEmailData{
		Recipient:  input.Recipient,
		MonthLabel: month.Format("January 2006"),
		CityLabel:  cityLabel,
		Summary:    summary,
		PDFContent: buf.Bytes(),
	}); err != nil {
		log.Printf("[analytics.report-email] ERROR sending email err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send report email"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Report emailed successfully", nil))
}
