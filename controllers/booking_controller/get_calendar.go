package booking_controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/StayTrack-Labs/staytrack-backend/analytics"
	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCalendar godoc
// @Summary Month calendar for a property
// @Description Returns every day of the month; days without a booking row are filled in as available at the property's default rate
// @Tags Bookings
// @Produce json
// @Param id path string true "Property ID"
// @Param month query string false "Month (YYYY-MM, default current)"
// @Success 200 {object} models.ApiResponse{data=[]models.CalendarDay}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /properties/{id}/calendar [get]
func GetCalendar(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid property ID"))
		return
	}

	month := time.Now().UTC()
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid month, expected YYYY-MM"))
			return
		}
		month = parsed
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	db := config.Gorm.WithContext(ctx)

	var property models.Property
	if err := db.First(&property, "id = ?", propertyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Property not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	monthPrefix := month.Format("2006-01")
	var rows []models.Booking
	if err := db.Where("property_id = ? AND date LIKE ?", propertyID, monthPrefix+"-%").
		Order("date asc").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch bookings"))
		return
	}

	byDate := make(map[string]models.Booking, len(rows))
	for _, b := range rows {
		byDate[b.Date] = b
	}

	days := analytics.DaysInMonth(month)
	grid := make([]models.CalendarDay, 0, days)
	for day := 1; day <= days; day++ {
		date := fmt.Sprintf("%s-%02d", monthPrefix, day)
		if b, ok := byDate[date]; ok {
			grid = append(grid, models.CalendarDay{
				Date:     date,
				Status:   b.Status,
				Price:    b.Price,
				Notes:    b.Notes,
				Explicit: true,
			})
			continue
		}
		grid = append(grid, models.CalendarDay{
			Date:   date,
			Status: models.BookingStatusAvailable,
			Price:  property.AvgPricePerDay,
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Calendar retrieved successfully", grid))
}
