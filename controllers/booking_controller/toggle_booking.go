package booking_controller

import (
	"net/http"
	"time"

	snapshot_cache "github.com/StayTrack-Labs/staytrack-backend/cache"
	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ToggleBooking godoc
// @Summary Toggle a calendar day
// @Description Cycles a day between booked and available; a day with no row counts as available and toggles to booked at the property's default rate
// @Tags Bookings
// @Produce json
// @Param id path string true "Property ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=models.Booking}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /properties/{id}/bookings/{date}/toggle [post]
func ToggleBooking(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid property ID"))
		return
	}
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid date, expected YYYY-MM-DD"))
		return
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

	// Next value in the booked/available cycle. An absent row is an implicit
	// available day at the default rate.
	day := models.BookingDayInput{
		Date:   date,
		Status: models.BookingStatusBooked,
		Price:  property.AvgPricePerDay,
	}
	var existing models.Booking
	err = db.Where("property_id = ? AND date = ?", propertyID, date).First(&existing).Error
	switch {
	case err == nil:
		if existing.Status == models.BookingStatusBooked {
			day.Status = models.BookingStatusAvailable
		}
		if existing.Price > 0 {
			day.Price = existing.Price
		}
		day.Notes = existing.Notes
	case err == gorm.ErrRecordNotFound:
		// keep defaults
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	booking, err := Upsert(db, propertyID, day)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to toggle booking"))
		return
	}

	snapshot_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Booking toggled successfully", booking))
}
