package booking_controller

import (
	"net/http"

	snapshot_cache "github.com/StayTrack-Labs/staytrack-backend/cache"
	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Upsert writes one calendar day keyed on (property_id, date): insert when
// the key is absent, overwrite status/price/notes when it exists. This is the
// sole write path for calendar state.
func Upsert(db *gorm.DB, propertyID uuid.UUID, day models.BookingDayInput) (*models.Booking, error) {
	booking := models.Booking{
		PropertyID: propertyID,
		Date:       day.Date,
		Status:     day.Status,
		Price:      day.Price,
		Notes:      day.Notes,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "property_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "price", "notes", "updated_at"}),
	}).Create(&booking).Error; err != nil {
		return nil, err
	}

	// Re-read the canonical row: on conflict the insert's generated ID is
	// not the stored one.
	var canonical models.Booking
	if err := db.Where("property_id = ? AND date = ?", propertyID, day.Date).First(&canonical).Error; err != nil {
		return nil, err
	}
	return &canonical, nil
}

// UpsertBooking godoc
// @Summary Upsert a calendar day
// @Description Sets the status, price and notes of one property day; overwrites if the day already has a row
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param body body models.BookingDayInput true "Day state"
// @Success 200 {object} models.ApiResponse{data=models.Booking}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /properties/{id}/bookings [put]
func UpsertBooking(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid property ID"))
		return
	}

	var input models.BookingDayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
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

	booking, err := Upsert(db, propertyID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save booking"))
		return
	}

	snapshot_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Booking saved successfully", booking))
}
