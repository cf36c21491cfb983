package property_controller

import (
	"log"
	"net/http"

	snapshot_cache "github.com/StayTrack-Labs/staytrack-backend/cache"
	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/controllers/booking_controller"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateProperty godoc
// @Summary Create a property
// @Description Creates a property under an existing area; optional seed_bookings pre-fill calendar days, applied one at a time
// @Tags Properties
// @Accept json
// @Produce json
// @Param body body models.PropertyRequest true "Property"
// @Success 201 {object} models.ApiResponse{data=models.Property}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /properties [post]
func CreateProperty(c *gin.Context) {
	var input models.PropertyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	db := config.Gorm.WithContext(ctx)

	// Area must exist before anything is written
	var area models.Area
	if err := db.First(&area, "id = ?", input.AreaID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Area not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	property := models.Property{
		AreaID:         input.AreaID,
		Name:           input.Name,
		AirbnbLink:     input.AirbnbLink,
		AvgPricePerDay: input.AvgPricePerDay,
		Description:    input.Description,
		Bedrooms:       input.Bedrooms,
		PropertyType:   input.PropertyType,
		IsSuperhost:    input.IsSuperhost,
	}
	if err := db.Create(&property).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create property"))
		return
	}

	// Seed days are serialized: one upsert at a time, in request order. A
	// failure stops the sequence but keeps the property and the days already
	// written.
	for _, day := range input.SeedBookings {
		if _, err := booking_controller.Upsert(db, property.ID, day); err != nil {
			log.Printf("[property.create] ERROR seeding day=%s property=%s err=%v", day.Date, property.ID, err)
			snapshot_cache.Invalidate()
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Property created but seeding bookings failed at "+day.Date))
			return
		}
	}

	snapshot_cache.Invalidate()
	log.Printf("[property.create] created property=%s area=%s seeded=%d", property.ID, area.ID, len(input.SeedBookings))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Property created successfully", property))
}
