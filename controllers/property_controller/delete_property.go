package property_controller

import (
	"log"
	"net/http"

	snapshot_cache "github.com/StayTrack-Labs/staytrack-backend/cache"
	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeleteProperty godoc
// @Summary Delete a property
// @Description Deletes the property and all of its booking rows
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /properties/{id} [delete]
func DeleteProperty(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid property ID"))
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

	if err := db.Where("property_id = ?", propertyID).Delete(&models.Booking{}).Error; err != nil {
		log.Printf("[property.delete] ERROR deleting bookings property=%s err=%v", propertyID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete property bookings"))
		return
	}
	if err := db.Delete(&property).Error; err != nil {
		log.Printf("[property.delete] ERROR deleting property=%s err=%v", propertyID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete property"))
		snapshot_cache.Invalidate()
		return
	}

	snapshot_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Property and its bookings deleted successfully", nil))
}
