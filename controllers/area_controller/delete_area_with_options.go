package area_controller

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

// DeleteAreaWithOptions godoc
// @Summary Delete an area with options
// @Description Delete an area and either cascade delete its properties (with their bookings) or move them to another area first
// @Tags Areas
// @Accept json
// @Produce json
// @Param id path string true "Area ID"
// @Param body body models.DeleteAreaOptions true "Delete options"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /areas/{id}/delete-with-options [post]
//
// The move flow runs as independent per-property updates followed by the
// area delete, with no wrapping transaction: a mid-sequence failure leaves
// already-moved properties moved. That matches the tracker's accepted
// best-effort contract for this flow.
func DeleteAreaWithOptions(c *gin.Context) {
	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid area ID"))
		return
	}

	var input models.DeleteAreaOptions
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: mode must be 'cascade' or 'move'"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	db := config.Gorm.WithContext(ctx)

	var area models.Area
	if err := db.First(&area, "id = ?", areaID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Area not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	var children []models.Property
	if err := db.Where("area_id = ?", areaID).Find(&children).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load area properties"))
		return
	}

	switch input.Mode {
	case "cascade":
		for _, child := range children {
			if err := db.Where("property_id = ?", child.ID).Delete(&models.Booking{}).Error; err != nil {
				log.Printf("[area.delete-with-options] ERROR deleting bookings property=%s err=%v", child.ID, err)
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete property bookings"))
				return
			}
		}
		if err := db.Where("area_id = ?", areaID).Delete(&models.Property{}).Error; err != nil {
			log.Printf("[area.delete-with-options] ERROR deleting properties area=%s err=%v", areaID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete area properties"))
			return
		}

	case "move":
		if input.TargetAreaID == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "target_area_id is required for move"))
			return
		}
		if *input.TargetAreaID == areaID {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cannot move properties to the area being deleted"))
			return
		}

		var target models.Area
		if err := db.First(&target, "id = ?", *input.TargetAreaID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Target area not found"))
			} else {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			}
			return
		}

		// One update per property; bookings keep their property_id untouched.
		for _, child := range children {
			if err := db.Model(&models.Property{}).
				Where("id = ?", child.ID).
				Update("area_id", *input.TargetAreaID).Error; err != nil {
				log.Printf("[area.delete-with-options] ERROR moving property=%s to=%s err=%v", child.ID, target.ID, err)
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to move area properties"))
				snapshot_cache.Invalidate()
				return
			}
		}
	}

	if err := db.Delete(&area).Error; err != nil {
		log.Printf("[area.delete-with-options] ERROR deleting area=%s err=%v", areaID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete area"))
		snapshot_cache.Invalidate()
		return
	}

	snapshot_cache.Invalidate()

	message := "Area and its properties deleted successfully"
	if input.Mode == "move" {
		message = "Area deleted and properties moved successfully"
	}
	log.Printf("[area.delete-with-options] done area=%s mode=%s properties=%d", areaID, input.Mode, len(children))
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, nil))
}
