package property_controller

import (
	"net/http"

	snapshot_cache "github.com/StayTrack-Labs/staytrack-backend/cache"
	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateProperty godoc
// @Summary Update a property
// @Description Partial patch: only provided fields change. area_id re-parents the property; its bookings follow it untouched
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param body body models.UpdatePropertyRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Property}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /properties/{id} [patch]
func UpdateProperty(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid property ID"))
		return
	}

	var input models.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	db := config.Gorm.WithContext(ctx)

	var existing models.Property
	if err := db.First(&existing, "id = ?", propertyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Property not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	updates := map[string]interface{}{}

	if input.AreaID != nil {
		var target models.Area
		if err := db.First(&target, "id = ?", *input.AreaID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Target area not found"))
			} else {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			}
			return
		}
		updates["area_id"] = *input.AreaID
	}
	if input.Name != nil {
		if *input.Name == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name cannot be empty"))
			return
		}
		updates["name"] = *input.Name
	}
	if input.AirbnbLink != nil {
		updates["airbnb_link"] = *input.AirbnbLink
	}
	if input.AvgPricePerDay != nil {
		updates["avg_price_per_day"] = *input.AvgPricePerDay
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Bedrooms != nil {
		updates["bedrooms"] = *input.Bedrooms
	}
	if input.PropertyType != nil {
		updates["property_type"] = *input.PropertyType
	}
	if input.IsSuperhost != nil {
		updates["is_superhost"] = *input.IsSuperhost
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No changes detected", existing))
		return
	}

	if err := db.Model(&existing).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update property"))
		return
	}
	if err := db.First(&existing, "id = ?", propertyID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload property"))
		return
	}

	snapshot_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Property updated successfully", existing))
}
