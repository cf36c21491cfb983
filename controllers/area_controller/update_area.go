package area_controller

import (
	"net/http"

	snapshot_cache "github.com/StayTrack-Labs/staytrack-backend/cache"
	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateArea godoc
// @Summary Update an area
// @Description Partial patch: only provided fields change
// @Tags Areas
// @Accept json
// @Produce json
// @Param id path string true "Area ID"
// @Param body body models.UpdateAreaRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.Area}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /areas/{id} [patch]
func UpdateArea(c *gin.Context) {
	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid area ID"))
		return
	}

	var input models.UpdateAreaRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.Area
	if err := config.Gorm.WithContext(ctx).First(&existing, "id = ?", areaID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Area not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		if *input.Name == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name cannot be empty"))
			return
		}
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No changes detected", existing))
		return
	}

	if err := config.Gorm.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update area"))
		return
	}

	// Reload to get fresh updated_at
	if err := config.Gorm.WithContext(ctx).First(&existing, "id = ?", areaID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload area"))
		return
	}

	snapshot_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Area updated successfully", existing))
}
