package property_controller

import (
	"net/http"

	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPropertyByID godoc
// @Summary Get a property
// @Tags Properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} models.ApiResponse{data=models.Property}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /properties/{id} [get]
func GetPropertyByID(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid property ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var property models.Property
	if err := config.Gorm.WithContext(ctx).First(&property, "id = ?", propertyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Property not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Property retrieved successfully", property))
}
