package property_controller

import (
	"net/http"

	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetProperties godoc
// @Summary List properties
// @Description Returns all properties in insertion order, optionally filtered by area
// @Tags Properties
// @Produce json
// @Param area_id query string false "Area ID filter"
// @Success 200 {object} models.ApiResponse{data=[]models.Property}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /properties [get]
func GetProperties(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()
	query := config.Gorm.WithContext(ctx).Order("created_at asc")

	if raw := c.Query("area_id"); raw != "" {
		areaID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid area_id"))
			return
		}
		query = query.Where("area_id = ?", areaID)
	}

	var properties []models.Property
	if err := query.Find(&properties).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch properties"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Properties retrieved successfully", properties))
}
