package area_controller

import (
	"net/http"

	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
)

// GetAreas godoc
// @Summary List areas
// @Description Returns all areas in insertion order
// @Tags Areas
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Area}
// @Failure 500 {object} models.ApiResponse
// @Router /areas [get]
func GetAreas(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var areas []models.Area
	if err := config.Gorm.WithContext(ctx).Order("created_at asc").Find(&areas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch areas"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Areas retrieved successfully", areas))
}
