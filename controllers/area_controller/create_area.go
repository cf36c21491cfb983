package area_controller

import (
	"net/http"

	snapshot_cache "github.com/StayTrack-Labs/staytrack-backend/cache"
	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
)

// CreateArea godoc
// @Summary Create an area
// @Description Create a new city-level area
// @Tags Areas
// @Accept json
// @Produce json
// @Param body body models.AreaRequest true "Area"
// @Success 201 {object} models.ApiResponse{data=models.Area}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /areas [post]
func CreateArea(c *gin.Context) {
	var input models.AreaRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	area := models.Area{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	if err := config.Gorm.WithContext(ctx).Create(&area).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create area"))
		return
	}

	snapshot_cache.Invalidate()
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Area created successfully", area))
}
