package area_controller

import (
	"net/http"

	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAreaByID godoc
// @Summary Get an area
// @Tags Areas
// @Produce json
// @Param id path string true "Area ID"
// @Success 200 {object} models.ApiResponse{data=models.Area}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /areas/{id} [get]
func GetAreaByID(c *gin.Context) {
	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid area ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var area models.Area
	if err := config.Gorm.WithContext(ctx).First(&area, "id = ?", areaID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Area not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Area retrieved successfully", area))
}
