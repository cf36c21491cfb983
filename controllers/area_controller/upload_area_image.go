package area_controller

import (
	"fmt"
	"log"
	"net/http"

	snapshot_cache "github.com/StayTrack-Labs/staytrack-backend/cache"
	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/StayTrack-Labs/staytrack-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var cloudinaryService *services.CloudinaryService

// InitCloudinary wires the upload service; called once from main
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	svc, err := services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	if err != nil {
		return fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	cloudinaryService = svc
	return nil
}

// UploadAreaImage godoc
// @Summary Upload an area cover image
// @Description Uploads the image to Cloudinary and stores the secure URL on the area
// @Tags Areas
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Area ID"
// @Param image formData file true "Cover image"
// @Success 200 {object} models.ApiResponse{data=models.Area}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /areas/{id}/image [post]
func UploadAreaImage(c *gin.Context) {
	areaID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid area ID"))
		return
	}
	if cloudinaryService == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image uploads are not configured"))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Image file is required"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read image file"))
		return
	}
	defer file.Close()

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

	url, err := cloudinaryService.UploadImage(ctx, file, areaID.String(), "staytrack/areas")
	if err != nil {
		log.Printf("[area.upload-image] ERROR upload area=%s err=%v", areaID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload image"))
		return
	}

	if err := config.Gorm.WithContext(ctx).Model(&area).Update("image_url", url).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save image URL"))
		return
	}
	area.ImageURL = url

	snapshot_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image uploaded successfully", area))
}
