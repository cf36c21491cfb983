package auth_controller

import (
	"net/http"

	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
