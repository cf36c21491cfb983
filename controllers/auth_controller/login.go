package auth_controller

import (
	"crypto/subtle"
	"log"
	"net/http"
	"os"

	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/StayTrack-Labs/staytrack-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Login godoc
// @Summary Log in with the shared access code
// @Description Compares the submitted code against the configured access code and issues a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Access code"
// @Success 200 {object} models.ApiResponse{data=models.LoginResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var input models.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Access code is required"))
		return
	}

	if !accessCodeValid(input.AccessCode) {
		log.Printf("[auth.login] rejected access code from %s", c.ClientIP())
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid access code"))
		return
	}

	sessionID := uuid.Must(uuid.NewV7()).String()
	token, err := services.GetJWTService().GenerateSessionJWT(sessionID)
	if err != nil {
		log.Printf("[auth.login] ERROR generating session token err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
		return
	}

	maxAge := int(services.SessionTTL.Seconds())
	c.SetCookie("auth_token", token, maxAge, "/", "", false, true)

	log.Printf("[auth.login] session issued session_id=%s", sessionID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Authenticated successfully", models.LoginResponse{
		Token:     token,
		ExpiresIn: maxAge,
	}))
}

// accessCodeValid checks the code against ACCESS_CODE_HASH (bcrypt) when set,
// otherwise against ACCESS_CODE in constant time.
func accessCodeValid(code string) bool {
	if hash := os.Getenv("ACCESS_CODE_HASH"); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
	}
	expected := os.Getenv("ACCESS_CODE")
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(code)) == 1
}
