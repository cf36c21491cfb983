package middleware

import (
	"net/http"
	"strings"

	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/StayTrack-Labs/staytrack-backend/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the session JWT from cookie or Authorization
// header. Sessions are issued by the access-code login; there is no per-user
// identity behind them.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Try to get token from cookie first
		cookieToken, err := c.Cookie("auth_token")
		if err == nil && cookieToken != "" {
			token = cookieToken
		} else {
			// Fallback to Authorization header
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
				c.Abort()
				return
			}
			token = parts[1]
		}

		claims, err := services.GetJWTService().VerifySessionJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired session"))
			c.Abort()
			return
		}

		c.Set("sessionID", claims.SessionID)
		c.Next()
	}
}
