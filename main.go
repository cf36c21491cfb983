// @title StayTrack API
// @version 1.0
// @description Short-term-rental performance tracker backend
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/controllers/area_controller"
	"github.com/StayTrack-Labs/staytrack-backend/middleware"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/StayTrack-Labs/staytrack-backend/routes"
	"github.com/StayTrack-Labs/staytrack-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()
	// Redis connection
	config.ConnectRedis()

	if err := config.Gorm.AutoMigrate(&models.Area{}, &models.Property{}, &models.Booking{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	// Cloudinary is optional: without it, area image uploads return 503
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName != "" {
		if err := area_controller.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
			log.Fatalf("failed to initialize Cloudinary: %v", err)
		}
		log.Println("Cloudinary initialized")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("failed to initialize JWT service: %v", err)
	}

	if os.Getenv("ACCESS_CODE") == "" && os.Getenv("ACCESS_CODE_HASH") == "" {
		log.Fatal("ACCESS_CODE or ACCESS_CODE_HASH environment variable not set")
	}

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		// Expose these headers for CSV/PDF downloads
		ExposeHeaders: []string{"Content-Disposition", "Content-Length", "X-Sort-By", "X-Sort-Order"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")

	// Login gate is public; everything else needs a session
	routes.SetupAuthRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	protected.Use(middleware.RateLimiter(100, time.Minute))
	routes.SetupAreaRoutes(protected)
	routes.SetupPropertyRoutes(protected)
	routes.SetupAnalyticsRoutes(protected)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Server is running on http://localhost:%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
