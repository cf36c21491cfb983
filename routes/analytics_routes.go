package routes

import (
	"github.com/StayTrack-Labs/staytrack-backend/controllers/analytics_controller"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")

	analytics.GET("/summary", analytics_controller.GetSummary)
	analytics.GET("/city-comparison", analytics_controller.GetCityComparison)
	analytics.GET("/revenue-trend", analytics_controller.GetRevenueTrend)
	analytics.GET("/occupancy-heatmap", analytics_controller.GetOccupancyHeatmap)
	analytics.GET("/property-performance", analytics_controller.GetPropertyPerformance)
	analytics.GET("/export", analytics_controller.ExportCSV)
	analytics.GET("/report", analytics_controller.DownloadReportPDF)
	analytics.POST("/report/email", analytics_controller.SendReportEmail)
}
