package models

import "github.com/google/uuid"

// AnalyticsData is the single-month summary for the dashboard header cards
type AnalyticsData struct {
	TotalRevenue           float64 `json:"total_revenue"`            // Sum of booked-night prices this month
	TotalProperties        int     `json:"total_properties"`         // Properties under the active city filter
	AverageOccupancyRate   float64 `json:"average_occupancy_rate"`   // Booked nights / (properties x days) as %
	AverageDailyRate       float64 `json:"average_daily_rate"`       // Revenue / booked nights
	RevPAR                 float64 `json:"rev_par"`                  // Reserved, always 0
	TotalBookedNights      int     `json:"total_booked_nights"`      // Count of booked rows this month
	MonthOverMonthGrowth   float64 `json:"month_over_month_growth"`  // % change vs previous month, 0 when previous is 0
	AverageLengthOfStay    float64 `json:"average_length_of_stay"`   // Fixed at 1: each row is a single night
	PropertiesWithBookings int     `json:"properties_with_bookings"` // Distinct properties with a booked night
}

// CityMetrics is one row of the cross-city comparison charts
type CityMetrics struct {
	CityID           uuid.UUID `json:"city_id"`
	CityName         string    `json:"city_name"`
	Revenue          float64   `json:"revenue"`
	Properties       int       `json:"properties"`
	OccupancyRate    float64   `json:"occupancy_rate"`
	AverageDailyRate float64   `json:"average_daily_rate"`
	BookedNights     int       `json:"booked_nights"`
}

// MonthlyRevenuePoint is one point of the 12-month revenue trend
type MonthlyRevenuePoint struct {
	Month   string  `json:"month"` // Human-readable label, e.g. "Mar 2024"
	Revenue float64 `json:"revenue"`
}

// HeatmapDay is one cell of the daily occupancy heatmap
type HeatmapDay struct {
	Day              int     `json:"day"`
	Date             string  `json:"date"`
	OccupancyRate    float64 `json:"occupancy_rate"`
	BookedProperties int     `json:"booked_properties"`
	TotalProperties  int     `json:"total_properties"`
}

// PropertyPerformanceRow is one row of the per-property performance table
type PropertyPerformanceRow struct {
	PropertyID    uuid.UUID `json:"property_id"`
	PropertyName  string    `json:"property_name"`
	AreaID        uuid.UUID `json:"area_id"`
	AirbnbLink    string    `json:"airbnb_link,omitempty"`
	Revenue       float64   `json:"revenue"`
	BookedNights  int       `json:"booked_nights"`
	OccupancyRate float64   `json:"occupancy_rate"`
	AverageRate   float64   `json:"average_rate"`
}
