// Package analytics folds the in-memory area/property/booking collections
// into the monthly metrics the dashboard renders. Every function is pure and
// total: inputs are read-only slices, all divisions are guarded, and nothing
// here touches the database.
package analytics

import (
	"fmt"
	"time"

	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/google/uuid"
)

// DaysInMonth returns the number of calendar days in ref's month.
func DaysInMonth(ref time.Time) int {
	return time.Date(ref.Year(), ref.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfMonth truncates ref to the first day of its month. Month arithmetic
// always starts from here so that walking backward from e.g. March 31 cannot
// normalize into the wrong month.
func StartOfMonth(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// inMonth reports whether a YYYY-MM-DD booking date falls in ref's calendar
// month. The comparison is structured (year+month), not a string prefix
// match; malformed dates never match any month.
func inMonth(date string, ref time.Time) bool {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return false
	}
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}

func filterProperties(properties []models.Property, areaID *uuid.UUID) []models.Property {
	if areaID == nil {
		return properties
	}
	out := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if p.AreaID == *areaID {
			out = append(out, p)
		}
	}
	return out
}

func propertySet(properties []models.Property) map[uuid.UUID]struct{} {
	ids := make(map[uuid.UUID]struct{}, len(properties))
	for _, p := range properties {
		ids[p.ID] = struct{}{}
	}
	return ids
}

// monthRevenue scans the bookings once and returns the booked revenue, the
// booked-night count, and the distinct booked properties for ref's month,
// restricted to the given property set.
func monthRevenue(bookings []models.Booking, ids map[uuid.UUID]struct{}, ref time.Time) (float64, int, map[uuid.UUID]struct{}) {
	revenue := 0.0
	nights := 0
	booked := make(map[uuid.UUID]struct{})
	for _, b := range bookings {
		if b.Status != models.BookingStatusBooked {
			continue
		}
		if _, ok := ids[b.PropertyID]; !ok {
			continue
		}
		if !inMonth(b.Date, ref) {
			continue
		}
		revenue += b.Price
		nights++
		booked[b.PropertyID] = struct{}{}
	}
	return revenue, nights, booked
}

// CalculateCityAnalytics computes the single-month summary for the given city
// filter (nil = all cities) and reference month (any instant within it).
//
// Month-over-month growth is 0 whenever the previous month had zero revenue,
// even if the current month is positive. RevPAR is reserved and always 0.
func CalculateCityAnalytics(properties []models.Property, bookings []models.Booking, areaID *uuid.UUID, month time.Time) models.AnalyticsData {
	selected := filterProperties(properties, areaID)
	ids := propertySet(selected)
	days := DaysInMonth(month)

	revenue, bookedNights, bookedProps := monthRevenue(bookings, ids, month)

	occupancy := 0.0
	if available := len(selected) * days; available > 0 {
		occupancy = float64(bookedNights) / float64(available) * 100
	}

	adr := 0.0
	if bookedNights > 0 {
		adr = revenue / float64(bookedNights)
	}

	prevRevenue, _, _ := monthRevenue(bookings, ids, StartOfMonth(month).AddDate(0, -1, 0))
	growth := 0.0
	if prevRevenue > 0 {
		growth = (revenue - prevRevenue) / prevRevenue * 100
	}

	return models.AnalyticsData{
		TotalRevenue:           revenue,
		TotalProperties:        len(selected),
		AverageOccupancyRate:   occupancy,
		AverageDailyRate:       adr,
		RevPAR:                 0,
		TotalBookedNights:      bookedNights,
		MonthOverMonthGrowth:   growth,
		AverageLengthOfStay:    1,
		PropertiesWithBookings: len(bookedProps),
	}
}

// CalculateCityComparison computes one metrics row per area for the reference
// month, in the input collection's order, ignoring any single-city filter.
func CalculateCityComparison(areas []models.Area, properties []models.Property, bookings []models.Booking, month time.Time) []models.CityMetrics {
	days := DaysInMonth(month)
	out := make([]models.CityMetrics, 0, len(areas))
	for _, area := range areas {
		areaID := area.ID
		selected := filterProperties(properties, &areaID)
		revenue, bookedNights, _ := monthRevenue(bookings, propertySet(selected), month)

		occupancy := 0.0
		if available := len(selected) * days; available > 0 {
			occupancy = float64(bookedNights) / float64(available) * 100
		}
		adr := 0.0
		if bookedNights > 0 {
			adr = revenue / float64(bookedNights)
		}

		out = append(out, models.CityMetrics{
			CityID:           area.ID,
			CityName:         area.Name,
			Revenue:          revenue,
			Properties:       len(selected),
			OccupancyRate:    occupancy,
			AverageDailyRate: adr,
			BookedNights:     bookedNights,
		})
	}
	return out
}

// RevenueChartData returns exactly 12 points, one per calendar month, ending
// at the reference month and walking backward 11 months. Months with no
// bookings yield revenue 0.
func RevenueChartData(properties []models.Property, bookings []models.Booking, areaID *uuid.UUID, month time.Time) []models.MonthlyRevenuePoint {
	ids := propertySet(filterProperties(properties, areaID))
	first := StartOfMonth(month)

	out := make([]models.MonthlyRevenuePoint, 0, 12)
	for i := 11; i >= 0; i-- {
		m := first.AddDate(0, -i, 0)
		revenue, _, _ := monthRevenue(bookings, ids, m)
		out = append(out, models.MonthlyRevenuePoint{
			Month:   m.Format("Jan 2006"),
			Revenue: revenue,
		})
	}
	return out
}

// OccupancyHeatmapData returns one record per day of the reference month.
// Occupancy is the share of selected properties with a booked night on that
// exact date; 0 when the filter selects no properties.
func OccupancyHeatmapData(properties []models.Property, bookings []models.Booking, areaID *uuid.UUID, month time.Time) []models.HeatmapDay {
	selected := filterProperties(properties, areaID)
	ids := propertySet(selected)
	days := DaysInMonth(month)

	// (property, date) is unique, so counting booked rows per date counts
	// booked properties.
	bookedByDate := make(map[string]int)
	for _, b := range bookings {
		if b.Status != models.BookingStatusBooked {
			continue
		}
		if _, ok := ids[b.PropertyID]; !ok {
			continue
		}
		bookedByDate[b.Date]++
	}

	out := make([]models.HeatmapDay, 0, days)
	for day := 1; day <= days; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", month.Year(), int(month.Month()), day)
		booked := bookedByDate[date]
		rate := 0.0
		if len(selected) > 0 {
			rate = float64(booked) / float64(len(selected)) * 100
		}
		out = append(out, models.HeatmapDay{
			Day:              day,
			Date:             date,
			OccupancyRate:    rate,
			BookedProperties: booked,
			TotalProperties:  len(selected),
		})
	}
	return out
}

// PropertyPerformance computes the per-property table for the reference
// month under the city filter. Rows come back in property collection order;
// use SortPerformance to order them.
func PropertyPerformance(properties []models.Property, bookings []models.Booking, areaID *uuid.UUID, month time.Time) []models.PropertyPerformanceRow {
	selected := filterProperties(properties, areaID)
	days := DaysInMonth(month)

	revenueByProp := make(map[uuid.UUID]float64, len(selected))
	nightsByProp := make(map[uuid.UUID]int, len(selected))
	ids := propertySet(selected)
	for _, b := range bookings {
		if b.Status != models.BookingStatusBooked {
			continue
		}
		if _, ok := ids[b.PropertyID]; !ok {
			continue
		}
		if !inMonth(b.Date, month) {
			continue
		}
		revenueByProp[b.PropertyID] += b.Price
		nightsByProp[b.PropertyID]++
	}

	out := make([]models.PropertyPerformanceRow, 0, len(selected))
	for _, p := range selected {
		revenue := revenueByProp[p.ID]
		nights := nightsByProp[p.ID]
		avgRate := 0.0
		if nights > 0 {
			avgRate = revenue / float64(nights)
		}
		out = append(out, models.PropertyPerformanceRow{
			PropertyID:    p.ID,
			PropertyName:  p.Name,
			AreaID:        p.AreaID,
			AirbnbLink:    p.AirbnbLink,
			Revenue:       revenue,
			BookedNights:  nights,
			OccupancyRate: float64(nights) / float64(days) * 100,
			AverageRate:   avgRate,
		})
	}
	return out
}
