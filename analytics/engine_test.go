package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUUID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func bookedDay(propertyID uuid.UUID, date string, price float64) models.Booking {
	return models.Booking{
		ID:         mustUUID(),
		PropertyID: propertyID,
		Date:       date,
		Status:     models.BookingStatusBooked,
		Price:      price,
	}
}

// Two Goa properties at 3000/night, one of them booked 5 nights in March.
func goaScenario() (models.Area, []models.Property, []models.Booking) {
	area := models.Area{ID: mustUUID(), Name: "Goa"}
	p1 := models.Property{ID: mustUUID(), AreaID: area.ID, Name: "Casa Palmeira", AvgPricePerDay: 3000}
	p2 := models.Property{ID: mustUUID(), AreaID: area.ID, Name: "Vagator Cliff Villa", AvgPricePerDay: 3000}

	bookings := []models.Booking{}
	for _, d := range []string{"2024-03-02", "2024-03-03", "2024-03-10", "2024-03-15", "2024-03-28"} {
		bookings = append(bookings, bookedDay(p1.ID, d, 3000))
	}
	return area, []models.Property{p1, p2}, bookings
}

func TestCalculateCityAnalytics(t *testing.T) {
	_, properties, bookings := goaScenario()
	got := CalculateCityAnalytics(properties, bookings, nil, month(2024, time.March))

	assert.Equal(t, 15000.0, got.TotalRevenue)
	assert.Equal(t, 2, got.TotalProperties)
	assert.Equal(t, 5, got.TotalBookedNights)
	assert.Equal(t, 1, got.PropertiesWithBookings)
	// 5 booked nights over 2 properties * 31 days
	assert.InDelta(t, 5.0/62.0*100, got.AverageOccupancyRate, 1e-9)
	assert.Equal(t, 3000.0, got.AverageDailyRate)
	assert.Equal(t, 0.0, got.RevPAR)
	assert.Equal(t, 1.0, got.AverageLengthOfStay)
}

func TestCalculateCityAnalyticsEmpty(t *testing.T) {
	got := CalculateCityAnalytics(nil, nil, nil, month(2024, time.March))

	assert.Zero(t, got.TotalRevenue)
	assert.Zero(t, got.TotalProperties)
	assert.Zero(t, got.AverageOccupancyRate)
	assert.Zero(t, got.AverageDailyRate)
	assert.Zero(t, got.MonthOverMonthGrowth)
}

// Growth stays 0 when the previous month had no revenue, even though the
// current month is positive.
func TestGrowthZeroPreviousMonth(t *testing.T) {
	_, properties, bookings := goaScenario()
	got := CalculateCityAnalytics(properties, bookings, nil, month(2024, time.March))
	assert.Equal(t, 0.0, got.MonthOverMonthGrowth)
}

func TestGrowthAgainstPreviousMonth(t *testing.T) {
	_, properties, bookings := goaScenario()
	// 10000 in February, 15000 in March -> +50%
	bookings = append(bookings, bookedDay(properties[0].ID, "2024-02-10", 10000))

	got := CalculateCityAnalytics(properties, bookings, nil, month(2024, time.March))
	assert.InDelta(t, 50.0, got.MonthOverMonthGrowth, 1e-9)
}

func TestCityFilterExcludesOtherAreas(t *testing.T) {
	goa, properties, bookings := goaScenario()
	other := models.Property{ID: mustUUID(), AreaID: mustUUID(), Name: "Elsewhere", AvgPricePerDay: 9999}
	properties = append(properties, other)
	bookings = append(bookings, bookedDay(other.ID, "2024-03-05", 9999))

	got := CalculateCityAnalytics(properties, bookings, &goa.ID, month(2024, time.March))
	assert.Equal(t, 15000.0, got.TotalRevenue)
	assert.Equal(t, 2, got.TotalProperties)
}

func TestMalformedDatesNeverCount(t *testing.T) {
	_, properties, bookings := goaScenario()
	bookings = append(bookings,
		bookedDay(properties[0].ID, "2024-3-5", 5000),
		bookedDay(properties[0].ID, "not-a-date", 5000),
	)

	got := CalculateCityAnalytics(properties, bookings, nil, month(2024, time.March))
	assert.Equal(t, 15000.0, got.TotalRevenue)
	assert.Equal(t, 5, got.TotalBookedNights)
}

func TestADRTimesNightsEqualsRevenue(t *testing.T) {
	_, properties, bookings := goaScenario()
	bookings = append(bookings, bookedDay(properties[1].ID, "2024-03-09", 4750))

	got := CalculateCityAnalytics(properties, bookings, nil, month(2024, time.March))
	assert.InDelta(t, got.TotalRevenue, got.AverageDailyRate*float64(got.TotalBookedNights), 1e-9)
}

func TestCityComparisonKeepsAreaOrder(t *testing.T) {
	goa, properties, bookings := goaScenario()
	jaipur := models.Area{ID: mustUUID(), Name: "Jaipur"}
	areas := []models.Area{goa, jaipur}

	rows := CalculateCityComparison(areas, properties, bookings, month(2024, time.March))
	require.Len(t, rows, 2)
	assert.Equal(t, "Goa", rows[0].CityName)
	assert.Equal(t, 15000.0, rows[0].Revenue)
	assert.Equal(t, "Jaipur", rows[1].CityName)
	assert.Zero(t, rows[1].Revenue)
	assert.Zero(t, rows[1].Properties)
}

func TestRevenueChartTwelvePoints(t *testing.T) {
	_, properties, bookings := goaScenario()
	ref := month(2024, time.March)

	points := RevenueChartData(properties, bookings, nil, ref)
	require.Len(t, points, 12)
	assert.Equal(t, "Apr 2023", points[0].Month)
	assert.Equal(t, "Mar 2024", points[11].Month)

	summary := CalculateCityAnalytics(properties, bookings, nil, ref)
	assert.Equal(t, summary.TotalRevenue, points[11].Revenue)

	for _, p := range points[:11] {
		assert.Zero(t, p.Revenue, p.Month)
	}
}

// Walking back from the 31st must not skip short months.
func TestRevenueChartFromMonthEnd(t *testing.T) {
	ref := time.Date(2024, time.March, 31, 23, 59, 0, 0, time.UTC)
	points := RevenueChartData(nil, nil, nil, ref)
	require.Len(t, points, 12)
	assert.Equal(t, "Feb 2024", points[10].Month)
}

func TestOccupancyHeatmap(t *testing.T) {
	_, properties, bookings := goaScenario()
	days := OccupancyHeatmapData(properties, bookings, nil, month(2024, time.March))
	require.Len(t, days, 31)

	for i, d := range days {
		assert.Equal(t, i+1, d.Day)
		assert.Equal(t, fmt.Sprintf("2024-03-%02d", i+1), d.Date)
		assert.GreaterOrEqual(t, d.OccupancyRate, 0.0)
		assert.LessOrEqual(t, d.OccupancyRate, 100.0)
		assert.Equal(t, 2, d.TotalProperties)
	}

	// 1 of 2 properties booked on March 2nd
	assert.Equal(t, 1, days[1].BookedProperties)
	assert.InDelta(t, 50.0, days[1].OccupancyRate, 1e-9)
	assert.Zero(t, days[0].BookedProperties)
}

func TestHeatmapLengthMatchesMonth(t *testing.T) {
	cases := map[time.Time]int{
		month(2024, time.February): 29,
		month(2023, time.February): 28,
		month(2024, time.April):    30,
		month(2024, time.December): 31,
	}
	for ref, want := range cases {
		assert.Len(t, OccupancyHeatmapData(nil, nil, nil, ref), want, ref.Format("Jan 2006"))
	}
}

func TestPropertyPerformance(t *testing.T) {
	_, properties, bookings := goaScenario()
	rows := PropertyPerformance(properties, bookings, nil, month(2024, time.March))
	require.Len(t, rows, 2)

	assert.Equal(t, "Casa Palmeira", rows[0].PropertyName)
	assert.Equal(t, 15000.0, rows[0].Revenue)
	assert.Equal(t, 5, rows[0].BookedNights)
	assert.InDelta(t, 5.0/31.0*100, rows[0].OccupancyRate, 1e-9)
	assert.Equal(t, 3000.0, rows[0].AverageRate)

	assert.Zero(t, rows[1].Revenue)
	assert.Zero(t, rows[1].BookedNights)
	assert.Zero(t, rows[1].AverageRate)
}

func TestSortPerformance(t *testing.T) {
	rows := []models.PropertyPerformanceRow{
		{PropertyName: "low", Revenue: 100, OccupancyRate: 90},
		{PropertyName: "high", Revenue: 900, OccupancyRate: 10},
	}

	SortPerformance(rows, SortByRevenue, SortDesc)
	assert.Equal(t, "high", rows[0].PropertyName)

	SortPerformance(rows, SortByRevenue, SortAsc)
	assert.Equal(t, "low", rows[0].PropertyName)

	SortPerformance(rows, SortByOccupancy, SortDesc)
	assert.Equal(t, "low", rows[0].PropertyName)
}

func TestNextSort(t *testing.T) {
	// clicking the active column flips direction
	key, order := NextSort(SortByRevenue, SortDesc, SortByRevenue)
	assert.Equal(t, SortByRevenue, key)
	assert.Equal(t, SortAsc, order)

	key, order = NextSort(SortByRevenue, SortAsc, SortByRevenue)
	assert.Equal(t, SortDesc, order)

	// clicking a different column resets to descending
	key, order = NextSort(SortByRevenue, SortAsc, SortByRate)
	assert.Equal(t, SortByRate, key)
	assert.Equal(t, SortDesc, order)
}

func TestValidSortKey(t *testing.T) {
	assert.True(t, ValidSortKey("revenue"))
	assert.True(t, ValidSortKey("occupancy"))
	assert.True(t, ValidSortKey("rate"))
	assert.False(t, ValidSortKey("name"))
	assert.False(t, ValidSortKey(""))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(month(2024, time.February)))
	assert.Equal(t, 28, DaysInMonth(month(2025, time.February)))
	assert.Equal(t, 31, DaysInMonth(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)))
}
