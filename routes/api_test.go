package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	snapshot_cache "github.com/StayTrack-Labs/staytrack-backend/cache"
	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/middleware"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/StayTrack-Labs/staytrack-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testDBSeq int

// setupTestDB swaps the global GORM handle for an in-memory sqlite database.
// Each test gets its own named database so state never leaks between tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:routes_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Area{}, &models.Property{}, &models.Booking{}))

	prev := config.Gorm
	config.Gorm = db
	snapshot_cache.Invalidate()
	t.Cleanup(func() {
		config.Gorm = prev
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func setupRouter() *gin.Engine {
	router := gin.New()
	api := router.Group("/api/v1")
	SetupAreaRoutes(api)
	SetupPropertyRoutes(api)
	SetupAnalyticsRoutes(api)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createArea(t *testing.T, db *gorm.DB, name string) models.Area {
	t.Helper()
	area := models.Area{Name: name}
	require.NoError(t, db.Create(&area).Error)
	return area
}

func createProperty(t *testing.T, db *gorm.DB, areaID uuid.UUID, name string, rate float64) models.Property {
	t.Helper()
	property := models.Property{AreaID: areaID, Name: name, AvgPricePerDay: rate}
	require.NoError(t, db.Create(&property).Error)
	return property
}

func TestUpsertBookingIdempotent(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	area := createArea(t, db, "Goa")
	property := createProperty(t, db, area.ID, "Casa Palmeira", 3000)
	path := fmt.Sprintf("/api/v1/properties/%s/bookings", property.ID)

	w := doJSON(t, router, http.MethodPut, path, models.BookingDayInput{
		Date: "2024-03-05", Status: models.BookingStatusBooked, Price: 3000,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Second write to the same (property, date) overwrites instead of duplicating
	w = doJSON(t, router, http.MethodPut, path, models.BookingDayInput{
		Date: "2024-03-05", Status: models.BookingStatusAvailable, Price: 2500, Notes: "maintenance",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rows []models.Booking
	require.NoError(t, db.Where("property_id = ?", property.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, models.BookingStatusAvailable, rows[0].Status)
	assert.Equal(t, 2500.0, rows[0].Price)
	assert.Equal(t, "maintenance", rows[0].Notes)
}

func TestUpsertBookingValidation(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	area := createArea(t, db, "Goa")
	property := createProperty(t, db, area.ID, "Casa Palmeira", 3000)
	path := fmt.Sprintf("/api/v1/properties/%s/bookings", property.ID)

	w := doJSON(t, router, http.MethodPut, path, map[string]any{
		"date": "05-03-2024", "status": "booked",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPut, path, map[string]any{
		"date": "2024-03-05", "status": "blocked",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPut,
		fmt.Sprintf("/api/v1/properties/%s/bookings", uuid.Must(uuid.NewV7())),
		models.BookingDayInput{Date: "2024-03-05", Status: models.BookingStatusBooked})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleBookingCycle(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	area := createArea(t, db, "Goa")
	property := createProperty(t, db, area.ID, "Casa Palmeira", 3000)
	path := fmt.Sprintf("/api/v1/properties/%s/bookings/2024-03-10/toggle", property.ID)

	// no row yet: toggles to booked at the default rate
	w := doJSON(t, router, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var row models.Booking
	require.NoError(t, db.Where("property_id = ? AND date = ?", property.ID, "2024-03-10").First(&row).Error)
	assert.Equal(t, models.BookingStatusBooked, row.Status)
	assert.Equal(t, 3000.0, row.Price)

	// toggles back to available, keeping the price
	w = doJSON(t, router, http.MethodPost, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.Where("property_id = ? AND date = ?", property.ID, "2024-03-10").First(&row).Error)
	assert.Equal(t, models.BookingStatusAvailable, row.Status)
	assert.Equal(t, 3000.0, row.Price)
}

func TestCreatePropertySeedsBookings(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()
	area := createArea(t, db, "Goa")

	w := doJSON(t, router, http.MethodPost, "/api/v1/properties", models.PropertyRequest{
		AreaID:         area.ID,
		Name:           "Vagator Cliff Villa",
		AvgPricePerDay: 8500,
		Bedrooms:       4,
		PropertyType:   models.PropertyTypeLuxury,
		SeedBookings: []models.BookingDayInput{
			{Date: "2024-03-01", Status: models.BookingStatusBooked, Price: 8500},
			{Date: "2024-03-02", Status: models.BookingStatusBooked, Price: 9000},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var count int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestDeleteAreaCascade(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	area := createArea(t, db, "Goa")
	property := createProperty(t, db, area.ID, "Casa Palmeira", 3000)
	require.NoError(t, db.Create(&models.Booking{
		PropertyID: property.ID, Date: "2024-03-05", Status: models.BookingStatusBooked, Price: 3000,
	}).Error)

	w := doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/areas/%s/delete-with-options", area.ID),
		models.DeleteAreaOptions{Mode: "cascade"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var areas, properties, bookings int64
	db.Model(&models.Area{}).Count(&areas)
	db.Model(&models.Property{}).Count(&properties)
	db.Model(&models.Booking{}).Count(&bookings)
	assert.Zero(t, areas)
	assert.Zero(t, properties)
	assert.Zero(t, bookings)
}

func TestDeleteAreaMove(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	source := createArea(t, db, "Goa")
	target := createArea(t, db, "Mumbai")
	var moved []models.Property
	for i := 0; i < 3; i++ {
		moved = append(moved, createProperty(t, db, source.ID, fmt.Sprintf("Villa %d", i+1), 3000))
	}
	require.NoError(t, db.Create(&models.Booking{
		PropertyID: moved[0].ID, Date: "2024-03-05", Status: models.BookingStatusBooked, Price: 3000,
	}).Error)

	w := doJSON(t, router, http.MethodPost,
		fmt.Sprintf("/api/v1/areas/%s/delete-with-options", source.ID),
		models.DeleteAreaOptions{Mode: "move", TargetAreaID: &target.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var gone models.Area
	assert.ErrorIs(t, db.First(&gone, "id = ?", source.ID).Error, gorm.ErrRecordNotFound)

	var reparented int64
	db.Model(&models.Property{}).Where("area_id = ?", target.ID).Count(&reparented)
	assert.EqualValues(t, 3, reparented)

	// bookings stay attached to their property
	var bookings int64
	db.Model(&models.Booking{}).Where("property_id = ?", moved[0].ID).Count(&bookings)
	assert.EqualValues(t, 1, bookings)
}

func TestDeleteAreaMoveValidation(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()
	area := createArea(t, db, "Goa")
	path := fmt.Sprintf("/api/v1/areas/%s/delete-with-options", area.ID)

	// move requires a target
	w := doJSON(t, router, http.MethodPost, path, models.DeleteAreaOptions{Mode: "move"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// target cannot be the area being deleted
	w = doJSON(t, router, http.MethodPost, path, models.DeleteAreaOptions{Mode: "move", TargetAreaID: &area.ID})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown target
	ghost := uuid.Must(uuid.NewV7())
	w = doJSON(t, router, http.MethodPost, path, models.DeleteAreaOptions{Mode: "move", TargetAreaID: &ghost})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// mode is mandatory
	w = doJSON(t, router, http.MethodPost, path, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Area{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeletePropertyCascadesBookings(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	area := createArea(t, db, "Goa")
	property := createProperty(t, db, area.ID, "Casa Palmeira", 3000)
	for _, d := range []string{"2024-03-01", "2024-03-02"} {
		require.NoError(t, db.Create(&models.Booking{
			PropertyID: property.ID, Date: d, Status: models.BookingStatusBooked, Price: 3000,
		}).Error)
	}

	w := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/properties/%s", property.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var bookings int64
	db.Model(&models.Booking{}).Count(&bookings)
	assert.Zero(t, bookings)
}

func TestGetCalendarFillsImplicitDays(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	area := createArea(t, db, "Goa")
	property := createProperty(t, db, area.ID, "Casa Palmeira", 3000)
	require.NoError(t, db.Create(&models.Booking{
		PropertyID: property.ID, Date: "2024-02-10", Status: models.BookingStatusBooked, Price: 3500,
	}).Error)

	w := doJSON(t, router, http.MethodGet,
		fmt.Sprintf("/api/v1/properties/%s/calendar?month=2024-02", property.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data []models.CalendarDay `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 29) // leap February

	assert.Equal(t, "2024-02-10", resp.Data[9].Date)
	assert.Equal(t, models.BookingStatusBooked, resp.Data[9].Status)
	assert.Equal(t, 3500.0, resp.Data[9].Price)
	assert.True(t, resp.Data[9].Explicit)

	// days without a row come back available at the default rate
	assert.Equal(t, models.BookingStatusAvailable, resp.Data[0].Status)
	assert.Equal(t, 3000.0, resp.Data[0].Price)
	assert.False(t, resp.Data[0].Explicit)
}

func TestAnalyticsSummaryEndpoint(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	area := createArea(t, db, "Goa")
	property := createProperty(t, db, area.ID, "Casa Palmeira", 3000)
	for _, d := range []string{"2024-03-02", "2024-03-03", "2024-03-10"} {
		require.NoError(t, db.Create(&models.Booking{
			PropertyID: property.ID, Date: d, Status: models.BookingStatusBooked, Price: 3000,
		}).Error)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/analytics/summary?month=2024-03", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data models.AnalyticsData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 9000.0, resp.Data.TotalRevenue)
	assert.Equal(t, 3, resp.Data.TotalBookedNights)
	assert.Equal(t, 1, resp.Data.PropertiesWithBookings)
}

func TestPropertyPerformanceSortHeaders(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter()

	area := createArea(t, db, "Goa")
	low := createProperty(t, db, area.ID, "Low", 1000)
	high := createProperty(t, db, area.ID, "High", 9000)
	require.NoError(t, db.Create(&models.Booking{
		PropertyID: low.ID, Date: "2024-03-01", Status: models.BookingStatusBooked, Price: 1000,
	}).Error)
	require.NoError(t, db.Create(&models.Booking{
		PropertyID: high.ID, Date: "2024-03-01", Status: models.BookingStatusBooked, Price: 9000,
	}).Error)

	w := doJSON(t, router, http.MethodGet,
		"/api/v1/analytics/property-performance?month=2024-03&sort_by=revenue&order=desc", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "revenue", w.Header().Get("X-Sort-By"))
	assert.Equal(t, "desc", w.Header().Get("X-Sort-Order"))

	var resp struct {
		Data []models.PropertyPerformanceRow `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "High", resp.Data[0].PropertyName)

	// toggling the active column flips the direction
	w = doJSON(t, router, http.MethodGet,
		"/api/v1/analytics/property-performance?month=2024-03&sort_by=revenue&order=desc&toggle=revenue", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "asc", w.Header().Get("X-Sort-Order"))
}

func TestAuthGate(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, services.InitJWTService("test-secret"))

	router := gin.New()
	api := router.Group("/api/v1")
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	SetupAreaRoutes(protected)

	// no credentials
	w := doJSON(t, router, http.MethodGet, "/api/v1/areas", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// garbage bearer token
	req := httptest.NewRequest(http.MethodGet, "/api/v1/areas", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// valid session token
	token, err := services.GetJWTService().GenerateSessionJWT(uuid.Must(uuid.NewV7()).String())
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/v1/areas", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
