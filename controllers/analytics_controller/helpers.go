package analytics_controller

import (
	"errors"
	"time"

	snapshot_cache "github.com/StayTrack-Labs/staytrack-backend/cache"
	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// loadSnapshot returns the cached collections or re-fetches all three from
// the database. The analytics endpoints always compute from a full in-memory
// snapshot; the engine itself never queries.
func loadSnapshot() (*snapshot_cache.Snapshot, error) {
	if snap, ok := snapshot_cache.Get(); ok {
		return snap, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()
	db := config.Gorm.WithContext(ctx)

	var areas []models.Area
	if err := db.Order("created_at asc").Find(&areas).Error; err != nil {
		return nil, err
	}
	var properties []models.Property
	if err := db.Order("created_at asc").Find(&properties).Error; err != nil {
		return nil, err
	}
	var bookings []models.Booking
	if err := db.Order("date asc").Find(&bookings).Error; err != nil {
		return nil, err
	}

	return snapshot_cache.Set(areas, properties, bookings), nil
}

// parseMonth reads the optional ?month=YYYY-MM query param, defaulting to
// the current month.
func parseMonth(c *gin.Context) (time.Time, error) {
	raw := c.Query("month")
	if raw == "" {
		return time.Now().UTC(), nil
	}
	parsed, err := time.Parse("2006-01", raw)
	if err != nil {
		return time.Time{}, errors.New("invalid month, expected YYYY-MM")
	}
	return parsed, nil
}

// parseAreaID reads the optional ?area_id query param; nil means all cities.
func parseAreaID(c *gin.Context) (*uuid.UUID, error) {
	raw := c.Query("area_id")
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errors.New("invalid area_id")
	}
	return &id, nil
}
