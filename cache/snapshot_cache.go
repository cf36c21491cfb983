// Package snapshot_cache holds a short-lived in-memory mirror of the three
// collections the analytics engine scans. Analytics reads go through the
// snapshot; every mutating controller calls Invalidate so the next read
// re-fetches from the database.
package snapshot_cache

import (
	"sync"
	"time"

	"github.com/StayTrack-Labs/staytrack-backend/models"
)

const TTL = time.Minute

// Snapshot is a consistent read of all areas, properties and bookings.
// Slices are shared between readers: treat them as read-only.
type Snapshot struct {
	Areas      []models.Area
	Properties []models.Property
	Bookings   []models.Booking
	FetchedAt  time.Time
}

var (
	mu     sync.RWMutex
	cached *Snapshot
)

func Get() (*Snapshot, bool) {
	mu.RLock()
	defer mu.RUnlock()
	if cached != nil && time.Since(cached.FetchedAt) < TTL {
		return cached, true
	}
	return nil, false
}

func Set(areas []models.Area, properties []models.Property, bookings []models.Booking) *Snapshot {
	mu.Lock()
	defer mu.Unlock()
	cached = &Snapshot{
		Areas:      areas,
		Properties: properties,
		Bookings:   bookings,
		FetchedAt:  time.Now(),
	}
	return cached
}

// Invalidate drops the snapshot. Call on any area/property/booking write.
func Invalidate() {
	mu.Lock()
	cached = nil
	mu.Unlock()
}
