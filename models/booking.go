package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BookingStatusAvailable = "available"
	BookingStatusBooked    = "booked"
	// BookingStatusBlocked is accepted by the schema but not produced by any
	// current write path.
	BookingStatusBlocked = "blocked"
)

// Booking is the state of exactly one property on exactly one calendar day.
// (PropertyID, Date) is the unique key; all writes go through upsert so the
// pair never duplicates. Days with no row are implicitly available at the
// property's default nightly rate. For booked rows Price is the realized
// nightly rate actually charged.
type Booking struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	PropertyID uuid.UUID `json:"property_id" gorm:"type:uuid;not null;uniqueIndex:idx_bookings_property_date,priority:1"`
	Date       string    `json:"date" gorm:"type:varchar(10);not null;uniqueIndex:idx_bookings_property_date,priority:2"`
	Status     string    `json:"status" gorm:"type:varchar(20);default:'available';check:status IN ('available', 'booked', 'blocked')"`
	Price      float64   `json:"price"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7 if not set
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Booking) TableName() string {
	return "bookings"
}

// BookingDayInput is one calendar-day write. Used both for the standalone
// upsert endpoint and for seeding days during property creation.
type BookingDayInput struct {
	Date   string  `json:"date" binding:"required,datetime=2006-01-02" example:"2024-03-05"`
	Status string  `json:"status" binding:"required,oneof=available booked" example:"booked"`
	Price  float64 `json:"price" binding:"gte=0" example:"3000"`
	Notes  string  `json:"notes"`
}

// CalendarDay is one cell of the materialized month grid. Days without a
// booking row are filled in as available at the property's default rate.
type CalendarDay struct {
	Date     string  `json:"date"`
	Status   string  `json:"status"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes,omitempty"`
	Explicit bool    `json:"explicit"`
}
