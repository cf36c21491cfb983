package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Area is a city-level grouping of properties. Every property belongs to
// exactly one area; deleting an area requires the caller to decide what
// happens to its properties (see DeleteAreaOptions).
type Area struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7 if not set
func (a *Area) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Area) TableName() string {
	return "areas"
}

// AreaRequest is used when creating an area
type AreaRequest struct {
	Name        string `json:"name" binding:"required" example:"Goa"`
	Description string `json:"description" example:"Beachside listings"`
	ImageURL    string `json:"image_url"`
}

// UpdateAreaRequest is used when updating an area; only provided fields change
type UpdateAreaRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// DeleteAreaOptions selects what happens to the area's properties.
// Mode has no default: callers must choose between cascading the delete to
// every child property (and its bookings) or moving the children to another
// area first.
type DeleteAreaOptions struct {
	Mode         string     `json:"mode" binding:"required,oneof=cascade move" example:"cascade"`
	TargetAreaID *uuid.UUID `json:"target_area_id,omitempty"`
}

// AreaStats summarizes the whole tracker for the settings screen
type AreaStats struct {
	TotalAreas         int     `json:"total_areas"`
	TotalProperties    int     `json:"total_properties"`
	TotalBookingRows   int     `json:"total_booking_rows"`
	BookedNights       int     `json:"booked_nights"`
	BookedSharePercent float64 `json:"booked_share_percent"`
}
