package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PropertyTypeLuxury = "luxury"
	PropertyTypeNormal = "normal"
)

// Property is a single trackable rental unit belonging to one area.
// AvgPricePerDay is the default nightly rate used for days that have no
// explicit booking row.
type Property struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AreaID         uuid.UUID `json:"area_id" gorm:"type:uuid;not null;index"`
	Name           string    `json:"name" gorm:"not null"`
	AirbnbLink     string    `json:"airbnb_link"`
	AvgPricePerDay float64   `json:"avg_price_per_day" gorm:"not null"`
	Description    string    `json:"description"`
	Bedrooms       int       `json:"bedrooms" gorm:"default:1"`
	PropertyType   string    `json:"property_type" gorm:"type:varchar(20);default:'normal';check:property_type IN ('luxury', 'normal')"`
	IsSuperhost    bool      `json:"is_superhost" gorm:"default:false"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7 if not set
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Property) TableName() string {
	return "properties"
}

// PropertyRequest is used when creating a property under an area.
// SeedBookings lets the caller pre-fill calendar days in the same request;
// they are applied one at a time through the booking upsert path.
type PropertyRequest struct {
	AreaID         uuid.UUID          `json:"area_id" binding:"required"`
	Name           string             `json:"name" binding:"required" example:"Casa Palmeira"`
	AirbnbLink     string             `json:"airbnb_link" binding:"omitempty,url"`
	AvgPricePerDay float64            `json:"avg_price_per_day" binding:"required,gt=0" example:"3000"`
	Description    string             `json:"description"`
	Bedrooms       int                `json:"bedrooms" binding:"required,gte=1" example:"2"`
	PropertyType   string             `json:"property_type" binding:"required,oneof=luxury normal" example:"normal"`
	IsSuperhost    bool               `json:"is_superhost"`
	SeedBookings   []BookingDayInput  `json:"seed_bookings,omitempty"`
}

// UpdatePropertyRequest is used when updating a property; only provided
// fields change. AreaID re-parents the property to a different area.
type UpdatePropertyRequest struct {
	AreaID         *uuid.UUID `json:"area_id"`
	Name           *string    `json:"name"`
	AirbnbLink     *string    `json:"airbnb_link"`
	AvgPricePerDay *float64   `json:"avg_price_per_day" binding:"omitempty,gt=0"`
	Description    *string    `json:"description"`
	Bedrooms       *int       `json:"bedrooms" binding:"omitempty,gte=1"`
	PropertyType   *string    `json:"property_type" binding:"omitempty,oneof=luxury normal"`
	IsSuperhost    *bool      `json:"is_superhost"`
}
