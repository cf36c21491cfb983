package main

import (
	"fmt"
	"log"
	"time"

	"github.com/StayTrack-Labs/staytrack-backend/config"
	"github.com/StayTrack-Labs/staytrack-backend/controllers/booking_controller"
	"github.com/StayTrack-Labs/staytrack-backend/models"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

type seedProperty struct {
	name     string
	rate     float64
	bedrooms int
	ptype    string
	// every nth day of the current month gets a booked row
	bookedEvery int
}

var demoAreas = map[string][]seedProperty{
	"Goa": {
		{name: "Casa Palmeira", rate: 3000, bedrooms: 2, ptype: models.PropertyTypeNormal, bookedEvery: 2},
		{name: "Vagator Cliff Villa", rate: 8500, bedrooms: 4, ptype: models.PropertyTypeLuxury, bookedEvery: 3},
	},
	"Jaipur": {
		{name: "Pink City Haveli", rate: 4200, bedrooms: 3, ptype: models.PropertyTypeLuxury, bookedEvery: 4},
	},
	"Mumbai": {
		{name: "Bandra Studio", rate: 5500, bedrooms: 1, ptype: models.PropertyTypeNormal, bookedEvery: 2},
		{name: "Juhu Sea View", rate: 9000, bedrooms: 3, ptype: models.PropertyTypeLuxury, bookedEvery: 5},
	},
}

// main seeds demo areas, properties and a month of calendar rows.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application.
func main() {
	fmt.Println("StayTrack - Demo Data Seeder")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("connected to database")

	if err := config.Gorm.AutoMigrate(&models.Area{}, &models.Property{}, &models.Booking{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	var existing int64
	if err := config.Gorm.Model(&models.Area{}).Count(&existing).Error; err != nil {
		log.Fatalf("database error: %v", err)
	}
	if existing > 0 {
		log.Fatalf("database already has %d areas, refusing to seed on top", existing)
	}

	now := time.Now().UTC()
	monthPrefix := now.Format("2006-01")
	created := 0

	for cityName, props := range demoAreas {
		area := models.Area{
			Name:        cityName,
			Description: fmt.Sprintf("%s short-term rentals", cityName),
		}
		if err := config.Gorm.Create(&area).Error; err != nil {
			log.Fatalf("failed to create area %s: %v", cityName, err)
		}
		log.Printf("created area %s (%s)", area.Name, area.ID)

		for _, sp := range props {
			property := models.Property{
				AreaID:         area.ID,
				Name:           sp.name,
				AvgPricePerDay: sp.rate,
				Bedrooms:       sp.bedrooms,
				PropertyType:   sp.ptype,
			}
			if err := config.Gorm.Create(&property).Error; err != nil {
				log.Fatalf("failed to create property %s: %v", sp.name, err)
			}

			// Calendar rows go through the same upsert path as the API,
			// one day at a time.
			daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
			for day := 1; day <= daysInMonth; day++ {
				if day%sp.bookedEvery != 0 {
					continue
				}
				input := models.BookingDayInput{
					Date:   fmt.Sprintf("%s-%02d", monthPrefix, day),
					Status: models.BookingStatusBooked,
					Price:  sp.rate,
				}
				if _, err := booking_controller.Upsert(config.Gorm, property.ID, input); err != nil {
					log.Fatalf("failed to seed booking %s for %s: %v", input.Date, sp.name, err)
				}
				created++
			}
			log.Printf("created property %s (%s)", property.Name, property.ID)
		}
	}

	fmt.Println()
	fmt.Printf("Seeded %d areas, %d booked nights in %s\n", len(demoAreas), created, monthPrefix)
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/auth/login with the access code")
}
