package domain

import "time"

// ParkingSpace парковочное место
type ParkingSpace struct {
	ID           int64
	SpotNumber   string // например, "G12", "PH66"
	Location     string // например, "Garage", "Parking House"
	IsAccessible bool
	HasCharger   bool
	CreatedAt    time.Time
}
