package models

import "github.com/inalogystics/DeskBookingService/internal/domain"

// SpaceAvailability парковочное место с признаком доступности
type SpaceAvailability struct {
	ID           int64  `json:"id"`
	SpotNumber   string `json:"spotNumber"`
	Location     string `json:"location"`
	IsAccessible bool   `json:"isAccessible"`
	HasCharger   bool   `json:"hasCharger"`
	IsAvailable  bool   `json:"isAvailable"`
}

// AvailabilityResponse доступность парковки на дату и время начала
type AvailabilityResponse struct {
	Date            string              `json:"date"`
	StartTime       string              `json:"startTime"`
	TotalSpaces     int                 `json:"totalSpaces"`
	AvailableSpaces int                 `json:"availableSpaces"`
	Spaces          []SpaceAvailability `json:"spaces"`
}

// Assignment назначенное парковочное место
type Assignment struct {
	SpaceID    int64  `json:"spaceId"`
	SpotNumber string `json:"spotNumber"`
	Location   string `json:"location"`
}

// FromDomainSpace конвертирует доменное место с признаком доступности
func FromDomainSpace(s *domain.ParkingSpace, isAvailable bool) SpaceAvailability {
	return SpaceAvailability{
		ID:           s.ID,
		SpotNumber:   s.SpotNumber,
		Location:     s.Location,
		IsAccessible: s.IsAccessible,
		HasCharger:   s.HasCharger,
		IsAvailable:  isAvailable,
	}
}
