package create_booking

import (
	"time"

	"github.com/inalogystics/DeskBookingService/internal/domain"
	createBooking "github.com/inalogystics/DeskBookingService/internal/usecase/create_booking"
	"github.com/inalogystics/DeskBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	DeskID                string   `json:"deskId"`    // номер стола, например "D10"
	Dates                 []string `json:"dates"`     // ["2026-03-02", ...]
	StartTime             string   `json:"startTime"` // "09:00"
	EndTime               string   `json:"endTime"`   // "17:00"
	NeedsParking          bool     `json:"needsParking,omitempty"`
	SelectedParkingSpotID *int64   `json:"selectedParkingSpotId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(email string) (*createBooking.Request, error) {
	dates := make([]time.Time, 0, len(r.Dates))
	for _, raw := range r.Dates {
		date, err := domain.ParseLocalDate(raw)
		if err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Email:                   email,
		DeskNumber:              r.DeskID,
		Dates:                   dates,
		StartTime:               startTime,
		EndTime:                 endTime,
		NeedsParking:            r.NeedsParking,
		PreferredParkingSpaceID: r.SelectedParkingSpotID,
	}, nil
}
