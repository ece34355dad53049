package confirm_desk_booking

import (
	"github.com/inalogystics/DeskBookingService/internal/domain"
	"github.com/inalogystics/DeskBookingService/internal/service/bookings/models"
	"github.com/inalogystics/DeskBookingService/pkg/types"
)

// ConfirmDeskBookingRequest HTTP request model
type ConfirmDeskBookingRequest struct {
	DeskID    int64  `json:"deskId"`
	Date      string `json:"date"`      // "2026-03-02"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "17:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ConfirmDeskBookingRequest) ToServiceRequest() (*models.ConfirmDeskRequest, error) {
	date, err := domain.ParseLocalDate(r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &models.ConfirmDeskRequest{
		DeskID:    r.DeskID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}
