package models

import (
	"time"

	"github.com/inalogystics/DeskBookingService/internal/domain"
	"github.com/inalogystics/DeskBookingService/pkg/types"
)

// ConfirmDeskRequest запрос на подтвержденное бронирование стола со слотом времени
type ConfirmDeskRequest struct {
	DeskID    int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// ParkingInfo парковка, привязанная к дню бронирования
type ParkingInfo struct {
	SpotNumber string `json:"spotNumber"`
	Location   string `json:"location"`
}

// WeekDay один день недельного обзора
type WeekDay struct {
	Date       string       `json:"date"`
	Weekday    string       `json:"weekday"`
	HasBooking bool         `json:"hasBooking"`
	Booking    *DayBooking  `json:"booking,omitempty"`
	Parking    *ParkingInfo `json:"parking,omitempty"`
}

// DayBooking бронирование стола в рамках одного дня
type DayBooking struct {
	ID         int64  `json:"id"`
	DeskNumber string `json:"deskNumber"`
	Zone       string `json:"zone"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Status     string `json:"status"`
}

// UpcomingBooking предстоящее бронирование пользователя
type UpcomingBooking struct {
	ID         int64        `json:"id"`
	Date       string       `json:"date"`
	DeskNumber string       `json:"deskNumber"`
	Zone       string       `json:"zone"`
	StartTime  string       `json:"startTime"`
	EndTime    string       `json:"endTime"`
	Status     string       `json:"status"`
	Parking    *ParkingInfo `json:"parking,omitempty"`
}

// BookingResponse бронирование стола в ответе API
type BookingResponse struct {
	ID         int64  `json:"id"`
	DeskID     int64  `json:"deskId"`
	DeskNumber string `json:"deskNumber"`
	Zone       string `json:"zone"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}

// FromDomainBooking конвертирует доменное бронирование в модель ответа
func FromDomainBooking(b *domain.DeskBooking) *BookingResponse {
	return &BookingResponse{
		ID:         b.ID,
		DeskID:     b.DeskID,
		DeskNumber: b.DeskNumber,
		Zone:       b.Zone,
		Date:       domain.FormatDate(b.Date),
		StartTime:  b.StartTime.String(),
		EndTime:    b.EndTime.String(),
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
	}
}

// ToDayBooking конвертирует доменное бронирование в дневную модель
func ToDayBooking(b *domain.DeskBooking) *DayBooking {
	return &DayBooking{
		ID:         b.ID,
		DeskNumber: b.DeskNumber,
		Zone:       b.Zone,
		StartTime:  b.StartTime.String(),
		EndTime:    b.EndTime.String(),
		Status:     string(b.Status),
	}
}

// ToParkingInfo конвертирует доменное бронирование парковки
func ToParkingInfo(p *domain.ParkingBooking) *ParkingInfo {
	return &ParkingInfo{
		SpotNumber: p.SpotNumber,
		Location:   p.Location,
	}
}
