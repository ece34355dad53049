package create_booking

import (
	"time"

	parkingModels "github.com/inalogystics/DeskBookingService/internal/service/parking/models"
	"github.com/inalogystics/DeskBookingService/pkg/types"
)

// Request запрос на бронирование стола на одну или несколько дат.
// Стол адресуется печатным номером (например, "D10"), как на плане этажа.
type Request struct {
	Email                   string
	DeskNumber              string
	Dates                   []time.Time
	StartTime               types.TimeString
	EndTime                 types.TimeString
	NeedsParking            bool
	PreferredParkingSpaceID *int64
}

// CreatedBooking успешно забронированная дата
type CreatedBooking struct {
	BookingID  int64                     `json:"bookingId"`
	Date       string                    `json:"date"`
	DeskNumber string                    `json:"deskNumber"`
	Zone       string                    `json:"zone"`
	StartTime  string                    `json:"startTime"`
	EndTime    string                    `json:"endTime"`
	Parking    *parkingModels.Assignment `json:"parking,omitempty"`
}

// FailedDate дата, которую не удалось забронировать, с причиной для пользователя
type FailedDate struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// Response частичный результат бронирования: каждая дата проходит или
// отклоняется независимо от остальных. Success выставляется, если
// забронирована хотя бы одна дата.
type Response struct {
	Success  bool             `json:"success"`
	Bookings []CreatedBooking `json:"bookings"`
	Failed   []FailedDate     `json:"failed"`
}
