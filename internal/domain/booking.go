package domain

import (
	"time"

	"github.com/inalogystics/DeskBookingService/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	// StatusActive бронирование, созданное через основной флоу
	StatusActive BookingStatus = "ACTIVE"
	// StatusConfirmed бронирование, созданное через альтернативный эндпоинт
	// с проверкой пересечения интервалов
	StatusConfirmed BookingStatus = "CONFIRMED"
	// StatusCancelled отменённое бронирование
	StatusCancelled BookingStatus = "CANCELLED"
)

// DeskBooking бронирование стола: один пользователь, один стол,
// одна календарная дата и окно времени в пределах дня
type DeskBooking struct {
	ID        int64
	UserID    int64
	DeskID    int64
	Date      time.Time // календарная дата без времени
	StartTime types.TimeString
	EndTime   types.TimeString
	Status    BookingStatus

	// Данные стола, подтягиваемые join'ом при чтении
	DeskNumber string
	Zone       string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled возвращает true для отменённого бронирования
func (b *DeskBooking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// DurationMinutes возвращает длительность бронирования в минутах
func (b *DeskBooking) DurationMinutes() (int, error) {
	return b.EndTime.Sub(b.StartTime)
}

// ParkingBooking бронирование парковочного места, создаваемое
// в паре с бронированием стола
type ParkingBooking struct {
	ID             int64
	UserID         int64
	ParkingSpaceID int64
	Date           time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         BookingStatus

	// Данные места, подтягиваемые join'ом при чтении
	SpotNumber string
	Location   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
