package deskbooking

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("deskbooking.repository: booking not found")

	// ErrDeskSlotTaken стол уже забронирован на эту дату (нарушение uniq_desk_booking_slot)
	ErrDeskSlotTaken = errors.New("deskbooking.repository: desk already booked for this date")

	// ErrUserDateTaken у пользователя уже есть активное бронирование на эту дату (нарушение uniq_user_booking_date)
	ErrUserDateTaken = errors.New("deskbooking.repository: user already has a booking for this date")

	// ErrBuildQuery ошибка построения SQL-запроса
	ErrBuildQuery = errors.New("deskbooking.repository: build query error")

	// ErrExecQuery ошибка выполнения SQL-запроса
	ErrExecQuery = errors.New("deskbooking.repository: execute query error")

	// ErrScanRow ошибка чтения строки результата
	ErrScanRow = errors.New("deskbooking.repository: scan row error")
)
