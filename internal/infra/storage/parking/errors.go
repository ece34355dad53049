package parking

import "errors"

var (
	// ErrSpaceNotFound парковочное место не найдено
	ErrSpaceNotFound = errors.New("parking.repository: parking space not found")

	// ErrBookingNotFound бронирование парковки не найдено
	ErrBookingNotFound = errors.New("parking.repository: parking booking not found")

	// ErrSpotTaken место уже занято на эту дату и время (нарушение uniq_parking_booking_slot)
	ErrSpotTaken = errors.New("parking.repository: parking spot already taken for this slot")

	// ErrBuildQuery ошибка построения SQL-запроса
	ErrBuildQuery = errors.New("parking.repository: build query error")

	// ErrExecQuery ошибка выполнения SQL-запроса
	ErrExecQuery = errors.New("parking.repository: execute query error")

	// ErrScanRow ошибка чтения строки результата
	ErrScanRow = errors.New("parking.repository: scan row error")
)
