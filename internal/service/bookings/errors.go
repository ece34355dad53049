package bookings

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrDeskNotFound возвращается, когда стол не найден
	ErrDeskNotFound = errors.New("desk not found")

	// ErrAccessDenied возвращается при попытке отменить чужое бронирование
	ErrAccessDenied = errors.New("access denied")

	// ErrAlreadyCancelled возвращается для уже отмененного бронирования
	ErrAlreadyCancelled = errors.New("booking is already cancelled")

	// ErrTimeSlotTaken возвращается, когда слот времени пересекается с подтвержденным бронированием
	ErrTimeSlotTaken = errors.New("time slot is already taken")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
