package create_booking

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrDeskNotFound возвращается, когда стол не найден
	ErrDeskNotFound = errors.New("create_booking: desk not found")

	// ErrDeskNotBookable возвращается для столов, закрытых для бронирования
	ErrDeskNotBookable = errors.New("create_booking: desk is not bookable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
