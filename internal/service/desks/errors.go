package desks

import "errors"

var (
	// ErrDeskExists возвращается при попытке создать стол с занятым номером
	ErrDeskExists = errors.New("desk with this number already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
