package identity

import "errors"

var (
	// ErrUnauthorized провайдер отверг токен доступа
	ErrUnauthorized = errors.New("identity client: access token rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("identity client: invalid response")
)
