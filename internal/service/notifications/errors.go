package notifications

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrNotificationNotFound возвращается, когда уведомление не найдено
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
