package notification

import "errors"

var (
	// ErrNotificationNotFound уведомление не найдено
	ErrNotificationNotFound = errors.New("notification.repository: notification not found")

	// ErrBuildQuery ошибка построения SQL-запроса
	ErrBuildQuery = errors.New("notification.repository: build query error")

	// ErrExecQuery ошибка выполнения SQL-запроса
	ErrExecQuery = errors.New("notification.repository: execute query error")

	// ErrScanRow ошибка чтения строки результата
	ErrScanRow = errors.New("notification.repository: scan row error")
)
