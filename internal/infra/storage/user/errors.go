package user

import "errors"

var (
	// ErrUserNotFound пользователь не найден
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrDuplicateUser пользователь с таким email уже существует
	ErrDuplicateUser = errors.New("user.repository: user with this email already exists")

	// ErrBuildQuery ошибка построения SQL-запроса
	ErrBuildQuery = errors.New("user.repository: build query error")

	// ErrExecQuery ошибка выполнения SQL-запроса
	ErrExecQuery = errors.New("user.repository: execute query error")

	// ErrScanRow ошибка чтения строки результата
	ErrScanRow = errors.New("user.repository: scan row error")
)
