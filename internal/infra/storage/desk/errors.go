package desk

import "errors"

var (
	// ErrDeskNotFound возвращается, когда стол не найден
	ErrDeskNotFound = errors.New("desk.repository: desk not found")

	// ErrDuplicateDeskNumber возвращается при попытке создать стол
	// с уже занятым номером
	ErrDuplicateDeskNumber = errors.New("desk.repository: desk number already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("desk.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("desk.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("desk.repository: failed to scan row")
)
