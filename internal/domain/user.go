package domain

import "time"

// User учётная запись сотрудника. Создаётся при первом входе через
// корпоративный IdP или через явную регистрацию; в нормальном флоу не удаляется.
type User struct {
	ID         int64
	Email      string // уникальный
	Name       *string
	Image      *string
	Role       string
	Department string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
