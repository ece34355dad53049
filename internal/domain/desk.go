package domain

import "time"

// Desk физический стол на плане этажа
type Desk struct {
	ID              int64
	DeskNumber      string // например, "D10"; после посева не меняется
	Floor           int
	Zone            string  // например, "Open Space", "Private Office"
	X               float64 // координаты для плана этажа, в процентах
	Y               float64
	HasMonitor      bool
	HasStandingDesk bool
	IsShared        bool // закреплённые (не shared) столы бронировать нельзя
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsBookable возвращает true, если стол в принципе может быть забронирован
// (независимо от занятости на конкретную дату)
func (d *Desk) IsBookable() bool {
	return d.IsActive && d.IsShared
}
