package models

import (
	"time"

	"github.com/inalogystics/DeskBookingService/internal/domain"
)

// CreateDeskRequest запрос на добавление стола на план этажа
type CreateDeskRequest struct {
	DeskNumber      string  `json:"deskNumber"`
	Floor           int     `json:"floor"`
	Zone            string  `json:"zone"`
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	HasMonitor      bool    `json:"hasMonitor"`
	HasStandingDesk bool    `json:"hasStandingDesk"`
	IsShared        bool    `json:"isShared"`
}

// DeskResponse стол в ответе API
type DeskResponse struct {
	ID              int64   `json:"id"`
	DeskNumber      string  `json:"deskNumber"`
	Floor           int     `json:"floor"`
	Zone            string  `json:"zone"`
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	HasMonitor      bool    `json:"hasMonitor"`
	HasStandingDesk bool    `json:"hasStandingDesk"`
	IsShared        bool    `json:"isShared"`
	IsActive        bool    `json:"isActive"`
	CreatedAt       string  `json:"createdAt"`
}

// ToDomainDesk конвертирует запрос в доменную модель
func (r *CreateDeskRequest) ToDomainDesk() *domain.Desk {
	return &domain.Desk{
		DeskNumber:      r.DeskNumber,
		Floor:           r.Floor,
		Zone:            r.Zone,
		X:               r.X,
		Y:               r.Y,
		HasMonitor:      r.HasMonitor,
		HasStandingDesk: r.HasStandingDesk,
		IsShared:        r.IsShared,
		IsActive:        true,
	}
}

// FromDomainDesk конвертирует доменный стол в модель ответа
func FromDomainDesk(d *domain.Desk) *DeskResponse {
	return &DeskResponse{
		ID:              d.ID,
		DeskNumber:      d.DeskNumber,
		Floor:           d.Floor,
		Zone:            d.Zone,
		X:               d.X,
		Y:               d.Y,
		HasMonitor:      d.HasMonitor,
		HasStandingDesk: d.HasStandingDesk,
		IsShared:        d.IsShared,
		IsActive:        d.IsActive,
		CreatedAt:       d.CreatedAt.Format(time.RFC3339),
	}
}
