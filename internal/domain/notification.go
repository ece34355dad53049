package domain

import "time"

// NotificationType тип уведомления
type NotificationType string

const (
	NotificationWelcome          NotificationType = "WELCOME"
	NotificationBookingConfirmed NotificationType = "BOOKING_CONFIRMED"
)

// Notification информационное сообщение пользователю.
// Никаких инвариантов, кроме принадлежности ровно одному пользователю.
type Notification struct {
	ID        int64
	UserID    int64
	Type      NotificationType
	Title     string
	Message   string
	IsRead    bool
	ReadAt    *time.Time
	CreatedAt time.Time
}
