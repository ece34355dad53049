package models

import (
	"time"

	"github.com/inalogystics/DeskBookingService/internal/domain"
)

// NotificationResponse уведомление в ответе API
type NotificationResponse struct {
	ID        int64   `json:"id"`
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	IsRead    bool    `json:"isRead"`
	ReadAt    *string `json:"readAt,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// NotificationListResponse список уведомлений с числом непрочитанных
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// MarkAllReadResponse результат массовой отметки прочитанным
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

// FromDomainNotification конвертирует доменное уведомление в модель ответа
func FromDomainNotification(n *domain.Notification) *NotificationResponse {
	resp := &NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		readAt := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &readAt
	}
	return resp
}

// FromDomainNotificationList конвертирует список доменных уведомлений
func FromDomainNotificationList(notifications []*domain.Notification) *NotificationListResponse {
	result := &NotificationListResponse{
		Notifications: make([]NotificationResponse, 0, len(notifications)),
	}
	for _, n := range notifications {
		result.Notifications = append(result.Notifications, *FromDomainNotification(n))
		if !n.IsRead {
			result.UnreadCount++
		}
	}
	return result
}
