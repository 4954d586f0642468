package internal

import "hubble-workspace/internal/workspace/domain"

type NotificationMessage struct {
	Type     string `json:"type"`
	Message  string `json:"message,omitempty"`
	Category string `json:"category,omitempty"`
	Open     bool   `json:"open"`
}

func ToNotificationMessage(event string, notification domain.Notification) NotificationMessage {
	return NotificationMessage{
		Type:     event,
		Message:  notification.Message,
		Category: string(notification.Category),
		Open:     notification.Open,
	}
}
