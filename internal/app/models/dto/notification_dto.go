package dto

import (
	"time"

	"github.com/volunteerhub/volunteerhub/internal/app/models"
)

// NotificationResponse is the public view of a notification
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"date"`
}

// FromNotification converts a models.Notification to a NotificationResponse
func FromNotification(n *models.Notification) NotificationResponse {
	if n == nil {
		return NotificationResponse{}
	}

	return NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
