package model

import "time"

const (
	NotificationTypeInfo    = "info"
	NotificationTypeSuccess = "success"
	NotificationTypeWarning = "warning"
	NotificationTypeError   = "error"
	NotificationTypeOrder   = "order"
)

type Notification struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	IsRead         bool      `json:"isRead"`
	RelatedOrderID string    `json:"relatedOrderId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
