package models

import "time"

const (
	NotificationWarning = "warning"
	NotificationSuccess = "success"
	NotificationInfo    = "info"
)

type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
