package model

import "time"

type NotificationType = string

const (
	NotificationFollow NotificationType = "FOLLOW"
)

// Notification is immutable after creation except for IsRead,
// which flips false -> true once and never reverts.
type Notification struct {
	ID          int64
	RecipientID UserID
	SenderID    UserID
	Type        NotificationType
	Message     string
	IsRead      bool
	CreatedAt   time.Time

	// Denormalized sender fields for list and push payloads.
	SenderName   string
	SenderAvatar string
}
