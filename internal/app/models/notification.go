package models

import "time"

// Notification is a delivered message visible to its recipient
type Notification struct {
	ID          int64
	RecipientID int64
	Message     string
	Read        bool
	CreatedAt   time.Time
}

// OutboxMessage is a pending notification written in the same transaction
// as the state change that caused it. The dispatcher delivers it later;
// delivery failure never unwinds the transition.
type OutboxMessage struct {
	ID           int64
	RecipientID  int64
	Message      string
	DedupKey     string
	CreatedAt    time.Time
	DispatchedAt *time.Time
}
