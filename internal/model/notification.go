package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Type identifies which part of the dashboard a notification came from.
type Type string

const (
	TypeEmail  Type = "email"
	TypeFile   Type = "file"
	TypeSocial Type = "social"
)

// Valid reports whether t is one of the known source categories.
func (t Type) Valid() bool {
	switch t {
	case TypeEmail, TypeFile, TypeSocial:
		return true
	}
	return false
}

// Notification represents a single notification entity in the system.
type Notification struct {
	ID           uuid.UUID       `json:"id"`                      // unique identifier for the notification
	Type         Type            `json:"type"`                    // source category: "email", "file" or "social"
	Title        string          `json:"title"`                   // short display title
	Message      string          `json:"message"`                 // notification body text
	Timestamp    time.Time       `json:"timestamp"`               // creation time, immutable once set
	Read         bool            `json:"read"`                    // whether the user has seen this notification
	Data         json.RawMessage `json:"data,omitempty"`          // opaque payload for the UI action handlers, never interpreted here
	ScheduledFor *time.Time      `json:"scheduled_for,omitempty"` // future due time; non-nil means the notification is pending
	GroupID      string          `json:"group_id,omitempty"`      // reserved; grouped views are derived, not stored per item
}

// Pending reports whether the notification is held for future delivery.
func (n Notification) Pending() bool {
	return n.ScheduledFor != nil
}

// Due reports whether a pending notification has reached its due time.
func (n Notification) Due(now time.Time) bool {
	return n.ScheduledFor != nil && !n.ScheduledFor.After(now)
}
