package dto

import (
	"encoding/json"

	"github.com/aliskhannn/assist-notify/internal/settings"
)

// ScheduleRequest creates a notification held until a future due time.
// ScheduledFor is an RFC 3339 instant.
type ScheduleRequest struct {
	Type         string          `json:"type" validate:"required,oneof=email file social"`
	Title        string          `json:"title" validate:"required"`
	Message      string          `json:"message" validate:"required"`
	Data         json.RawMessage `json:"data"`
	ScheduledFor string          `json:"scheduled_for" validate:"required"`
}

// UpdateSettingsRequest replaces whole settings sections; sections left nil
// are untouched.
type UpdateSettingsRequest struct {
	Notifications *settings.Notifications `json:"notifications"`
	Email         *settings.Email         `json:"email"`
}
