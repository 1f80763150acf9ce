package settings

import (
	"time"
)

// QuietHours is a daily wall-clock window during which alert side effects
// are suppressed. Start and End are "HH:MM" local times; a window with
// Start > End wraps past midnight.
type QuietHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// Notifications holds the user preferences consulted on every delivery.
type Notifications struct {
	Enabled    bool       `json:"enabled"`
	Sound      bool       `json:"sound"`
	Browser    bool       `json:"browser"`
	Email      bool       `json:"email"`
	Volume     int        `json:"volume"` // 0-100
	QuietHours QuietHours `json:"quietHours"`
}

// Email holds the SMTP account used for the email alert channel.
// Port is kept as a string for compatibility with stored blobs.
type Email struct {
	Enabled  bool   `json:"enabled"`
	Server   string `json:"server"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Settings is the full user-preference snapshot consumed by the core.
type Settings struct {
	Notifications Notifications `json:"notifications"`
	Email         Email         `json:"email"`
}

// Defaults returns the built-in settings used on first run and as the base
// that stored blobs are merged over.
func Defaults() Settings {
	return Settings{
		Notifications: Notifications{
			Enabled: true,
			Sound:   true,
			Browser: true,
			Email:   false,
			Volume:  50,
			QuietHours: QuietHours{
				Enabled: false,
				Start:   "22:00",
				End:     "08:00",
			},
		},
		Email: Email{
			Enabled: false,
			Port:    "587",
		},
	}
}

// QuietNow reports whether now falls inside the configured quiet-hours
// window. Both boundaries are inclusive. Disabled or unparsable windows are
// never quiet.
func (s Settings) QuietNow(now time.Time) bool {
	q := s.Notifications.QuietHours
	if !q.Enabled {
		return false
	}

	start, err := parseClock(q.Start)
	if err != nil {
		return false
	}

	end, err := parseClock(q.End)
	if err != nil {
		return false
	}

	cur := now.Hour()*60 + now.Minute()

	if start <= end {
		return cur >= start && cur <= end
	}

	// Window wraps past midnight, e.g. 22:00-08:00.
	return cur >= start || cur <= end
}

// parseClock converts an "HH:MM" string to minutes since midnight.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}

	return t.Hour()*60 + t.Minute(), nil
}
