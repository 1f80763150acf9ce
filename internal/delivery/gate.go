// Package delivery decides, per newly active notification, which alert side
// effects fire. The gate is invoked exactly once per notification at the
// moment it becomes active and never retroactively.
package delivery

import (
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/assist-notify/internal/model"
	"github.com/aliskhannn/assist-notify/internal/settings"
)

// Player plays the alert tone at the given gain (0.0-1.0). Overlapping
// triggers restart playback rather than layer.
type Player interface {
	Play(gain float64) error
}

// Alerter raises a native desktop alert. Platform permission handling is the
// implementation's concern; a denial surfaces as an error and is skipped
// silently here.
type Alerter interface {
	Alert(title, message string) error
}

// Mailer sends a notification copy to the user's own mailbox.
type Mailer interface {
	Send(account settings.Email, subject, body string) error
}

type settingsSource interface {
	Snapshot() settings.Settings
}

// Gate evaluates active notifications against the current settings snapshot
// and fires sound, desktop and email alerts. Side-effect failures are logged
// and swallowed; the gate never blocks or fails the surrounding flow.
type Gate struct {
	settings settingsSource
	player   Player
	alerter  Alerter
	mailer   Mailer

	now func() time.Time
}

// New creates a delivery gate.
func New(src settingsSource, player Player, alerter Alerter, mailer Mailer) *Gate {
	return &Gate{
		settings: src,
		player:   player,
		alerter:  alerter,
		mailer:   mailer,
		now:      time.Now,
	}
}

// Deliver evaluates one active notification. Storage and counting have
// already happened by the time a notification reaches the gate; suppression
// here only silences the alerts.
func (g *Gate) Deliver(n model.Notification) {
	s := g.settings.Snapshot()

	if !s.Notifications.Enabled {
		return
	}

	if s.QuietNow(g.now()) {
		zlog.Logger.Debug().Str("id", n.ID.String()).Msg("quiet hours, suppressing alerts")
		return
	}

	if s.Notifications.Sound {
		gain := float64(s.Notifications.Volume) / 100
		if err := g.player.Play(gain); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to play notification sound")
		}
	}

	if s.Notifications.Browser {
		if err := g.alerter.Alert(n.Title, n.Message); err != nil {
			zlog.Logger.Warn().Err(err).Msg("failed to raise desktop alert")
		}
	}

	if s.Notifications.Email && s.Email.Enabled {
		if err := g.mailer.Send(s.Email, n.Title, n.Message); err != nil {
			zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to send email alert")
		}
	}
}
