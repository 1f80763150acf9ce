// Package desktop raises native desktop alerts for delivered notifications.
package desktop

import (
	"github.com/gen2brain/beeep"
)

// Alerter raises title+body desktop alerts with a fixed icon.
type Alerter struct {
	icon string
}

// NewAlerter creates an alerter using the given icon resource.
func NewAlerter(icon string) *Alerter {
	return &Alerter{icon: icon}
}

// Alert shows a desktop notification. A platform that refuses (no
// notification daemon, permission denied) surfaces as an error; the caller
// is expected to skip silently.
func (a *Alerter) Alert(title, message string) error {
	return beeep.Notify(title, message, a.icon)
}
