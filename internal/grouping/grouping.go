// Package grouping derives read-only grouped views over the notification
// collection. Groups are recomputed from scratch on every change and never
// mutated in place.
package grouping

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/aliskhannn/assist-notify/internal/model"
)

// Group is a derived bucket of notifications sharing a source category and a
// local calendar day.
type Group struct {
	ID              string               `json:"id"`
	Type            model.Type           `json:"type"`
	Notifications   []model.Notification `json:"notifications"`
	UnreadCount     int                  `json:"unread_count"`
	LatestTimestamp time.Time            `json:"latest_timestamp"`
}

// Groups partitions list by (type, calendar day of timestamp), accumulating
// members in input order, unread counts and the latest member timestamp, and
// returns the buckets sorted by latest timestamp descending.
func Groups(list []model.Notification) []Group {
	index := make(map[string]int)
	var groups []Group

	for _, n := range list {
		key := fmt.Sprintf("%s-%s", n.Type, n.Timestamp.Format("2006-01-02"))

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{
				ID:              key,
				Type:            n.Type,
				LatestTimestamp: n.Timestamp,
			})
		}

		groups[i].Notifications = append(groups[i].Notifications, n)
		if !n.Read {
			groups[i].UnreadCount++
		}
		if n.Timestamp.After(groups[i].LatestTimestamp) {
			groups[i].LatestTimestamp = n.Timestamp
		}
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].LatestTimestamp.After(groups[b].LatestTimestamp)
	})

	return groups
}

// Buckets partitions a flat notification list by recency relative to now.
// It coexists with the type+day grouping and is not derived from it.
type Buckets struct {
	Today     []model.Notification `json:"today"`
	Yesterday []model.Notification `json:"yesterday"`
	ThisWeek  []model.Notification `json:"this_week"`
	Older     []model.Notification `json:"older"`
}

// Bucketize classifies each notification as today, yesterday, earlier this
// week or older, using calendar comparisons in now's location. Weeks start
// on Sunday.
func Bucketize(list []model.Notification, now time.Time) Buckets {
	var b Buckets

	for _, n := range list {
		ts := n.Timestamp.In(now.Location())

		switch {
		case sameDay(ts, now):
			b.Today = append(b.Today, n)
		case sameDay(ts, now.AddDate(0, 0, -1)):
			b.Yesterday = append(b.Yesterday, n)
		case sameWeek(ts, now):
			b.ThisWeek = append(b.ThisWeek, n)
		default:
			b.Older = append(b.Older, n)
		}
	}

	return b
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

func sameWeek(t, now time.Time) bool {
	start := startOfWeek(now)
	end := start.AddDate(0, 0, 7)

	return !t.Before(start) && t.Before(end)
}

func startOfWeek(t time.Time) time.Time {
	y, m, d := t.AddDate(0, 0, -int(t.Weekday())).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

type collection interface {
	Notifications() []model.Notification
	Version() uint64
}

// Engine memoizes the type+day grouping against the collection's version
// token, recomputing only when the underlying collection has changed.
type Engine struct {
	source collection

	mu      sync.Mutex
	version uint64
	fresh   bool
	groups  []Group
}

// NewEngine creates a grouping engine reading from source.
func NewEngine(source collection) *Engine {
	return &Engine{source: source}
}

// Groups returns the current grouped view, recomputing it if the collection
// changed since the last call.
func (e *Engine) Groups() []Group {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := e.source.Version()
	if !e.fresh || v != e.version {
		e.groups = Groups(e.source.Notifications())
		e.version = v
		e.fresh = true
	}

	return e.groups
}
