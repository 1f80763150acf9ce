package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/assist-notify/internal/model"
)

// Store is the in-memory ordered notification collection and unread counter.
// It is the sole owner of both; grouped views and delivery decisions are
// computed elsewhere from its snapshots.
//
// The unread counter counts active (non-pending) unread items only: a
// scheduled notification is counted when the sweep promotes it, not when it
// is created ("unread" means delivered and unread).
//
// Every mutation is a no-op on unknown or inapplicable ids; none of them can
// fail or return an error.
type Store struct {
	mu      sync.RWMutex
	items   []model.Notification // newest first
	unread  int
	version uint64
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Ingest prepends a newly arrived notification and counts it as unread.
// A missing id or timestamp is assigned here so the collection invariants
// hold regardless of what the remote origin sent.
func (s *Store) Ingest(n model.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}
	n.Read = false
	n.ScheduledFor = nil

	s.items = append([]model.Notification{n}, s.items...)
	s.unread++
	s.version++
}

// MarkAsRead marks the matching notification read. The counter is only
// decremented for an active unread item; pending items were never counted.
func (s *Store) MarkAsRead(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}

		if s.items[i].Read {
			return
		}

		s.items[i].Read = true
		if !s.items[i].Pending() && s.unread > 0 {
			s.unread--
		}
		s.version++
		return
	}
}

// MarkAllAsRead marks every notification read and zeroes the counter.
func (s *Store) MarkAllAsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		s.items[i].Read = true
	}
	s.unread = 0
	s.version++
}

// Clear removes the matching notification, adjusting the counter if it was
// an active unread item.
func (s *Store) Clear(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}

		if !s.items[i].Read && !s.items[i].Pending() && s.unread > 0 {
			s.unread--
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		s.version++
		return
	}
}

// ClearAll empties the collection and zeroes the counter.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.unread = 0
	s.version++
}

// Schedule constructs a pending notification due at scheduledFor and
// prepends it. The unread counter is untouched until the sweep promotes the
// item. The constructed notification is returned.
func (s *Store) Schedule(n model.Notification, scheduledFor time.Time) model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	due := scheduledFor
	n.ID = uuid.New()
	n.Timestamp = time.Now()
	n.Read = false
	n.ScheduledFor = &due

	s.items = append([]model.Notification{n}, s.items...)
	s.version++

	return n
}

// CancelScheduled removes a pending notification by id. Active notifications
// and unknown ids are left untouched.
func (s *Store) CancelScheduled(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}

		if !s.items[i].Pending() {
			return
		}

		s.items = append(s.items[:i], s.items[i+1:]...)
		s.version++
		return
	}
}

// PromoteDue transitions every pending notification whose due time has
// passed to active, counting the still-unread ones, and returns those for
// delivery. All same-tick promotions commit together before the lock is
// released, so readers never observe a partial sweep.
func (s *Store) PromoteDue(now time.Time) []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	var promoted []model.Notification
	changed := false

	for i := range s.items {
		if !s.items[i].Due(now) {
			continue
		}

		s.items[i].ScheduledFor = nil
		changed = true

		if !s.items[i].Read {
			s.unread++
			promoted = append(promoted, s.items[i])
		}
	}

	if changed {
		s.version++
	}

	return promoted
}

// Notifications returns a copy of the collection, newest first.
func (s *Store) Notifications() []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Notification, len(s.items))
	copy(out, s.items)

	return out
}

// UnreadCount returns the number of active unread notifications.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.unread
}

// Version returns a token that changes whenever the collection does.
// Derived views recompute only when the token moves.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.version
}
