package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/assist-notify/internal/model"
)

// activeUnread counts items the unread counter is supposed to track.
func activeUnread(s *Store) int {
	count := 0
	for _, n := range s.Notifications() {
		if !n.Read && !n.Pending() {
			count++
		}
	}
	return count
}

func TestStore_Ingest(t *testing.T) {
	s := New()

	s.Ingest(model.Notification{Type: model.TypeEmail, Title: "A"})
	s.Ingest(model.Notification{Type: model.TypeFile, Title: "B"})

	list := s.Notifications()
	require.Len(t, list, 2)
	assert.Equal(t, "B", list[0].Title, "newest first")
	assert.Equal(t, "A", list[1].Title)
	assert.Equal(t, 2, s.UnreadCount())

	for _, n := range list {
		assert.NotEqual(t, uuid.Nil, n.ID)
		assert.False(t, n.Timestamp.IsZero())
		assert.False(t, n.Read)
		assert.False(t, n.Pending())
	}
	assert.NotEqual(t, list[0].ID, list[1].ID)
}

func TestStore_MarkAsRead(t *testing.T) {
	s := New()
	s.Ingest(model.Notification{Type: model.TypeEmail, Title: "A"})
	id := s.Notifications()[0].ID

	s.MarkAsRead(id)
	assert.True(t, s.Notifications()[0].Read)
	assert.Equal(t, 0, s.UnreadCount())

	// Already read and unknown ids are no-ops, and the counter never goes
	// negative.
	s.MarkAsRead(id)
	s.MarkAsRead(uuid.New())
	assert.Equal(t, 0, s.UnreadCount())
}

func TestStore_MarkAllAsRead(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s.Ingest(model.Notification{Type: model.TypeSocial, Title: "n"})
	}
	s.MarkAsRead(s.Notifications()[2].ID)

	s.MarkAllAsRead()

	assert.Equal(t, 0, s.UnreadCount())
	for _, n := range s.Notifications() {
		assert.True(t, n.Read)
	}
}

func TestStore_Clear(t *testing.T) {
	s := New()
	s.Ingest(model.Notification{Type: model.TypeEmail, Title: "A"})
	s.Ingest(model.Notification{Type: model.TypeEmail, Title: "B"})
	readID := s.Notifications()[0].ID
	s.MarkAsRead(readID)

	s.Clear(readID)
	assert.Len(t, s.Notifications(), 1)
	assert.Equal(t, 1, s.UnreadCount(), "clearing a read item leaves the counter alone")

	s.Clear(s.Notifications()[0].ID)
	assert.Empty(t, s.Notifications())
	assert.Equal(t, 0, s.UnreadCount())

	s.Clear(uuid.New())
	assert.Equal(t, 0, s.UnreadCount())
}

func TestStore_ClearAll(t *testing.T) {
	s := New()
	s.Ingest(model.Notification{Type: model.TypeEmail, Title: "A"})
	s.Ingest(model.Notification{Type: model.TypeFile, Title: "B"})

	s.ClearAll()

	assert.Empty(t, s.Notifications())
	assert.Equal(t, 0, s.UnreadCount())
}

func TestStore_CounterMatchesCollection(t *testing.T) {
	s := New()

	for i := 0; i < 10; i++ {
		s.Ingest(model.Notification{Type: model.TypeEmail, Title: "n"})
	}
	list := s.Notifications()
	s.MarkAsRead(list[0].ID)
	s.MarkAsRead(list[1].ID)
	s.Clear(list[2].ID)
	s.Clear(list[0].ID)
	s.MarkAsRead(uuid.New())

	assert.Equal(t, activeUnread(s), s.UnreadCount())
}

func TestStore_ScheduleThenCancel(t *testing.T) {
	s := New()

	n := s.Schedule(model.Notification{Type: model.TypeEmail, Title: "later"}, time.Now().Add(time.Hour))

	require.True(t, n.Pending())
	assert.NotEqual(t, uuid.Nil, n.ID)
	assert.Equal(t, 0, s.UnreadCount(), "scheduling does not count as unread")
	require.Len(t, s.Notifications(), 1)

	s.CancelScheduled(n.ID)

	assert.Empty(t, s.Notifications())
	assert.Empty(t, s.PromoteDue(time.Now().Add(2*time.Hour)), "cancelled item must never be promoted")
}

func TestStore_CancelScheduled_ActiveIsNoop(t *testing.T) {
	s := New()
	s.Ingest(model.Notification{Type: model.TypeFile, Title: "A"})
	id := s.Notifications()[0].ID

	s.CancelScheduled(id)

	assert.Len(t, s.Notifications(), 1, "active notifications cannot be cancelled")
}

func TestStore_PromoteDue(t *testing.T) {
	s := New()
	due := s.Schedule(model.Notification{Type: model.TypeSocial, Title: "due"}, time.Now().Add(-time.Second))
	notYet := s.Schedule(model.Notification{Type: model.TypeSocial, Title: "later"}, time.Now().Add(time.Hour))

	promoted := s.PromoteDue(time.Now())

	require.Len(t, promoted, 1)
	assert.Equal(t, due.ID, promoted[0].ID)
	assert.Equal(t, 1, s.UnreadCount(), "promotion counts the item as unread")

	for _, n := range s.Notifications() {
		switch n.ID {
		case due.ID:
			assert.False(t, n.Pending(), "promoted item has its due time cleared")
		case notYet.ID:
			assert.True(t, n.Pending())
		}
	}

	assert.Empty(t, s.PromoteDue(time.Now()), "an item is promoted at most once")
	assert.Equal(t, 1, s.UnreadCount())
}

func TestStore_PromoteDue_ReadPendingIsSilent(t *testing.T) {
	s := New()
	n := s.Schedule(model.Notification{Type: model.TypeEmail, Title: "quietly"}, time.Now().Add(-time.Second))
	s.MarkAsRead(n.ID)

	promoted := s.PromoteDue(time.Now())

	assert.Empty(t, promoted, "items read before coming due are not delivered")
	assert.Equal(t, 0, s.UnreadCount())
	assert.False(t, s.Notifications()[0].Pending())
}

func TestStore_Version(t *testing.T) {
	s := New()
	v0 := s.Version()

	s.Ingest(model.Notification{Type: model.TypeEmail, Title: "A"})
	v1 := s.Version()
	assert.NotEqual(t, v0, v1)

	// A no-op mutation leaves the token alone.
	s.MarkAsRead(uuid.New())
	assert.Equal(t, v1, s.Version())

	s.MarkAllAsRead()
	assert.NotEqual(t, v1, s.Version())
}
