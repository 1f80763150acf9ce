package notification

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/assist-notify/internal/api/dto"
	"github.com/aliskhannn/assist-notify/internal/api/respond"
	"github.com/aliskhannn/assist-notify/internal/grouping"
	"github.com/aliskhannn/assist-notify/internal/model"
)

type notificationStore interface {
	Notifications() []model.Notification
	UnreadCount() int
	MarkAsRead(id uuid.UUID)
	MarkAllAsRead()
	Clear(id uuid.UUID)
	ClearAll()
	Schedule(n model.Notification, scheduledFor time.Time) model.Notification
	CancelScheduled(id uuid.UUID)
}

type groupSource interface {
	Groups() []grouping.Group
}

// Handler exposes the notification store and its derived views to the
// dashboard UI. Store mutations are error-free by contract, so unknown ids
// answer 200 like any other no-op.
type Handler struct {
	store     notificationStore
	groups    groupSource
	validator *validator.Validate
}

// NewHandler creates a notification handler.
func NewHandler(store notificationStore, groups groupSource, v *validator.Validate) *Handler {
	return &Handler{
		store:     store,
		groups:    groups,
		validator: v,
	}
}

type listResponse struct {
	Notifications []model.Notification `json:"notifications"`
	UnreadCount   int                  `json:"unread_count"`
}

// List returns the flat collection, newest first, with the unread counter.
func (h *Handler) List(c *ginext.Context) {
	respond.OK(c.Writer, listResponse{
		Notifications: h.store.Notifications(),
		UnreadCount:   h.store.UnreadCount(),
	})
}

// Groups returns the type+day grouped view.
func (h *Handler) Groups(c *ginext.Context) {
	respond.OK(c.Writer, h.groups.Groups())
}

// Buckets returns the recency-bucketed view.
func (h *Handler) Buckets(c *ginext.Context) {
	respond.OK(c.Writer, grouping.Bucketize(h.store.Notifications(), time.Now()))
}

// MarkRead marks one notification read.
func (h *Handler) MarkRead(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	h.store.MarkAsRead(id)
	respond.OK(c.Writer, "marked as read")
}

// MarkAllRead marks every notification read.
func (h *Handler) MarkAllRead(c *ginext.Context) {
	h.store.MarkAllAsRead()
	respond.OK(c.Writer, "all marked as read")
}

// Clear removes one notification.
func (h *Handler) Clear(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	h.store.Clear(id)
	respond.OK(c.Writer, "cleared")
}

// ClearAll empties the collection.
func (h *Handler) ClearAll(c *ginext.Context) {
	h.store.ClearAll()
	respond.OK(c.Writer, "cleared all")
}

// Schedule creates a pending notification due at the requested instant.
func (h *Handler) Schedule(c *ginext.Context) {
	var req dto.ScheduleRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	scheduledFor, err := time.Parse(time.RFC3339, req.ScheduledFor)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("scheduled_for", req.ScheduledFor).Msg("failed to parse due time")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid scheduled_for, want RFC 3339"))
		return
	}

	n := h.store.Schedule(model.Notification{
		Type:    model.Type(req.Type),
		Title:   req.Title,
		Message: req.Message,
		Data:    req.Data,
	}, scheduledFor)

	respond.Created(c.Writer, n)
}

// CancelScheduled removes a pending notification before it comes due.
func (h *Handler) CancelScheduled(c *ginext.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	h.store.CancelScheduled(id)
	respond.OK(c.Writer, "scheduled notification cancelled")
}

func (h *Handler) parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}
