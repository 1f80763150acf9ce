package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/assist-notify/internal/api/dto"
	"github.com/aliskhannn/assist-notify/internal/api/respond"
	"github.com/aliskhannn/assist-notify/internal/settings"
)

type settingsStore interface {
	Snapshot() settings.Settings
	Update(ctx context.Context, mutate func(*settings.Settings)) settings.Settings
	Reset(ctx context.Context) settings.Settings
}

// Handler exposes the user settings to the dashboard UI.
type Handler struct {
	store settingsStore
}

// NewHandler creates a settings handler.
func NewHandler(store settingsStore) *Handler {
	return &Handler{store: store}
}

// Get returns the current settings snapshot.
func (h *Handler) Get(c *ginext.Context) {
	respond.OK(c.Writer, h.store.Snapshot())
}

// Update replaces the settings sections present in the request body and
// returns the resulting snapshot.
func (h *Handler) Update(c *ginext.Context) {
	var req dto.UpdateSettingsRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if req.Notifications != nil {
		v := req.Notifications.Volume
		if v < 0 || v > 100 {
			zlog.Logger.Warn().Int("volume", v).Msg("volume out of range")
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("volume must be between 0 and 100"))
			return
		}
	}

	updated := h.store.Update(c.Request.Context(), func(s *settings.Settings) {
		if req.Notifications != nil {
			s.Notifications = *req.Notifications
		}
		if req.Email != nil {
			s.Email = *req.Email
		}
	})

	respond.OK(c.Writer, updated)
}

// Reset restores the built-in defaults.
func (h *Handler) Reset(c *ginext.Context) {
	respond.OK(c.Writer, h.store.Reset(c.Request.Context()))
}
