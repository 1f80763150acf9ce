package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/assist-notify/internal/api/handlers/notification"
	"github.com/aliskhannn/assist-notify/internal/api/handlers/settings"
)

// New builds the HTTP router consumed by the dashboard UI.
func New(notif *notification.Handler, set *settings.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")

	n := api.Group("/notifications")
	n.GET("", notif.List)
	n.GET("/groups", notif.Groups)
	n.GET("/buckets", notif.Buckets)
	n.POST("/read-all", notif.MarkAllRead)
	n.POST("/:id/read", notif.MarkRead)
	n.POST("/schedule", notif.Schedule)
	n.DELETE("/schedule/:id", notif.CancelScheduled)
	n.DELETE("/:id", notif.Clear)
	n.DELETE("", notif.ClearAll)

	s := api.Group("/settings")
	s.GET("", set.Get)
	s.PUT("", set.Update)
	s.POST("/reset", set.Reset)

	return e
}
