package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/appointment-reminder/internal/api/handlers/reminder"
	"github.com/aliskhannn/appointment-reminder/internal/metrics"
)

func New(handler *reminder.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())
	e.Use(metrics.Middleware())

	e.GET("/metrics", metrics.GinHandler())

	appointments := e.Group("/api/appointments/:id/reminders")
	appointments.POST("", handler.Schedule)
	appointments.GET("", handler.List)
	appointments.DELETE("", handler.CancelForAppointment)

	reminders := e.Group("/api/reminders")
	reminders.POST("/retry", handler.Retry)
	reminders.GET("/analytics", handler.Analytics)
	reminders.GET("/:id/status", handler.GetStatus)
	reminders.DELETE("/:id", handler.Cancel)

	return e
}
