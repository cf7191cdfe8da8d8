package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateSlot(c *ginext.Context)
	GetSlot(c *ginext.Context)
	ListSlots(c *ginext.Context)
	Reserve(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Slot catalog
		api.POST("/slots", h.CreateSlot)
		api.GET("/slots", h.ListSlots)
		api.GET("/slots/:id", h.GetSlot)

		// Reservations
		api.POST("/reservations", h.Reserve)
		api.GET("/bookings", h.ListMyBookings)
		api.GET("/bookings/:id", h.GetBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	metricsHandler := promhttp.Handler()
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
