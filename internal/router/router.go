package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	IssueToken(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	GetUserBookings(c *ginext.Context)
	CreateMonastery(c *ginext.Context)
	GetMonastery(c *ginext.Context)
	ListMonasteries(c *ginext.Context)
	CreateSlot(c *ginext.Context)
	ListMonasterySlots(c *ginext.Context)
	ListSlots(c *ginext.Context)
	GetSlot(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	TransitionBooking(c *ginext.Context)
	GetBookingActions(c *ginext.Context)
	GetBookingHistory(c *ginext.Context)
}

// InitRouter wires the public catalogue routes and the authenticated
// workflow routes. The auth middleware guards only the routes that act on
// behalf of a user.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.POST("/auth/token", h.IssueToken)

		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id/bookings", auth, h.GetUserBookings)

		// Monasteries
		api.POST("/monasteries", auth, h.CreateMonastery)
		api.GET("/monasteries", h.ListMonasteries)
		api.GET("/monasteries/:id", h.GetMonastery)
		api.POST("/monasteries/:id/slots", auth, h.CreateSlot)
		api.GET("/monasteries/:id/slots", h.ListMonasterySlots)

		// Slots
		api.GET("/slots", h.ListSlots)
		api.GET("/slots/:id", h.GetSlot)
		api.POST("/slots/:id/bookings", auth, h.CreateBooking)

		// Booking workflow
		api.POST("/bookings/:id/transition", auth, h.TransitionBooking)
		api.GET("/bookings/:id/actions", auth, h.GetBookingActions)
		api.GET("/bookings/:id/history", auth, h.GetBookingHistory)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
