package router

import (
	"github.com/labstack/echo/v4"

	"github.com/wanderlust/wanderlust-api/internal/handler"
)

// RegisterBookingRoutes wires the booking endpoints.  Booking a stay
// and viewing your bookings require a session; cancellation does not,
// mirroring the public cancel link the client exposes.
func RegisterBookingRoutes(e *echo.Echo, bh *handler.BookingHandler, auth echo.MiddlewareFunc) {
	e.POST("/bookings/:id/book", bh.Book, auth)
	e.GET("/bookings/my-bookings", bh.MyBookings, auth)
	e.DELETE("/bookings/:id", bh.Cancel)
}
