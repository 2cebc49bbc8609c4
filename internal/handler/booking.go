package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wanderlust/wanderlust-api/internal/flash"
	"github.com/wanderlust/wanderlust-api/internal/model"
	"github.com/wanderlust/wanderlust-api/internal/pricing"
	"github.com/wanderlust/wanderlust-api/internal/queue"
	"github.com/wanderlust/wanderlust-api/internal/repository"
	queue_publisher "github.com/wanderlust/wanderlust-api/internal/service"
)

// BookingHandler covers booking a stay, listing a user's bookings and
// cancelling one.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Listings *repository.ListingRepo
	// Publish sends the confirmation event; swapped out in tests.
	// A publish failure never fails the booking.
	Publish func(c echo.Context, ev queue.BookingConfirmedEvent)
}

func NewBookingHandler(b *repository.BookingRepo, l *repository.ListingRepo) *BookingHandler {
	return &BookingHandler{
		Bookings: b,
		Listings: l,
		Publish: func(c echo.Context, ev queue.BookingConfirmedEvent) {
			if err := queue_publisher.PublishBookingConfirmed(c.Request().Context(), ev); err != nil {
				c.Logger().Warnf("publish booking.confirmed: %v", err)
			}
		},
	}
}

type bookingForm struct {
	CheckIn  string `json:"checkIn" form:"checkIn"`
	CheckOut string `json:"checkOut" form:"checkOut"`
	Guests   int    `json:"guests" form:"guests"`
}

// Book handles POST /bookings/:id/book.  The total is computed
// server-side from the listing's current rate; whatever price the
// client may have displayed is ignored.
func (h *BookingHandler) Book(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	listingID, err := pathID(c, "id")
	if err != nil {
		return redirectWithError(c, "Listing not found!", "/listings")
	}
	var f bookingForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	fields := map[string]string{}
	checkIn, err := pricing.ParseDate(f.CheckIn)
	if err != nil {
		fields["checkIn"] = "check-in must be a valid date (YYYY-MM-DD)"
	}
	checkOut, err := pricing.ParseDate(f.CheckOut)
	if err != nil {
		fields["checkOut"] = "check-out must be a valid date (YYYY-MM-DD)"
	}
	if f.Guests < 1 {
		fields["guests"] = "at least one guest is required"
	}
	if len(fields) > 0 {
		return validationFailed(c, fields)
	}

	ctx := c.Request().Context()
	// Trashed listings stay bookable; only a missing row aborts.
	l, err := h.Listings.GetByID(ctx, listingID)
	if err != nil {
		if err == repository.ErrListingNotFound {
			return redirectWithError(c, "Listing not found!", "/listings")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	q := pricing.QuoteStay(l.Price, checkIn, checkOut)
	b := model.Booking{
		UserID:     uid,
		ListingID:  listingID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     f.Guests,
		TotalPrice: q.Total,
	}
	if err := h.Bookings.Create(ctx, &b); err != nil {
		return redirectWithError(c, "Something went wrong while booking. Please try again.", listingPath(listingID))
	}

	h.Publish(c, queue.BookingConfirmedEvent{
		BookingID:    b.ID,
		UserID:       uid,
		ListingID:    listingID,
		ListingTitle: l.Title,
		Location:     l.Location,
		Country:      l.Country,
		CheckIn:      checkIn.Format(pricing.DateLayout),
		CheckOut:     checkOut.Format(pricing.DateLayout),
		Guests:       f.Guests,
		Nights:       q.Nights,
		TotalPrice:   q.Total,
		ConfirmedAt:  time.Now().UTC().Format(time.RFC3339),
	})

	return redirectWithSuccess(c, confirmationMessage(q), listingPath(listingID))
}

// MyBookings handles GET /bookings/my-bookings, newest first.
// Bookings whose listing was hard-deleted keep their row; the listing
// fields come back empty for those.
func (h *BookingHandler) MyBookings(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookings, err := h.Bookings.ListByUser(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"bookings": bookings,
		"notice":   flash.PopAll(c),
	})
}

// Cancel handles DELETE /bookings/:id.  The delete is unconditional
// given a valid ID; there is no ownership check on this route.
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return redirectWithError(c, "Booking not found!", "/bookings/my-bookings")
	}
	if err := h.Bookings.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrBookingNotFound {
			return redirectWithError(c, "Booking not found!", "/bookings/my-bookings")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return redirectWithSuccess(c, "Booking cancelled successfully!", "/bookings/my-bookings")
}

// confirmationMessage renders the flash shown after a successful
// booking, e.g. "Booking confirmed! Total: $300.00 for 3 nights."
func confirmationMessage(q pricing.Quote) string {
	noun := "nights"
	if q.Nights == 1 {
		noun = "night"
	}
	return fmt.Sprintf("Booking confirmed! Total: $%.2f for %d %s.", q.Total, q.Nights, noun)
}
