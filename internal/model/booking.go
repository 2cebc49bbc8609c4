package model

import "time"

// Booking records a user's stay at a listing.  TotalPrice is derived
// exactly once, by the pricing package, when the booking is created;
// it is never recomputed afterwards.  Bookings have no update
// operation: they are created and, on cancellation, deleted.
//
// Fields:
//  ID         – primary key identifier.
//  UserID     – user who booked the stay.
//  ListingID  – listing being booked.
//  CheckIn    – first night of the stay (date only, UTC).
//  CheckOut   – departure date.
//  Guests     – number of guests, always positive.
//  TotalPrice – derived total in dollars, rounded to 2 decimals.
//  CreatedAt  – creation timestamp.
type Booking struct {
	ID         uint64    `json:"id"`          // bookings.id
	UserID     uint64    `json:"user_id"`     // bookings.user_id
	ListingID  uint64    `json:"listing_id"`  // bookings.listing_id
	CheckIn    time.Time `json:"check_in"`    // bookings.check_in
	CheckOut   time.Time `json:"check_out"`   // bookings.check_out
	Guests     int       `json:"guests"`      // bookings.guests
	TotalPrice float64   `json:"total_price"` // bookings.total_price
	CreatedAt  time.Time `json:"created_at"`  // bookings.created_at
}
