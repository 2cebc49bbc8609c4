// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a stay is successfully booked.
// It carries enough detail for downstream consumers to log, notify, or
// feed analytics without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID    uint64  `json:"booking_id"`
	UserID       uint64  `json:"user_id"`
	ListingID    uint64  `json:"listing_id"`
	ListingTitle string  `json:"listing_title"`
	Location     string  `json:"location"`
	Country      string  `json:"country"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	Guests       int     `json:"guests"`
	Nights       int     `json:"nights"`
	TotalPrice   float64 `json:"total_price"`
	ConfirmedAt  string  `json:"confirmed_at"`
}
