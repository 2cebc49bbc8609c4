package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/wanderlust/wanderlust-api/internal/model"
)

// BookingRepo provides create/list/delete operations for bookings.
// Bookings are immutable once created; cancellation deletes the row.
// Each operation is a single statement, so a booking either fully
// persists or not at all.
type BookingRepo struct{ db *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create inserts a booking with its pre-computed total and populates
// the generated ID.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO bookings (user_id, listing_id, check_in, check_out, guests, total_price)
		 VALUES (?,?,?,?,?,?)`,
		b.UserID, b.ListingID, b.CheckIn, b.CheckOut, b.Guests, b.TotalPrice)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// BookingDetail is a booking joined with its listing for the
// my-bookings page.  The listing columns are nullable because bookings
// survive a hard-deleted listing (integrity is application-maintained).
type BookingDetail struct {
	ID           uint64    `json:"id"`
	ListingID    uint64    `json:"listing_id"`
	ListingTitle *string   `json:"listing_title"`
	Location     *string   `json:"location"`
	Country      *string   `json:"country"`
	ImageURL     *string   `json:"image_url"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Guests       int       `json:"guests"`
	TotalPrice   float64   `json:"total_price"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListByUser returns the user's bookings with listing details, newest
// first.  When no bookings exist, an empty slice is returned.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	const q = `SELECT b.id, b.listing_id, l.title, l.location, l.country, l.image_url,
	                  b.check_in, b.check_out, b.guests, b.total_price, b.created_at
	           FROM bookings b
	           LEFT JOIN listings l ON l.id = b.listing_id
	           WHERE b.user_id = ?
	           ORDER BY b.created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]BookingDetail, 0)
	for rows.Next() {
		var d BookingDetail
		if err := rows.Scan(&d.ID, &d.ListingID, &d.ListingTitle, &d.Location, &d.Country,
			&d.ImageURL, &d.CheckIn, &d.CheckOut, &d.Guests, &d.TotalPrice, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Delete removes a booking unconditionally.  Deletion is irreversible;
// there is deliberately no ownership predicate here (see handlers).
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM bookings WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrBookingNotFound
	}
	return nil
}
