package repository

import (
	"context"
	"database/sql"

	"github.com/wanderlust/wanderlust-api/internal/model"
)

// ListingRepo provides CRUD and lifecycle operations for listings.  The
// soft-delete flag lives on the listing row itself, so every state
// transition is a single-row write; active and trashed enumerations are
// plain predicate filters over the same table.  The ordered review set
// is kept in the listing_reviews join table with an explicit position
// column; integrity is maintained here in the application, never by
// foreign keys.
type ListingRepo struct {
	db *sql.DB
}

// NewListingRepo returns a new ListingRepo bound to the given database.
func NewListingRepo(db *sql.DB) *ListingRepo { return &ListingRepo{db: db} }

const listingCols = "id, owner_id, title, description, price, location, country, image_filename, image_url, latitude, longitude, is_deleted, created_at"

func scanListing(row interface{ Scan(...any) error }, l *model.Listing) error {
	return row.Scan(&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Price,
		&l.Location, &l.Country, &l.ImageFilename, &l.ImageURL,
		&l.Latitude, &l.Longitude, &l.IsDeleted, &l.CreatedAt)
}

// Create inserts a listing and populates its generated ID.  New
// listings are always active.
func (r *ListingRepo) Create(ctx context.Context, l *model.Listing) error {
	if l.ImageURL == "" {
		l.ImageURL = model.DefaultImageURL
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO listings
		   (owner_id, title, description, price, location, country,
		    image_filename, image_url, latitude, longitude, is_deleted)
		 VALUES (?,?,?,?,?,?,?,?,?,?,0)`,
		l.OwnerID, l.Title, l.Description, l.Price, l.Location, l.Country,
		l.ImageFilename, l.ImageURL, l.Latitude, l.Longitude)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	l.ID = uint64(id)
	return nil
}

// GetByID retrieves a listing regardless of its soft-delete state.  It
// returns ErrListingNotFound when no row exists; callers decide what a
// trashed listing means for their operation.
func (r *ListingRepo) GetByID(ctx context.Context, id uint64) (model.Listing, error) {
	var l model.Listing
	err := scanListing(r.db.QueryRowContext(ctx,
		"SELECT "+listingCols+" FROM listings WHERE id=? LIMIT 1", id), &l)
	if err == sql.ErrNoRows {
		return model.Listing{}, ErrListingNotFound
	}
	return l, err
}

// ListActive returns all non-trashed listings, newest first.  This is
// the default enumeration shown on the index page.
func (r *ListingRepo) ListActive(ctx context.Context) ([]model.Listing, error) {
	return r.list(ctx, false)
}

// ListTrashed returns only soft-deleted listings for the trash view.
func (r *ListingRepo) ListTrashed(ctx context.Context) ([]model.Listing, error) {
	return r.list(ctx, true)
}

func (r *ListingRepo) list(ctx context.Context, deleted bool) ([]model.Listing, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+listingCols+" FROM listings WHERE is_deleted=? ORDER BY created_at DESC", deleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Listing, 0)
	for rows.Next() {
		var l model.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Update rewrites the editable fields of a listing.
func (r *ListingRepo) Update(ctx context.Context, l *model.Listing) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE listings SET
		   title=?, description=?, price=?, location=?, country=?,
		   latitude=?, longitude=?
		 WHERE id=?`,
		l.Title, l.Description, l.Price, l.Location, l.Country,
		l.Latitude, l.Longitude, l.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Also hit when the values did not change; re-check existence.
		if _, err := r.GetByID(ctx, l.ID); err != nil {
			return err
		}
	}
	return nil
}

// SetDeleted flips the soft-delete flag.  Trashing and restoring are
// the same single-row write with opposite values.
func (r *ListingRepo) SetDeleted(ctx context.Context, id uint64, deleted bool) error {
	_, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		"UPDATE listings SET is_deleted=? WHERE id=?", deleted, id)
	return err
}

// SetImage records the uploaded image reference on a listing.
func (r *ListingRepo) SetImage(ctx context.Context, id uint64, filename, url string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE listings SET image_filename=?, image_url=? WHERE id=?", filename, url, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// ReviewIDs returns the listing's review identifiers in their stored
// order.
func (r *ListingRepo) ReviewIDs(ctx context.Context, listingID uint64) ([]uint64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT review_id FROM listing_reviews WHERE listing_id=? ORDER BY position", listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ids := make([]uint64, 0)
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AttachReview appends a review to the end of the listing's ordered
// set.  The position is derived from the current maximum; the unique
// (listing_id, review_id) index keeps the set free of duplicates.
func (r *ListingRepo) AttachReview(ctx context.Context, listingID, reviewID uint64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO listing_reviews (listing_id, review_id, position)
		 SELECT ?, ?, COALESCE(MAX(position)+1, 0) FROM listing_reviews WHERE listing_id=?`,
		listingID, reviewID, listingID)
	return err
}

// DetachReview pulls a review identifier from the listing's set.  It
// returns ErrReviewNotFound when the review was not in the set.
func (r *ListingRepo) DetachReview(ctx context.Context, listingID, reviewID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM listing_reviews WHERE listing_id=? AND review_id=?", listingID, reviewID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// HardDelete permanently removes a listing and its review-set rows and
// returns the snapshot of review IDs that were attached, so post-delete
// hooks can cascade.  The steps are sequential single statements; the
// cascade itself is the hooks' job, not an implicit trigger.
func (r *ListingRepo) HardDelete(ctx context.Context, id uint64) ([]uint64, error) {
	reviewIDs, err := r.ReviewIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	res, err := r.db.ExecContext(ctx, "DELETE FROM listings WHERE id=?", id)
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrListingNotFound
	}
	_, err = r.db.ExecContext(ctx, "DELETE FROM listing_reviews WHERE listing_id=?", id)
	return reviewIDs, err
}
