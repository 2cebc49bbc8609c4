package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/wanderlust/wanderlust-api/internal/model"
)

// ReviewRepo persists rows of the 'reviews' table.  Review membership
// in a listing is tracked by ListingRepo; this repository only owns the
// review bodies themselves.
type ReviewRepo struct{ db *sql.DB }

func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// Create inserts a review and populates its generated ID.
func (r *ReviewRepo) Create(ctx context.Context, rev *model.Review) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO reviews (author_id, body, rating) VALUES (?,?,?)",
		rev.AuthorID, rev.Body, rev.Rating)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rev.ID = uint64(id)
	return nil
}

// GetByID retrieves a review; ErrReviewNotFound when absent.
func (r *ReviewRepo) GetByID(ctx context.Context, id uint64) (model.Review, error) {
	var rev model.Review
	err := r.db.QueryRowContext(ctx,
		"SELECT id, author_id, body, rating, created_at FROM reviews WHERE id=? LIMIT 1",
		id).Scan(&rev.ID, &rev.AuthorID, &rev.Body, &rev.Rating, &rev.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Review{}, ErrReviewNotFound
	}
	return rev, err
}

// ListByIDs loads reviews for the given identifiers, preserving the
// order of ids (the listing's ordered set).  Missing IDs are skipped:
// referential integrity is application-maintained and a crash between
// the detach and delete steps can leave dangling references.
func (r *ReviewRepo) ListByIDs(ctx context.Context, ids []uint64) ([]model.Review, error) {
	if len(ids) == 0 {
		return []model.Review{}, nil
	}
	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, author_id, body, rating, created_at FROM reviews WHERE id IN ("+
			strings.Join(placeholders, ",")+")", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	byID := make(map[uint64]model.Review, len(ids))
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(&rev.ID, &rev.AuthorID, &rev.Body, &rev.Rating, &rev.CreatedAt); err != nil {
			return nil, err
		}
		byID[rev.ID] = rev
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	out := make([]model.Review, 0, len(ids))
	for _, id := range ids {
		if rev, ok := byID[id]; ok {
			out = append(out, rev)
		}
	}
	return out, nil
}

// Delete removes a single review row.
func (r *ReviewRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM reviews WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// DeleteMany removes the given review rows in one statement.  Used by
// the hard-delete cascade hook; an empty slice is a no-op.
func (r *ReviewRepo) DeleteMany(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM reviews WHERE id IN ("+strings.Join(placeholders, ",")+")", args...)
	return err
}
