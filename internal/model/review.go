package model

import "time"

// Review is a user's review of a listing.  Reviews do not carry a
// listing column themselves; membership lives in the listing's ordered
// review set (listing_reviews), which the application maintains without
// foreign-key enforcement.
type Review struct {
	ID        uint64    `json:"id"`         // reviews.id
	AuthorID  uint64    `json:"author_id"`  // reviews.author_id
	Body      string    `json:"body"`       // reviews.body
	Rating    int       `json:"rating"`     // reviews.rating (1..5)
	CreatedAt time.Time `json:"created_at"` // reviews.created_at
}
