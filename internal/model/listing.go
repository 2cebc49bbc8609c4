package model

import "time"

// Listing represents a bookable property record as stored in the
// `listings` table.  A listing belongs to exactly one owner and
// references an ordered set of reviews through the `listing_reviews`
// join table.  The IsDeleted flag implements soft deletion: a trashed
// listing stays fetchable by ID but is excluded from the default
// enumeration.
//
// Fields:
//  ID            – primary key identifier.
//  OwnerID       – user ID of the listing owner.
//  Title         – short display title.
//  Description   – free-form description text.
//  Price         – nightly rate in dollars, always positive.
//  Location      – city / place name used for geocoding.
//  Country       – country name.
//  ImageFilename – stored image identifier (empty when none uploaded).
//  ImageURL      – public URL of the listing image.
//  Latitude      – geocoded point latitude.
//  Longitude     – geocoded point longitude.
//  IsDeleted     – soft-delete flag, false for active listings.
//  CreatedAt     – creation timestamp.
type Listing struct {
	ID            uint64    `json:"id"`             // listings.id
	OwnerID       uint64    `json:"owner_id"`       // listings.owner_id
	Title         string    `json:"title"`          // listings.title
	Description   string    `json:"description"`    // listings.description
	Price         float64   `json:"price"`          // listings.price
	Location      string    `json:"location"`       // listings.location
	Country       string    `json:"country"`        // listings.country
	ImageFilename string    `json:"image_filename"` // listings.image_filename
	ImageURL      string    `json:"image_url"`      // listings.image_url
	Latitude      float64   `json:"latitude"`       // listings.latitude
	Longitude     float64   `json:"longitude"`      // listings.longitude
	IsDeleted     bool      `json:"is_deleted"`     // listings.is_deleted
	CreatedAt     time.Time `json:"created_at"`     // listings.created_at
}

// DefaultImageURL is served for listings created without an uploaded
// image, matching the placeholder behaviour of the original site.
const DefaultImageURL = "https://tchelete.com/wp-content/uploads/2023/06/working-at-airbnb-1024x768-1-758x569.jpg"
