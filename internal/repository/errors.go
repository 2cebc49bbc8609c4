// Package repository implements MySQL persistence for users, sessions,
// listings, reviews and bookings.  This file defines sentinel errors
// shared across repositories so handlers can translate failures into
// the right user-facing response without inspecting SQL errors.
package repository

import "errors"

// ErrListingNotFound indicates that a listing was not located in the DB.
var ErrListingNotFound = errors.New("listing not found")

// ErrReviewNotFound indicates a missing review or a review not attached
// to the listing it was addressed through.
var ErrReviewNotFound = errors.New("review not found")

// ErrBookingNotFound indicates that a booking was not located in the DB.
var ErrBookingNotFound = errors.New("booking not found")

// ErrUsernameExists and ErrEmailExists signal unique-key conflicts at
// signup.  Handlers surface them as field-level validation messages.
var (
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
)
