package handler

import (
	"context"

	"github.com/wanderlust/wanderlust-api/internal/media"
	"github.com/wanderlust/wanderlust-api/internal/model"
	"github.com/wanderlust/wanderlust-api/internal/repository"
)

// ListingDeletedHook runs synchronously after a listing hard delete
// has been confirmed.  Hooks receive the deleted listing and the
// snapshot of review IDs that were attached to it.  Only the permanent
// delete path fires hooks; soft deletion never does.
type ListingDeletedHook func(ctx context.Context, l model.Listing, reviewIDs []uint64) error

// ReviewCascadeHook removes the listing's reviews.  This replaces the
// original implicit document-lifecycle trigger with an explicit,
// registered observer.
func ReviewCascadeHook(reviews *repository.ReviewRepo) ListingDeletedHook {
	return func(ctx context.Context, _ model.Listing, reviewIDs []uint64) error {
		return reviews.DeleteMany(ctx, reviewIDs)
	}
}

// ImageCleanupHook deletes the listing's stored image, if any.  A nil
// store makes this a no-op.
func ImageCleanupHook(store *media.Store) ListingDeletedHook {
	return func(ctx context.Context, l model.Listing, _ []uint64) error {
		if store == nil || l.ImageFilename == "" {
			return nil
		}
		return store.Delete(l.ImageFilename)
	}
}
