package router

import (
	"github.com/labstack/echo/v4"

	"github.com/wanderlust/wanderlust-api/internal/handler"
)

// RegisterListingRoutes wires the listing, review and image endpoints.
// Browsing is public; every mutation goes through the session
// middleware.  The cache middleware, when non-nil, fronts only the two
// enumeration routes, which are the hot read paths.
func RegisterListingRoutes(e *echo.Echo, lh *handler.ListingHandler, rh *handler.ReviewHandler, auth echo.MiddlewareFunc, cache echo.MiddlewareFunc) {
	browse := []echo.MiddlewareFunc{}
	if cache != nil {
		browse = append(browse, cache)
	}

	// Public browse endpoints.  The static segments (trash, new) must be
	// registered alongside /:id; Echo resolves static routes first.
	e.GET("/listings", lh.Index, browse...)
	e.GET("/listings/trash", lh.Trash, browse...)
	e.GET("/listings/:id", lh.Show)
	// Stored images are public too, referenced by the listing's image URL.
	e.GET("/images/:id", lh.ServeImage)

	// Everything below requires a session.
	g := e.Group("/listings")
	g.Use(auth)

	// Creation and editing.
	g.GET("/new", lh.New)
	g.POST("", lh.Create)
	g.GET("/:id/edit", lh.Edit)
	g.PUT("/:id", lh.Update)

	// Lifecycle: DELETE flags the row (trash), restore clears the flag,
	// and only /permanent physically removes it and fires the cascade.
	g.DELETE("/:id", lh.SoftDelete)
	g.POST("/:id/restore", lh.Restore)
	g.DELETE("/:id/permanent", lh.HardDelete)

	// Image management for a listing.
	g.POST("/:id/images", lh.UploadImage)
	g.DELETE("/:id/images", lh.DeleteImage)

	// Reviews live under their listing.
	g.POST("/:id/reviews", rh.Create)
	g.DELETE("/:id/reviews/:reviewId", rh.Delete)
}
