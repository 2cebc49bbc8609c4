package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wanderlust/wanderlust-api/internal/flash"
	"github.com/wanderlust/wanderlust-api/internal/geo"
	"github.com/wanderlust/wanderlust-api/internal/media"
	"github.com/wanderlust/wanderlust-api/internal/model"
	"github.com/wanderlust/wanderlust-api/internal/repository"
)

// ListingHandler groups the dependencies for listing CRUD, the
// soft-delete lifecycle and image management.  Deleted holds the
// post-delete hooks run synchronously after a confirmed hard delete;
// the cascade is an explicit observer list, not a storage trigger.
type ListingHandler struct {
	Listings *repository.ListingRepo
	Reviews  *repository.ReviewRepo
	Media    *media.Store // nil disables image endpoints
	Geo      geo.Geocoder
	Deleted  []ListingDeletedHook
}

// NewListingHandler constructs a ListingHandler.  Media may be nil.
func NewListingHandler(l *repository.ListingRepo, rev *repository.ReviewRepo, m *media.Store, g geo.Geocoder, hooks ...ListingDeletedHook) *ListingHandler {
	if l == nil || rev == nil || g == nil {
		panic("nil dependency passed to NewListingHandler")
	}
	return &ListingHandler{Listings: l, Reviews: rev, Media: m, Geo: g, Deleted: hooks}
}

type listingForm struct {
	Title       string  `json:"title" form:"title"`
	Description string  `json:"description" form:"description"`
	Price       float64 `json:"price" form:"price"`
	Location    string  `json:"location" form:"location"`
	Country     string  `json:"country" form:"country"`
}

func (f *listingForm) validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(f.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(f.Description) == "" {
		fields["description"] = "description is required"
	}
	if f.Price <= 0 {
		fields["price"] = "price must be a positive number"
	}
	if strings.TrimSpace(f.Location) == "" {
		fields["location"] = "location is required"
	}
	if strings.TrimSpace(f.Country) == "" {
		fields["country"] = "country is required"
	}
	return fields
}

// Index handles GET /listings: the default enumeration, active
// listings only.
func (h *ListingHandler) Index(c echo.Context) error {
	listings, err := h.Listings.ListActive(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"listings": listings,
		"notice":   flash.PopAll(c),
	})
}

// Trash handles GET /listings/trash: the soft-deleted complement of
// the index, same table, inverse predicate.
func (h *ListingHandler) Trash(c echo.Context) error {
	listings, err := h.Listings.ListTrashed(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"listings": listings,
		"notice":   flash.PopAll(c),
	})
}

// New handles GET /listings/new, describing the creation form.
func (h *ListingHandler) New(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"fields": []string{"title", "description", "price", "location", "country"},
		"notice": flash.PopAll(c),
	})
}

// Create handles POST /listings.  The location is forward-geocoded
// once; a geocoding failure degrades to the zero point rather than
// blocking the listing.
func (h *ListingHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var f listingForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if fields := f.validate(); len(fields) > 0 {
		return validationFailed(c, fields)
	}

	ctx := c.Request().Context()
	pt, err := h.Geo.Forward(ctx, f.Location+", "+f.Country)
	if err != nil {
		c.Logger().Warnf("geocode %q failed: %v", f.Location, err)
		pt = geo.Point{}
	}

	l := model.Listing{
		OwnerID:     uid,
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Price:       f.Price,
		Location:    strings.TrimSpace(f.Location),
		Country:     strings.TrimSpace(f.Country),
		Latitude:    pt.Lat,
		Longitude:   pt.Lng,
	}
	if err := h.Listings.Create(ctx, &l); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create listing failed"})
	}
	return redirectWithSuccess(c, "Successfully created a new listing!", listingPath(l.ID))
}

// Show handles GET /listings/:id.  Trashed listings still resolve by
// ID; the response flags them so the client can offer a restore.
func (h *ListingHandler) Show(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return redirectWithError(c, "Listing not found!", "/listings")
	}
	ctx := c.Request().Context()
	l, err := h.Listings.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrListingNotFound {
			return redirectWithError(c, "Listing not found!", "/listings")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	ids, err := h.Listings.ReviewIDs(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	reviews, err := h.Reviews.ListByIDs(ctx, ids)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"listing": l,
		"reviews": reviews,
		"deleted": l.IsDeleted,
		"notice":  flash.PopAll(c),
	})
}

// Edit handles GET /listings/:id/edit.
func (h *ListingHandler) Edit(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return redirectWithError(c, "Listing not found!", "/listings")
	}
	l, err := h.Listings.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrListingNotFound {
			return redirectWithError(c, "Listing not found!", "/listings")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"listing": l, "notice": flash.PopAll(c)})
}

// Update handles PUT /listings/:id.  The point is re-geocoded only
// when the location actually changed.
func (h *ListingHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return redirectWithError(c, "Listing not found!", "/listings")
	}
	var f listingForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if fields := f.validate(); len(fields) > 0 {
		return validationFailed(c, fields)
	}

	ctx := c.Request().Context()
	l, err := h.Listings.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrListingNotFound {
			return redirectWithError(c, "Listing not found!", "/listings")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	moved := l.Location != strings.TrimSpace(f.Location) || l.Country != strings.TrimSpace(f.Country)
	l.Title = strings.TrimSpace(f.Title)
	l.Description = strings.TrimSpace(f.Description)
	l.Price = f.Price
	l.Location = strings.TrimSpace(f.Location)
	l.Country = strings.TrimSpace(f.Country)
	if moved {
		if pt, gerr := h.Geo.Forward(ctx, l.Location+", "+l.Country); gerr == nil {
			l.Latitude, l.Longitude = pt.Lat, pt.Lng
		} else {
			c.Logger().Warnf("geocode %q failed: %v", l.Location, gerr)
		}
	}
	if err := h.Listings.Update(ctx, &l); err != nil {
		if err == repository.ErrListingNotFound {
			return redirectWithError(c, "Listing not found!", "/listings")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return redirectWithSuccess(c, "Listing updated successfully!", listingPath(id))
}

// SoftDelete handles DELETE /listings/:id: flag-only, reviews stay
// untouched and the row remains fetchable by ID.
func (h *ListingHandler) SoftDelete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return redirectWithError(c, "Listing not found!", "/listings")
	}
	if err := h.Listings.SetDeleted(c.Request().Context(), id, true); err != nil {
		if err == repository.ErrListingNotFound {
			return redirectWithError(c, "Listing not found!", "/listings")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return redirectWithSuccess(c, "Listing moved to Trash!", "/listings")
}

// Restore handles POST /listings/:id/restore, reversing the flag.
func (h *ListingHandler) Restore(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return redirectWithError(c, "Listing not found!", "/listings")
	}
	if err := h.Listings.SetDeleted(c.Request().Context(), id, false); err != nil {
		if err == repository.ErrListingNotFound {
			return redirectWithError(c, "Listing not found!", "/listings")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "restore failed"})
	}
	return redirectWithSuccess(c, "Listing restored successfully!", listingPath(id))
}

// HardDelete handles DELETE /listings/:id/permanent: the only path
// that physically removes the row.  Registered hooks then cascade
// review deletion and image cleanup; hook failures are logged, never
// surfaced, because the listing itself is already gone.
func (h *ListingHandler) HardDelete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return redirectWithError(c, "Listing not found!", "/listings")
	}
	ctx := c.Request().Context()
	l, err := h.Listings.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrListingNotFound {
			return redirectWithError(c, "Listing not found!", "/listings")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	reviewIDs, err := h.Listings.HardDelete(ctx, id)
	if err != nil {
		if err == repository.ErrListingNotFound {
			return redirectWithError(c, "Listing not found!", "/listings")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	for _, hook := range h.Deleted {
		if herr := hook(ctx, l, reviewIDs); herr != nil {
			c.Logger().Warnf("post-delete hook for listing %d: %v", id, herr)
		}
	}
	return redirectWithSuccess(c, "Listing deleted permanently.", "/listings")
}

// UploadImage handles POST /listings/:id/images (multipart field
// "image").  The stored GridFS ID becomes the listing's image
// reference; a previously stored file is removed best-effort.
func (h *ListingHandler) UploadImage(c echo.Context) error {
	if h.Media == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "image storage unavailable"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return redirectWithError(c, "Listing not found!", "/listings")
	}
	ctx := c.Request().Context()
	l, err := h.Listings.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrListingNotFound {
			return redirectWithError(c, "Listing not found!", "/listings")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return validationFailed(c, map[string]string{"image": "an image file is required"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "read upload failed"})
	}
	defer src.Close()

	fileID, err := h.Media.Upload(src, fh.Filename)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store image failed"})
	}
	if l.ImageFilename != "" {
		if derr := h.Media.Delete(l.ImageFilename); derr != nil {
			c.Logger().Warnf("delete old image %s: %v", l.ImageFilename, derr)
		}
	}
	if err := h.Listings.SetImage(ctx, id, fileID, "/images/"+fileID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update listing failed"})
	}
	return redirectWithSuccess(c, "Image uploaded!", listingPath(id))
}

// DeleteImage handles DELETE /listings/:id/images, clearing the
// reference and falling back to the placeholder URL.
func (h *ListingHandler) DeleteImage(c echo.Context) error {
	if h.Media == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "image storage unavailable"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return redirectWithError(c, "Listing not found!", "/listings")
	}
	ctx := c.Request().Context()
	l, err := h.Listings.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrListingNotFound {
			return redirectWithError(c, "Listing not found!", "/listings")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if l.ImageFilename == "" {
		return redirectWithError(c, "This listing has no uploaded image.", listingPath(id))
	}
	if err := h.Media.Delete(l.ImageFilename); err != nil {
		c.Logger().Warnf("delete image %s: %v", l.ImageFilename, err)
	}
	if err := h.Listings.SetImage(ctx, id, "", model.DefaultImageURL); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update listing failed"})
	}
	return redirectWithSuccess(c, "Image removed.", listingPath(id))
}

// ServeImage handles GET /images/:id, streaming stored image bytes.
func (h *ListingHandler) ServeImage(c echo.Context) error {
	if h.Media == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "image storage unavailable"})
	}
	data, err := h.Media.Download(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "image not found"})
	}
	return c.Blob(http.StatusOK, "image/jpeg", data)
}

func listingPath(id uint64) string {
	return "/listings/" + strconv.FormatUint(id, 10)
}
