package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wanderlust/wanderlust-api/internal/model"
	"github.com/wanderlust/wanderlust-api/internal/repository"
)

// ReviewHandler covers the review sub-resource of a listing.
type ReviewHandler struct {
	Listings *repository.ListingRepo
	Reviews  *repository.ReviewRepo
}

func NewReviewHandler(l *repository.ListingRepo, r *repository.ReviewRepo) *ReviewHandler {
	return &ReviewHandler{Listings: l, Reviews: r}
}

type reviewForm struct {
	Body   string `json:"body" form:"body"`
	Rating int    `json:"rating" form:"rating"`
}

func (f *reviewForm) validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(f.Body) == "" {
		fields["body"] = "review body is required"
	}
	if f.Rating < 1 || f.Rating > 5 {
		fields["rating"] = "rating must be between 1 and 5"
	}
	return fields
}

// Create handles POST /listings/:id/reviews.  The review row is
// inserted first, then appended to the listing's ordered set.
func (h *ReviewHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	listingID, err := pathID(c, "id")
	if err != nil {
		return redirectWithError(c, "Listing not found!", "/listings")
	}
	var f reviewForm
	if err := c.Bind(&f); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if fields := f.validate(); len(fields) > 0 {
		return validationFailed(c, fields)
	}

	ctx := c.Request().Context()
	if _, err := h.Listings.GetByID(ctx, listingID); err != nil {
		if err == repository.ErrListingNotFound {
			return redirectWithError(c, "Listing not found!", "/listings")
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	rev := model.Review{
		AuthorID: uid,
		Body:     strings.TrimSpace(f.Body),
		Rating:   f.Rating,
	}
	if err := h.Reviews.Create(ctx, &rev); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create review failed"})
	}
	if err := h.Listings.AttachReview(ctx, listingID, rev.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "attach review failed"})
	}
	return redirectWithSuccess(c, "Review added successfully!", listingPath(listingID))
}

// Delete handles DELETE /listings/:id/reviews/:reviewId.  Detach from
// the listing first so the ordered set never references a dead row.
func (h *ReviewHandler) Delete(c echo.Context) error {
	listingID, err := pathID(c, "id")
	if err != nil {
		return redirectWithError(c, "Listing not found!", "/listings")
	}
	reviewID, err := pathID(c, "reviewId")
	if err != nil {
		return redirectWithError(c, "Review not found!", listingPath(listingID))
	}

	ctx := c.Request().Context()
	if err := h.Listings.DetachReview(ctx, listingID, reviewID); err != nil {
		if err == repository.ErrReviewNotFound {
			return redirectWithError(c, "Review not found!", listingPath(listingID))
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "detach review failed"})
	}
	if err := h.Reviews.Delete(ctx, reviewID); err != nil && err != repository.ErrReviewNotFound {
		c.Logger().Warnf("delete review %d: %v", reviewID, err)
	}
	return redirectWithSuccess(c, "Review deleted!", listingPath(listingID))
}
