package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookshop-service/internal/api/dto"
	"github.com/spec-kit/bookshop-service/internal/auth"
	"github.com/spec-kit/bookshop-service/internal/service"
	apperrors "github.com/spec-kit/bookshop-service/pkg/util/errorutil"
)

// ReviewsHandler manages authenticated review mutations.
type ReviewsHandler struct {
	reviews *service.ReviewService
}

// NewReviewsHandler constructs handler.
func NewReviewsHandler(reviews *service.ReviewService) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviews}
}

// SubmitReview POST /books/:isbn/reviews. The reviewer is the token subject.
func (h *ReviewsHandler) SubmitReview(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized(auth.MsgUnauthorized)
	}
	isbn, err := auth.PathParam(c, "isbn")
	if err != nil {
		return err
	}
	var req dto.ReviewRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	if err := h.reviews.SubmitReview(c.UserContext(), isbn, principal.Username, req.Review); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Review added/updated successfully"})
}

// DeleteReview DELETE /books/:isbn/reviews/:username. Ownership is checked by
// auth.RequireOwner before this runs.
func (h *ReviewsHandler) DeleteReview(c *fiber.Ctx) error {
	isbn, err := auth.PathParam(c, "isbn")
	if err != nil {
		return err
	}
	username, err := auth.PathParam(c, "username")
	if err != nil {
		return err
	}

	if err := h.reviews.DeleteReview(c.UserContext(), isbn, username); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Review deleted successfully"})
}
