package handler

import (
	"net/http"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ReviewHandler holds dependencies for review handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(reviewUC usecase.ReviewUsecase) *ReviewHandler {
	return &ReviewHandler{reviewUC: reviewUC}
}

// CreateReviewRequest represents the request body for rating a shop or delivery agent
type CreateReviewRequest struct {
	TargetID   uuid.UUID `json:"target_id" validate:"required"`
	TargetType string    `json:"target_type" validate:"required,oneof=shop delivery_agent"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
}

// CreateReview handles review submission
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), principal, &usecase.CreateReviewInput{
		TargetID:   req.TargetID,
		TargetType: entity.ReviewTargetType(req.TargetType),
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review)
}

// ListReviews returns every review of a shop or delivery agent
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	targetID, err := uuid.Parse(c.Param("target_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid target ID")
	}

	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), targetID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews)
}
