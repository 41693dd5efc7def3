package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talenthub_backend/internal/middleware"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{BaseHandler: base, reviewService: reviewService}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/talents/:profileId/reviews", h.ListReviews)

	protected := r.Group("/talents/:profileId/reviews")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("", h.CreateReview)
	}
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	profileID := c.Param("profileId")
	if profileID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("missing profile id"))
		return
	}

	reviews, err := h.reviewService.ListByProfile(profileID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profileID := c.Param("profileId")
	if profileID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("missing profile id"))
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), userID, profileID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}
