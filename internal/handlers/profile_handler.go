package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talenthub_backend/internal/middleware"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{BaseHandler: base, profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public browse and detail pages
	r.GET("/talents", h.Browse)
	r.GET("/talents/featured", h.Featured)
	r.GET("/talents/:profileId", h.GetProfile)

	me := r.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/profile", h.GetOwnProfile)
		me.PUT("/profile", h.UpdateProfile)
		me.GET("/dashboard", h.Dashboard)
	}

	// Verification is flipped by operators; the route stays internal and
	// is expected to sit behind a trusted proxy.
	internal := r.Group("/internal")
	internal.Use(middleware.AuthMiddleware())
	{
		internal.PUT("/talents/:profileId/verify", h.SetVerified)
	}
}

func (h *ProfileHandler) SetVerified(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	profileID := c.Param("profileId")
	if profileID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("missing profile id"))
		return
	}

	var req dto.SetVerifiedRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.profileService.SetVerified(profileID, req.Verified); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Verification flag updated."})
}

// Browse lists talents filtered by the q, location and skill query
// parameters. Unknown parameters are ignored, so a malformed filter
// degrades to a broader listing instead of an error.
func (h *ProfileHandler) Browse(c *gin.Context) {
	var criteria repositories.ProfileSearchCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		criteria = repositories.ProfileSearchCriteria{}
	}

	cards, err := h.profileService.Browse(criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"talents": cards, "count": len(cards)})
}

func (h *ProfileHandler) Featured(c *gin.Context) {
	cards, err := h.profileService.Featured()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"talents": cards})
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profileID := c.Param("profileId")
	if profileID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("missing profile id"))
		return
	}

	profile, err := h.profileService.GetByID(profileID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetOwnProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetByUserID(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Dashboard(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	dashboard, err := h.profileService.Dashboard(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
