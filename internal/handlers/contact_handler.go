package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talenthub_backend/internal/middleware"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/services/dto"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{BaseHandler: base, contactService: contactService}
}

func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Open to guests; an authenticated caller additionally gets an
	// in-app acknowledgment.
	open := r.Group("")
	open.Use(middleware.OptionalAuthMiddleware())
	{
		open.POST("/contact", h.SubmitMessage)
		open.POST("/subscribe", h.Subscribe)
	}
}

func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req dto.ContactRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.contactService.SubmitMessage(c.Request.Context(), h.GetOptionalUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

func (h *ContactHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.contactService.Subscribe(c.Request.Context(), h.GetOptionalUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
