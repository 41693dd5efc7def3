package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"talenthub_backend/internal/services"
	"talenthub_backend/pkg/apperrors"
)

type BlogHandler struct {
	*BaseHandler
	blogService services.BlogService
}

func NewBlogHandler(base *BaseHandler, blogService services.BlogService) *BlogHandler {
	return &BlogHandler{BaseHandler: base, blogService: blogService}
}

func (h *BlogHandler) RegisterRoutes(r *gin.RouterGroup) {
	blog := r.Group("/blog")
	{
		blog.GET("", h.ListPosts)
		blog.GET("/:postId", h.GetPost)
	}
}

func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.blogService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *BlogHandler) GetPost(c *gin.Context) {
	postID := c.Param("postId")
	if postID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("missing post id"))
		return
	}

	detail, err := h.blogService.Get(postID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
