package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"talenthub_backend/internal/middleware"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/storage"
	"talenthub_backend/pkg/apperrors"
)

const maxPhotoSize = 5 << 20 // 5 MiB

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadHandler stores profile and cover photos and records their
// reference path on the profile.
type UploadHandler struct {
	*BaseHandler
	profileService services.ProfileService
	storage        storage.Storage
}

func NewUploadHandler(base *BaseHandler, profileService services.ProfileService, store storage.Storage) *UploadHandler {
	return &UploadHandler{BaseHandler: base, profileService: profileService, storage: store}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	me := r.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.POST("/profile/photo", h.UploadProfilePic)
		me.POST("/profile/cover", h.UploadCoverPhoto)
	}
}

func (h *UploadHandler) UploadProfilePic(c *gin.Context) {
	h.uploadPhoto(c, "avatars", func(userID, path string) error {
		return h.profileService.SetProfilePic(userID, path)
	})
}

func (h *UploadHandler) UploadCoverPhoto(c *gin.Context) {
	h.uploadPhoto(c, "covers", func(userID, path string) error {
		return h.profileService.SetCoverPhoto(userID, path)
	})
}

func (h *UploadHandler) uploadPhoto(c *gin.Context, prefix string, attach func(userID, path string) error) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("missing file field"))
		return
	}
	if fileHeader.Size > maxPhotoSize {
		apperrors.HandleError(c, apperrors.NewBadRequestError("file exceeds the 5 MB limit"))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedPhotoExtensions[ext] {
		apperrors.HandleError(c, apperrors.NewBadRequestError("unsupported image type"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.InternalError(err))
		return
	}
	defer file.Close()

	path := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)
	contentType := fileHeader.Header.Get("Content-Type")

	ctx := c.Request.Context()
	if err := h.storage.Save(ctx, path, file, contentType); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if err := attach(userID, path); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	url, err := h.storage.GetURL(ctx, path)
	if err != nil {
		// The path is already attached; fall back to a signed URL.
		url, err = h.storage.GetSignedURL(ctx, path, 15*time.Minute)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"path": path, "url": url})
}
