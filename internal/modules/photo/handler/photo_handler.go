package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/jackdo69/photo-sharing-server/internal/middleware"
	"github.com/jackdo69/photo-sharing-server/internal/modules/common/httpx"
	moduledto "github.com/jackdo69/photo-sharing-server/internal/modules/photo/dto"
	photoservice "github.com/jackdo69/photo-sharing-server/internal/modules/photo/service"
	platformservice "github.com/jackdo69/photo-sharing-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

const (
	MessageDeleted = "Deleted photo."
	MessageLiked   = "Photo liked."
	MessageUnliked = "Photo unliked."
)

// invalidInputs 绑定失败：请求体超限返回 413，其余按参数错误处理
func invalidInputs(c *gin.Context, err error) {
	if middleware.AbortIfTooLarge(c, err) {
		return
	}
	httpx.Abort(c, platformservice.NewValidationError(photoservice.MessageInvalidInputs))
}

// UploadPhoto 需要登录：multipart 表单 name/description/creator + image 文件
func (h *Handler) UploadPhoto(c *gin.Context) {
	requesterID, ok := middleware.CurrentUserID(c)
	if !ok {
		httpx.Abort(c, platformservice.NewUnauthorizedError(middleware.MessageAuthFailed))
		return
	}

	var req moduledto.UploadPhotoRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidInputs(c, err)
		return
	}
	file, err := c.FormFile("image")
	if err != nil {
		invalidInputs(c, err)
		return
	}

	photo, err := h.photoService.UploadPhoto(c.Request.Context(), moduledto.UploadInput{
		Name:        req.Name,
		Description: req.Description,
		CreatorID:   req.Creator,
		RequesterID: requesterID,
		Image:       file,
	})
	if err != nil {
		httpx.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"photo": photo})
}

func (h *Handler) UpdatePhoto(c *gin.Context) {
	var req moduledto.UpdatePhotoRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidInputs(c, err)
		return
	}

	photo, err := h.photoService.UpdatePhoto(c.Request.Context(), c.Param("pid"), moduledto.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Creator:     req.Creator,
	})
	if err != nil {
		httpx.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"photo": photo})
}

// DeletePhoto 需要登录，仅创建者可删除
func (h *Handler) DeletePhoto(c *gin.Context) {
	requesterID, ok := middleware.CurrentUserID(c)
	if !ok {
		httpx.Abort(c, platformservice.NewUnauthorizedError(middleware.MessageAuthFailed))
		return
	}

	if err := h.photoService.DeletePhoto(c.Request.Context(), c.Param("pid"), requesterID); err != nil {
		httpx.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": MessageDeleted})
}

func (h *Handler) LikePhoto(c *gin.Context) {
	var req moduledto.LikeRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidInputs(c, err)
		return
	}

	if err := h.photoService.LikePhoto(c.Request.Context(), req.PhotoID, req.UserID); err != nil {
		httpx.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": MessageLiked})
}

func (h *Handler) UnlikePhoto(c *gin.Context) {
	var req moduledto.LikeRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidInputs(c, err)
		return
	}

	if err := h.photoService.UnlikePhoto(c.Request.Context(), req.PhotoID, req.UserID); err != nil {
		httpx.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": MessageUnliked})
}

func (h *Handler) GetPhotos(c *gin.Context) {
	photos, err := h.photoService.GetPhotos(c.Request.Context())
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

func (h *Handler) GetPhotoByID(c *gin.Context) {
	photo, err := h.photoService.GetPhotoByID(c.Request.Context(), c.Param("pid"))
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"photo": photo})
}

func (h *Handler) GetUploadedPhotosByUserID(c *gin.Context) {
	photos, err := h.photoService.GetUploadedPhotosByUserID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

func (h *Handler) GetLikedPhotosByUserID(c *gin.Context) {
	photos, err := h.photoService.GetLikedPhotosByUserID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

// DownloadPhoto 以附件形式返回图片内容
func (h *Handler) DownloadPhoto(c *gin.Context) {
	download, err := h.photoService.DownloadPhoto(c.Request.Context(), c.Param("pid"))
	if err != nil {
		httpx.Abort(c, err)
		return
	}
	defer func() { _ = download.Body.Close() }()

	c.DataFromReader(http.StatusOK, download.Size, download.ContentType, download.Body, map[string]string{
		"Content-Disposition": contentDisposition(download.Filename),
	})
}

func contentDisposition(filename string) string {
	for _, r := range filename {
		if r > 0x7f {
			return "attachment; filename*=UTF-8''" + url.PathEscape(filename)
		}
	}
	return fmt.Sprintf("attachment; filename=%q", filename)
}
