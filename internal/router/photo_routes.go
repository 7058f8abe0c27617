package router

import (
	photohandler "github.com/jackdo69/photo-sharing-server/internal/modules/photo/handler"

	"github.com/gin-gonic/gin"
)

const photosPath = "/api/photos"

func registerPhotoRoutes(api *gin.RouterGroup, limits routeLimits, auth gin.HandlerFunc, h *photohandler.Handler) {
	photos := api.Group("/photos")

	photos.GET("", h.GetPhotos)
	photos.GET("/user/download/:pid", h.DownloadPhoto)
	photos.GET("/user/like/:uid", h.GetLikedPhotosByUserID)
	photos.GET("/user/:uid", h.GetUploadedPhotosByUserID)
	photos.GET("/:pid", h.GetPhotoByID)
	photos.PATCH("/user/like", h.LikePhoto)
	photos.PATCH("/user/unlike", h.UnlikePhoto)
	photos.PATCH("/:pid", h.UpdatePhoto)

	// 以下接口需要登录
	authed := photos.Group("", auth)
	authed.POST("", limits.uploadBody, limits.upload, h.UploadPhoto)
	authed.DELETE("/:pid", h.DeletePhoto)
}
