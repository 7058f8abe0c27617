package dto

import (
	"io"
	"mime/multipart"
	"time"

	"github.com/jackdo69/photo-sharing-server/internal/model"
)

// UploadPhotoRequest multipart 上传表单，image 文件单独读取
type UploadPhotoRequest struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description" binding:"required,min=5"`
	Creator     string `form:"creator"`
}

type UpdatePhotoRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description" binding:"required,min=5"`
	Creator     string `json:"creator" form:"creator"`
}

// LikeRequest 点赞/取消点赞
type LikeRequest struct {
	PhotoID string `json:"photoId" form:"photoId" binding:"required"`
	UserID  string `json:"userId" form:"userId" binding:"required"`
}

// UploadInput 上传业务入参，RequesterID 来自令牌
type UploadInput struct {
	Name        string
	Description string
	CreatorID   string
	RequesterID string
	Image       *multipart.FileHeader
}

type UpdateInput struct {
	Name        string
	Description string
	Creator     string
}

// PhotoResponse 对外图片视图
type PhotoResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Creator     string    `json:"creator"`
	LikedBy     []string  `json:"likedBy"`
	LikeCount   int64     `json:"likeCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewPhotoResponse(p *model.Photo, likedBy []string) PhotoResponse {
	if likedBy == nil {
		likedBy = []string{}
	}
	return PhotoResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Creator:     p.CreatorID,
		LikedBy:     likedBy,
		LikeCount:   p.LikeCount,
		CreatedAt:   p.CreatedAt,
	}
}

// Download 下载所需的流与元信息，调用方负责关闭 Body
type Download struct {
	Body        io.ReadCloser
	Filename    string
	ContentType string
	Size        int64
}
