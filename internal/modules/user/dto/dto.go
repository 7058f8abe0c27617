package dto

import (
	"mime/multipart"

	"github.com/jackdo69/photo-sharing-server/internal/model"
)

// SignupRequest multipart 注册表单，image 文件单独读取
type SignupRequest struct {
	Name         string `form:"name" binding:"required"`
	Email        string `form:"email" binding:"required,email"`
	Introduction string `form:"introduction" binding:"required"`
	Password     string `form:"password" binding:"required,min=6,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// SignupInput 注册业务入参
type SignupInput struct {
	Name         string
	Email        string
	Introduction string
	Password     string
	Image        *multipart.FileHeader
}

// AuthResult 注册/登录结果
type AuthResult struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// UserResponse 对外用户视图，不包含密码
type UserResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Introduction string   `json:"introduction"`
	Image        string   `json:"image"`
	Photos       []string `json:"photos"`
	Likes        []string `json:"likes"`
}

// NewUserResponse 由模型构造对外视图
func NewUserResponse(u *model.User, photos, likes []string) UserResponse {
	if photos == nil {
		photos = []string{}
	}
	if likes == nil {
		likes = []string{}
	}
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Introduction: u.Introduction,
		Image:        u.Image,
		Photos:       photos,
		Likes:        likes,
	}
}
