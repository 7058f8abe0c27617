package handler

import (
	"net/http"

	"github.com/jackdo69/photo-sharing-server/internal/middleware"
	"github.com/jackdo69/photo-sharing-server/internal/modules/common/httpx"
	moduledto "github.com/jackdo69/photo-sharing-server/internal/modules/user/dto"
	userservice "github.com/jackdo69/photo-sharing-server/internal/modules/user/service"
	platformservice "github.com/jackdo69/photo-sharing-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

func invalidInputs(c *gin.Context, err error) {
	if middleware.AbortIfTooLarge(c, err) {
		return
	}
	httpx.Abort(c, platformservice.NewValidationError(userservice.MessageInvalidInputs))
}

// Signup 注册：multipart 表单 name/email/introduction/password + image 文件
func (h *Handler) Signup(c *gin.Context) {
	var req moduledto.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidInputs(c, err)
		return
	}
	file, err := c.FormFile("image")
	if err != nil {
		invalidInputs(c, err)
		return
	}

	result, err := h.userService.Signup(c.Request.Context(), moduledto.SignupInput{
		Name:         req.Name,
		Email:        req.Email,
		Introduction: req.Introduction,
		Password:     req.Password,
		Image:        file,
	})
	if err != nil {
		httpx.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// Login 登录，支持 JSON 或表单
func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		invalidInputs(c, err)
		return
	}

	result, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpx.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetUserByID 获取用户公开信息
func (h *Handler) GetUserByID(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		httpx.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
