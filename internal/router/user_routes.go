package router

import (
	userhandler "github.com/jackdo69/photo-sharing-server/internal/modules/user/handler"

	"github.com/gin-gonic/gin"
)

const signupPath = "/api/users/signup"

func registerUserRoutes(api *gin.RouterGroup, limits routeLimits, h *userhandler.Handler) {
	users := api.Group("/users")

	users.GET("/:uid", h.GetUserByID)
	users.POST("/signup", limits.uploadBody, limits.auth, h.Signup)
	users.POST("/login", limits.auth, h.Login)
}
