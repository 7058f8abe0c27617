package handler

import (
	userservice "github.com/jackdo69/photo-sharing-server/internal/modules/user/service"
)

type Handler struct {
	userService *userservice.Service
}

func New(userService *userservice.Service) *Handler {
	return &Handler{userService: userService}
}
