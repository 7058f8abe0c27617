package handler

import (
	photoservice "github.com/jackdo69/photo-sharing-server/internal/modules/photo/service"
)

type Handler struct {
	photoService *photoservice.Service
}

func New(photoService *photoservice.Service) *Handler {
	return &Handler{photoService: photoService}
}
