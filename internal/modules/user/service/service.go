package service

import (
	"github.com/jackdo69/photo-sharing-server/internal/modules/user/repo"
	platformservice "github.com/jackdo69/photo-sharing-server/internal/platform/service"
	"github.com/jackdo69/photo-sharing-server/internal/platform/storage"
	"github.com/jackdo69/photo-sharing-server/internal/utils"
)

type Service struct {
	*platformservice.AppService
	userStore  repo.UserStore
	photoStore repo.PhotoStore
	storage    storage.ObjectStorage
	tokens     *utils.TokenManager
}

func New(
	appService *platformservice.AppService,
	userStore repo.UserStore,
	photoStore repo.PhotoStore,
	objectStorage storage.ObjectStorage,
	tokens *utils.TokenManager,
) *Service {
	return &Service{
		AppService: appService,
		userStore:  userStore,
		photoStore: photoStore,
		storage:    objectStorage,
		tokens:     tokens,
	}
}
