package user

import (
	"github.com/jackdo69/photo-sharing-server/internal/modules/user/handler"
	"github.com/jackdo69/photo-sharing-server/internal/modules/user/repo"
	"github.com/jackdo69/photo-sharing-server/internal/modules/user/service"
	platformservice "github.com/jackdo69/photo-sharing-server/internal/platform/service"
	"github.com/jackdo69/photo-sharing-server/internal/platform/storage"
	"github.com/jackdo69/photo-sharing-server/internal/utils"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(
	appService *platformservice.AppService,
	userStore repo.UserStore,
	photoStore repo.PhotoStore,
	objectStorage storage.ObjectStorage,
	tokens *utils.TokenManager,
) *Module {
	moduleService := service.New(appService, userStore, photoStore, objectStorage, tokens)

	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
