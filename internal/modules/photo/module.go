package photo

import (
	"github.com/jackdo69/photo-sharing-server/internal/modules/photo/handler"
	"github.com/jackdo69/photo-sharing-server/internal/modules/photo/repo"
	"github.com/jackdo69/photo-sharing-server/internal/modules/photo/service"
	userrepo "github.com/jackdo69/photo-sharing-server/internal/modules/user/repo"
	platformservice "github.com/jackdo69/photo-sharing-server/internal/platform/service"
	"github.com/jackdo69/photo-sharing-server/internal/platform/storage"
	"github.com/jackdo69/photo-sharing-server/internal/platform/uow"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(
	appService *platformservice.AppService,
	photoStore repo.PhotoStore,
	userStore userrepo.UserStore,
	unitOfWork uow.UnitOfWork,
	objectStorage storage.ObjectStorage,
) *Module {
	moduleService := service.New(appService, photoStore, userStore, unitOfWork, objectStorage)

	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}
}
