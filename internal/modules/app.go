package modules

import (
	"github.com/jackdo69/photo-sharing-server/internal/modules/photo"
	photorepo "github.com/jackdo69/photo-sharing-server/internal/modules/photo/repo"
	"github.com/jackdo69/photo-sharing-server/internal/modules/user"
	userrepo "github.com/jackdo69/photo-sharing-server/internal/modules/user/repo"
	platformservice "github.com/jackdo69/photo-sharing-server/internal/platform/service"
	"github.com/jackdo69/photo-sharing-server/internal/platform/storage"
	"github.com/jackdo69/photo-sharing-server/internal/platform/uow"
	"github.com/jackdo69/photo-sharing-server/internal/utils"
)

type AppModules struct {
	User  *user.Module
	Photo *photo.Module
}

func New(
	appService *platformservice.AppService,
	userStore userrepo.UserStore,
	photoStore photorepo.PhotoStore,
	unitOfWork uow.UnitOfWork,
	objectStorage storage.ObjectStorage,
	tokens *utils.TokenManager,
) *AppModules {
	return &AppModules{
		User:  user.New(appService, userStore, photoStore, objectStorage, tokens),
		Photo: photo.New(appService, photoStore, userStore, unitOfWork, objectStorage),
	}
}
