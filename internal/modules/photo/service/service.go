package service

import (
	"context"

	"github.com/jackdo69/photo-sharing-server/internal/model"
	moduledto "github.com/jackdo69/photo-sharing-server/internal/modules/photo/dto"
	"github.com/jackdo69/photo-sharing-server/internal/modules/photo/repo"
	userrepo "github.com/jackdo69/photo-sharing-server/internal/modules/user/repo"
	platformservice "github.com/jackdo69/photo-sharing-server/internal/platform/service"
	"github.com/jackdo69/photo-sharing-server/internal/platform/storage"
	"github.com/jackdo69/photo-sharing-server/internal/platform/uow"
)

type Service struct {
	*platformservice.AppService
	photoStore repo.PhotoStore
	userStore  userrepo.UserStore
	uow        uow.UnitOfWork
	storage    storage.ObjectStorage
}

func New(
	appService *platformservice.AppService,
	photoStore repo.PhotoStore,
	userStore userrepo.UserStore,
	unitOfWork uow.UnitOfWork,
	objectStorage storage.ObjectStorage,
) *Service {
	return &Service{
		AppService: appService,
		photoStore: photoStore,
		userStore:  userStore,
		uow:        unitOfWork,
		storage:    objectStorage,
	}
}

// project 批量补全点赞用户并转换为对外视图
func (s *Service) project(ctx context.Context, photos []model.Photo) ([]moduledto.PhotoResponse, error) {
	ids := make([]string, 0, len(photos))
	for _, p := range photos {
		ids = append(ids, p.ID)
	}
	likers, err := s.photoStore.LikerIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]moduledto.PhotoResponse, 0, len(photos))
	for i := range photos {
		out = append(out, moduledto.NewPhotoResponse(&photos[i], likers[photos[i].ID]))
	}
	return out, nil
}

func (s *Service) projectOne(ctx context.Context, photo *model.Photo) (*moduledto.PhotoResponse, error) {
	out, err := s.project(ctx, []model.Photo{*photo})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// removeBlob 尽力删除对象，失败只记录日志
func (s *Service) removeBlob(url string) {
	if err := s.storage.Delete(context.Background(), url); err != nil {
		s.Logger().Warn("⚠️ 删除图片对象失败", "url", url, "error", err)
	}
}
