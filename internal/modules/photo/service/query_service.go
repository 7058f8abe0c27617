package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackdo69/photo-sharing-server/internal/model"
	moduledto "github.com/jackdo69/photo-sharing-server/internal/modules/photo/dto"
	platformservice "github.com/jackdo69/photo-sharing-server/internal/platform/service"

	"gorm.io/gorm"
)

const (
	MessageFetchFailed    = "Fetching photos failed, please try again later."
	MessageDownloadFailed = "Could not download the photo."
)

func (s *Service) GetPhotos(ctx context.Context) ([]moduledto.PhotoResponse, error) {
	return s.listWith(ctx, func() ([]model.Photo, error) { return s.photoStore.List(ctx) })
}

func (s *Service) GetUploadedPhotosByUserID(ctx context.Context, userID string) ([]moduledto.PhotoResponse, error) {
	return s.listWith(ctx, func() ([]model.Photo, error) { return s.photoStore.ListByCreator(ctx, userID) })
}

func (s *Service) GetLikedPhotosByUserID(ctx context.Context, userID string) ([]moduledto.PhotoResponse, error) {
	return s.listWith(ctx, func() ([]model.Photo, error) { return s.photoStore.ListLikedBy(ctx, userID) })
}

func (s *Service) listWith(ctx context.Context, load func() ([]model.Photo, error)) ([]moduledto.PhotoResponse, error) {
	photos, err := load()
	if err != nil {
		return nil, platformservice.WrapInternal(MessageFetchFailed, err)
	}
	out, err := s.project(ctx, photos)
	if err != nil {
		return nil, platformservice.WrapInternal(MessageFetchFailed, err)
	}
	return out, nil
}

func (s *Service) GetPhotoByID(ctx context.Context, photoID string) (*moduledto.PhotoResponse, error) {
	photo, err := s.findPhoto(ctx, photoID, MessageFetchFailed)
	if err != nil {
		return nil, err
	}
	resp, err := s.projectOne(ctx, photo)
	if err != nil {
		return nil, platformservice.WrapInternal(MessageFetchFailed, err)
	}
	return resp, nil
}

// DownloadPhoto 打开存储对象，文件名固定为 <name>.jpg
func (s *Service) DownloadPhoto(ctx context.Context, photoID string) (*moduledto.Download, error) {
	photo, err := s.findPhoto(ctx, photoID, MessageDownloadFailed)
	if err != nil {
		return nil, err
	}

	body, info, err := s.storage.Open(ctx, photo.Image)
	if err != nil {
		return nil, platformservice.WrapInternal(MessageDownloadFailed, err)
	}
	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &moduledto.Download{
		Body:        body,
		Filename:    downloadName(photo.Name),
		ContentType: contentType,
		Size:        info.Size,
	}, nil
}

func (s *Service) findPhoto(ctx context.Context, photoID, internalMessage string) (*model.Photo, error) {
	photo, err := s.photoStore.FindByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(MessagePhotoNotFound)
		}
		return nil, platformservice.WrapInternal(internalMessage, err)
	}
	return photo, nil
}

// downloadName 去掉会破坏 Content-Disposition 的字符
func downloadName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '"', '\\', '/', '\r', '\n':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" {
		name = "photo"
	}
	return name + ".jpg"
}
