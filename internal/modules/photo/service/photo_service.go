package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/jackdo69/photo-sharing-server/internal/model"
	moduledto "github.com/jackdo69/photo-sharing-server/internal/modules/photo/dto"
	platformservice "github.com/jackdo69/photo-sharing-server/internal/platform/service"
	"github.com/jackdo69/photo-sharing-server/internal/platform/uow"
	"github.com/jackdo69/photo-sharing-server/internal/utils"

	"gorm.io/gorm"
)

const (
	MessageInvalidInputs   = "Invalid inputs passed, please check your data."
	MessageCreatorMismatch = "Could not find creator"
	MessageCreatorNotFound = "Could not find user for provided id"
	MessageUploadFailed    = "Uploading photo failed, please try again..."
	MessageStorageFailed   = "Unable to upload image, something went wrong"
	MessagePhotoNotFound   = "Could not find photo."
	MessageSaveFailed      = "Could not save photo."
	MessageDeleteNotFound  = "Could not find photo by this ID"
	MessageDeleteForbidden = "You are not allowed to delete this photo."
	MessageDeleteFailed    = "Something went wrong, could not delete photo."

	minDescriptionLength = 5
)

func validDetails(name, description string) bool {
	return name != "" && utf8.RuneCountInString(description) >= minDescriptionLength
}

// UploadPhoto 校验、确认创建者存在、上传对象，再在同一事务中写入图片并累加用户计数
func (s *Service) UploadPhoto(ctx context.Context, in moduledto.UploadInput) (*moduledto.PhotoResponse, error) {
	cfg := s.Config()

	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if !validDetails(in.Name, in.Description) {
		return nil, platformservice.NewValidationError(MessageInvalidInputs)
	}
	ext, err := utils.ValidateImageFile(in.Image, cfg.Upload.MaxSizeMB, cfg.Upload.AllowedExtensions)
	if err != nil {
		s.Logger().Debug("图片校验失败", "error", err)
		return nil, platformservice.NewValidationError(MessageInvalidInputs)
	}

	creatorID := strings.TrimSpace(in.CreatorID)
	if creatorID == "" {
		creatorID = in.RequesterID
	}
	if creatorID != in.RequesterID {
		return nil, platformservice.NewUnauthorizedError(MessageCreatorMismatch)
	}
	if _, err := s.userStore.FindByID(ctx, creatorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(MessageCreatorNotFound)
		}
		return nil, platformservice.WrapInternal(MessageUploadFailed, err)
	}

	src, err := in.Image.Open()
	if err != nil {
		return nil, platformservice.WrapInternal(MessageUploadFailed, err)
	}
	url, err := s.storage.Upload(ctx, in.Image.Filename, src, in.Image.Size, utils.ContentTypeForExt(ext))
	_ = src.Close()
	if err != nil {
		// 对象存储写入失败沿用 401 语义
		s.Logger().Warn("⚠️ 图片上传到对象存储失败", "error", err)
		return nil, platformservice.NewUnauthorizedError(MessageStorageFailed)
	}

	photo := &model.Photo{
		Name:        in.Name,
		Description: in.Description,
		Image:       url,
		CreatorID:   creatorID,
	}
	err = uow.Run(ctx, s.uow, func(tx uow.Tx) error {
		if err := s.photoStore.WithTx(tx).Create(ctx, photo); err != nil {
			return err
		}
		return s.userStore.WithTx(tx).AdjustPhotoCount(ctx, creatorID, 1)
	})
	if err != nil {
		s.removeBlob(url)
		return nil, platformservice.WrapInternal(MessageUploadFailed, err)
	}

	s.Logger().Info("✅ 图片已上传", "photo_id", photo.ID, "creator", creatorID)
	resp := moduledto.NewPhotoResponse(photo, nil)
	return &resp, nil
}

// UpdatePhoto 仅允许修改名称与描述，creator 必须与记录一致
func (s *Service) UpdatePhoto(ctx context.Context, photoID string, in moduledto.UpdateInput) (*moduledto.PhotoResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if !validDetails(in.Name, in.Description) {
		return nil, platformservice.NewValidationError(MessageInvalidInputs)
	}

	photo, err := s.photoStore.FindByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(MessagePhotoNotFound)
		}
		return nil, platformservice.WrapInternal(MessagePhotoNotFound, err)
	}
	if strings.TrimSpace(in.Creator) != photo.CreatorID {
		return nil, platformservice.NewUnauthorizedError(MessageCreatorMismatch)
	}

	if err := s.photoStore.UpdateDetails(ctx, photo.ID, in.Name, in.Description); err != nil {
		return nil, platformservice.WrapInternal(MessageSaveFailed, err)
	}
	photo.Name = in.Name
	photo.Description = in.Description

	resp, err := s.projectOne(ctx, photo)
	if err != nil {
		return nil, platformservice.WrapInternal(MessageSaveFailed, err)
	}
	return resp, nil
}

// DeletePhoto 创建者本人删除图片，记录与计数同事务，对象删除为尽力而为
func (s *Service) DeletePhoto(ctx context.Context, photoID, requesterID string) error {
	photo, err := s.photoStore.FindByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError(MessageDeleteNotFound)
		}
		return platformservice.WrapInternal(MessageDeleteFailed, err)
	}
	if photo.CreatorID != requesterID {
		return platformservice.NewUnauthorizedError(MessageDeleteForbidden)
	}

	err = uow.Run(ctx, s.uow, func(tx uow.Tx) error {
		if err := s.photoStore.WithTx(tx).Delete(ctx, photo.ID); err != nil {
			return err
		}
		return s.userStore.WithTx(tx).AdjustPhotoCount(ctx, photo.CreatorID, -1)
	})
	if err != nil {
		return platformservice.WrapInternal(MessageDeleteFailed, err)
	}

	s.removeBlob(photo.Image)
	s.Logger().Info("✅ 图片已删除", "photo_id", photo.ID)
	return nil
}
