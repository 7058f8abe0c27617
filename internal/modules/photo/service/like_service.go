package service

import (
	"context"
	"errors"

	platformservice "github.com/jackdo69/photo-sharing-server/internal/platform/service"
	"github.com/jackdo69/photo-sharing-server/internal/platform/uow"

	"gorm.io/gorm"
)

const (
	MessageUserNotFound = "Could not find user."
	MessageLikeFailed   = "Could not save like photo"
	MessageUnlikeFailed = "Could not remove like photo"
)

// LikePhoto 点赞，重复点赞不产生第二条记录
func (s *Service) LikePhoto(ctx context.Context, photoID, userID string) error {
	if err := s.ensureLikeTargets(ctx, photoID, userID); err != nil {
		return err
	}

	err := uow.Run(ctx, s.uow, func(tx uow.Tx) error {
		store := s.photoStore.WithTx(tx)
		inserted, err := store.AddLike(ctx, userID, photoID)
		if err != nil || !inserted {
			return err
		}
		return store.AdjustLikeCount(ctx, photoID, 1)
	})
	if err != nil {
		return platformservice.WrapInternal(MessageLikeFailed, err)
	}
	return nil
}

// UnlikePhoto 取消点赞，未点赞时为空操作
func (s *Service) UnlikePhoto(ctx context.Context, photoID, userID string) error {
	if err := s.ensureLikeTargets(ctx, photoID, userID); err != nil {
		return err
	}

	err := uow.Run(ctx, s.uow, func(tx uow.Tx) error {
		store := s.photoStore.WithTx(tx)
		removed, err := store.RemoveLike(ctx, userID, photoID)
		if err != nil || !removed {
			return err
		}
		return store.AdjustLikeCount(ctx, photoID, -1)
	})
	if err != nil {
		return platformservice.WrapInternal(MessageUnlikeFailed, err)
	}
	return nil
}

func (s *Service) ensureLikeTargets(ctx context.Context, photoID, userID string) error {
	if _, err := s.photoStore.FindByID(ctx, photoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError(MessagePhotoNotFound)
		}
		return platformservice.WrapInternal(MessagePhotoNotFound, err)
	}
	if _, err := s.userStore.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformservice.NewNotFoundError(MessageUserNotFound)
		}
		return platformservice.WrapInternal(MessageUserNotFound, err)
	}
	return nil
}
