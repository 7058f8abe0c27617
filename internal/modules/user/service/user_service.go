package service

import (
	"context"
	"errors"

	moduledto "github.com/jackdo69/photo-sharing-server/internal/modules/user/dto"
	platformservice "github.com/jackdo69/photo-sharing-server/internal/platform/service"

	"gorm.io/gorm"
)

const (
	MessageUserNotFound = "Could not find an user for the provided id."
	MessageFetchFailed  = "Fetching user failed, please try again later."
)

// GetUserByID 返回用户对外视图，含名下与点赞的图片 ID
func (s *Service) GetUserByID(ctx context.Context, id string) (*moduledto.UserResponse, error) {
	user, err := s.userStore.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(MessageUserNotFound)
		}
		return nil, platformservice.WrapInternal(MessageFetchFailed, err)
	}

	photos, err := s.photoStore.ListIDsByCreator(ctx, user.ID)
	if err != nil {
		return nil, platformservice.WrapInternal(MessageFetchFailed, err)
	}
	likes, err := s.photoStore.ListLikedIDsByUser(ctx, user.ID)
	if err != nil {
		return nil, platformservice.WrapInternal(MessageFetchFailed, err)
	}

	resp := moduledto.NewUserResponse(user, photos, likes)
	return &resp, nil
}
