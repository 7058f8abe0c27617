package service

import (
	"context"
	"testing"

	"github.com/jackdo69/photo-sharing-server/internal/model"
	platformservice "github.com/jackdo69/photo-sharing-server/internal/platform/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试内容：验证用户不存在时返回 NOT_FOUND。
func TestGetUserByID_NotFound(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.svc.GetUserByID(context.Background(), "missing")
	assert.True(t, platformservice.HasCode(err, platformservice.ErrorCodeNotFound))
	assert.Equal(t, MessageUserNotFound, err.Error())
}

// 测试内容：验证用户视图包含名下与点赞图片，且不含密码。
func TestGetUserByID_Projection(t *testing.T) {
	env := setupTestEnv(t)

	ann := model.User{Name: "Ann", Introduction: "hi", Email: "a@x.com", Password: "hash", Image: "img"}
	bob := model.User{Name: "Bob", Introduction: "yo", Email: "b@x.com", Password: "hash", Image: "img"}
	require.NoError(t, env.db.Create(&ann).Error)
	require.NoError(t, env.db.Create(&bob).Error)

	own := model.Photo{Name: "p1", Description: "sunset", Image: "u1", CreatorID: ann.ID}
	other := model.Photo{Name: "p2", Description: "forest", Image: "u2", CreatorID: bob.ID}
	require.NoError(t, env.db.Create(&own).Error)
	require.NoError(t, env.db.Create(&other).Error)
	require.NoError(t, env.db.Create(&model.PhotoLike{UserID: ann.ID, PhotoID: other.ID}).Error)

	resp, err := env.svc.GetUserByID(context.Background(), ann.ID)
	require.NoError(t, err)
	assert.Equal(t, ann.ID, resp.ID)
	assert.Equal(t, []string{own.ID}, resp.Photos)
	assert.Equal(t, []string{other.ID}, resp.Likes)
}
