package uow

import (
	"context"
	"errors"
	"testing"

	"github.com/jackdo69/photo-sharing-server/internal/model"
	"github.com/jackdo69/photo-sharing-server/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countUsers(t *testing.T, u UnitOfWork) int64 {
	t.Helper()
	var n int64
	require.NoError(t, u.(*gormUnitOfWork).db.Model(&model.User{}).Count(&n).Error)
	return n
}

func newUser(email string) *model.User {
	return &model.User{Name: "n", Introduction: "i", Email: email, Password: "x", Image: "img"}
}

// 测试内容：验证 fn 成功时事务提交。
func TestRun_Commit(t *testing.T) {
	u := New(testutils.SetupDB(t))

	err := Run(context.Background(), u, func(tx Tx) error {
		return tx.DB().Create(newUser("a@x.com")).Error
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), countUsers(t, u))
}

// 测试内容：验证 fn 返回错误时全部写入回滚。
func TestRun_RollbackOnError(t *testing.T) {
	u := New(testutils.SetupDB(t))
	boom := errors.New("boom")

	err := Run(context.Background(), u, func(tx Tx) error {
		if err := tx.DB().Create(newUser("a@x.com")).Error; err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(0), countUsers(t, u))
}

// 测试内容：验证 fn panic 时回滚并重新抛出。
func TestRun_RollbackOnPanic(t *testing.T) {
	u := New(testutils.SetupDB(t))

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = Run(context.Background(), u, func(tx Tx) error {
			_ = tx.DB().Create(newUser("a@x.com")).Error
			panic("kaboom")
		})
	})
	assert.Equal(t, int64(0), countUsers(t, u))
}

// 测试内容：验证重复提交/回滚不会报错。
func TestTx_DoubleFinish(t *testing.T) {
	u := New(testutils.SetupDB(t))
	tx, err := u.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, tx.Commit())
	assert.NoError(t, tx.Rollback())
	assert.NoError(t, tx.Commit())
}
