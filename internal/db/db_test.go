package db

import (
	"path/filepath"
	"testing"

	"github.com/jackdo69/photo-sharing-server/internal/config"
	"github.com/jackdo69/photo-sharing-server/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 测试内容：验证使用 sqlite 临时文件初始化数据库并创建核心表。
func TestOpen_SQLiteTempFile(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "db", "test.db")

	gdb, err := Open(config.DatabaseConfig{Type: "sqlite", Filename: dbFile})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })

	assert.True(t, gdb.Migrator().HasTable(&model.User{}))
	assert.True(t, gdb.Migrator().HasTable(&model.Photo{}))
	assert.True(t, gdb.Migrator().HasTable(&model.PhotoLike{}))
}

// 测试内容：验证不支持的数据库类型返回错误。
func TestDialector_UnknownType(t *testing.T) {
	_, err := Dialector(config.DatabaseConfig{Type: "oracle"})
	assert.Error(t, err)
}

// 测试内容：验证 mysql 与 postgres 方言可以构造（不实际连接）。
func TestDialector_NetworkDrivers(t *testing.T) {
	for _, typ := range []string{"mysql", "postgres"} {
		d, err := Dialector(config.DatabaseConfig{Type: typ, Host: "127.0.0.1", Port: "1", User: "u", Name: "n"})
		require.NoError(t, err, typ)
		assert.Equal(t, typ, d.Name())
	}
}

// 测试内容：验证 Close 对 nil 连接安全。
func TestClose_Nil(t *testing.T) {
	assert.NoError(t, Close(nil))
}
