// Package uow 将跨实体写操作包装为显式的工作单元（begin / commit / rollback）。
package uow

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Tx 是一次进行中的事务。仓储通过 WithTx(tx) 绑定到 tx.DB()。
type Tx interface {
	DB() *gorm.DB
	Commit() error
	Rollback() error
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Tx, error)
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func New(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Begin(ctx context.Context) (Tx, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("开启事务失败: %w", tx.Error)
	}
	return &gormTx{db: tx}, nil
}

type gormTx struct {
	db   *gorm.DB
	done bool
}

func (t *gormTx) DB() *gorm.DB {
	return t.db
}

func (t *gormTx) Commit() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.db.Commit().Error
}

func (t *gormTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	return t.db.Rollback().Error
}

// Run 在一个工作单元内执行 fn：fn 返回 nil 时提交，返回错误或 panic 时回滚。
// panic 会在回滚后重新抛出。
func Run(ctx context.Context, u UnitOfWork, fn func(tx Tx) error) (err error) {
	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (回滚失败: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("提交事务失败: %w", err)
	}
	return nil
}
