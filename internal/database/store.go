// Package database 提供整份資料文件的讀寫後端（file / postgres / s3）。
package database

import (
	"context"
	"errors"

	"dashboard-api/internal/model"
)

// ErrConcurrentUpdate 表示條件寫入時文件已被其他程序修改
var ErrConcurrentUpdate = errors.New("document modified concurrently")

// Store 以整份文件為單位讀寫資料。
// Update 是唯一的寫入序列化點：fn 在鎖（或交易）內對最新的文件進行修改，
// fn 回傳錯誤時不會寫入。
type Store interface {
	ReadAll(ctx context.Context) (*model.Dataset, error)
	WriteAll(ctx context.Context, d *model.Dataset) error
	Update(ctx context.Context, fn func(d *model.Dataset) error) error
	Ping(ctx context.Context) error
	Close() error
}

// FakeStore 測試用，未設定的方法會 panic
type FakeStore struct {
	ReadAllFn  func(ctx context.Context) (*model.Dataset, error)
	WriteAllFn func(ctx context.Context, d *model.Dataset) error
	UpdateFn   func(ctx context.Context, fn func(d *model.Dataset) error) error
	PingFn     func(ctx context.Context) error
	CloseFn    func() error
}

func (f *FakeStore) ReadAll(ctx context.Context) (*model.Dataset, error) {
	if f.ReadAllFn != nil {
		return f.ReadAllFn(ctx)
	}
	panic("unexpected ReadAll")
}

func (f *FakeStore) WriteAll(ctx context.Context, d *model.Dataset) error {
	if f.WriteAllFn != nil {
		return f.WriteAllFn(ctx, d)
	}
	panic("unexpected WriteAll")
}

func (f *FakeStore) Update(ctx context.Context, fn func(d *model.Dataset) error) error {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, fn)
	}
	panic("unexpected Update")
}

func (f *FakeStore) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakeStore) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
