// Package audit 提供 fire-and-forget 的稽核紀錄。
// 呼叫端永遠不會被 logger 阻塞；queue 滿時紀錄直接丟棄並計數。
package audit

import (
	"context"
	"log/slog"
	"sync/atomic"

	"dashboard-api/internal/worker"
)

// Logger 是 service 層使用的稽核介面
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}

// AsyncLogger 把紀錄交給 worker.Pool 非同步寫入 slog
type AsyncLogger struct {
	pool    worker.Pool
	log     *slog.Logger
	dropped atomic.Int64
}

func NewAsyncLogger(pool worker.Pool, log *slog.Logger) *AsyncLogger {
	return &AsyncLogger{pool: pool, log: log.With("component", "audit")}
}

func (a *AsyncLogger) Info(ctx context.Context, msg string, args ...any) {
	a.emit(ctx, slog.LevelInfo, msg, args)
}

func (a *AsyncLogger) Warn(ctx context.Context, msg string, args ...any) {
	a.emit(ctx, slog.LevelWarn, msg, args)
}

func (a *AsyncLogger) Error(ctx context.Context, msg string, args ...any) {
	a.emit(ctx, slog.LevelError, msg, args)
}

// Dropped 回傳因 queue 滿而丟棄的紀錄數
func (a *AsyncLogger) Dropped() int64 {
	return a.dropped.Load()
}

func (a *AsyncLogger) emit(ctx context.Context, level slog.Level, msg string, args []any) {
	// request 結束後 ctx 會被取消，紀錄仍要寫出
	ctx = context.WithoutCancel(ctx)
	ok := a.pool.TrySubmit(func() {
		a.log.Log(ctx, level, msg, args...)
	})
	if !ok {
		a.dropped.Add(1)
	}
}

// Nop 丟棄所有紀錄
type Nop struct{}

func (Nop) Info(context.Context, string, ...any)  {}
func (Nop) Warn(context.Context, string, ...any)  {}
func (Nop) Error(context.Context, string, ...any) {}
