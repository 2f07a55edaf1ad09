package audit

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"dashboard-api/internal/worker"

	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAsyncLoggerWrites(t *testing.T) {
	out := &syncBuffer{}
	pool := worker.NewPool(1, 8)
	l := NewAsyncLogger(pool, slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug})))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l.Info(ctx, "user logged in", "userId", "u1")
	l.Warn(ctx, "login failed", "email", "a@x.com")
	l.Error(ctx, "storage failure")
	pool.Stop()

	s := out.String()
	require.Contains(t, s, "user logged in")
	require.Contains(t, s, "userId=u1")
	require.Contains(t, s, "level=WARN")
	require.Contains(t, s, "level=ERROR")
	require.Contains(t, s, "component=audit")
	require.Zero(t, l.Dropped())
}

func TestAsyncLoggerDropsWhenFull(t *testing.T) {
	pool := worker.NewPool(1, 0)
	pool.Stop()
	l := NewAsyncLogger(pool, slog.New(slog.NewTextHandler(&syncBuffer{}, nil)))

	l.Info(context.Background(), "a")
	l.Info(context.Background(), "b")
	require.Equal(t, int64(2), l.Dropped())
}

func TestNop(t *testing.T) {
	var l Logger = Nop{}
	l.Info(context.Background(), "x")
	l.Warn(context.Background(), "x")
	l.Error(context.Background(), "x")
}
