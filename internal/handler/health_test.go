package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dashboard-api/internal/cache"
	"dashboard-api/internal/database"
	"dashboard-api/internal/dto"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler(t *testing.T) {
	e := echo.New()
	fixed := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	serve := func(deps HealthDeps) (*httptest.ResponseRecorder, dto.HealthResponse) {
		deps.Environment = "test"
		deps.Version = "1.2.3"
		deps.Now = func() time.Time { return fixed }
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, HealthHandler(deps)(e.NewContext(req, rec)))
		var body dto.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return rec, body
	}

	t.Run("storage unhealthy", func(t *testing.T) {
		store := &database.FakeStore{PingFn: func(context.Context) error { return errors.New("fail") }}
		rec, body := serve(HealthDeps{Store: store})
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Equal(t, "ERROR", body.Status)
		require.Equal(t, "unhealthy", body.Checks["storage"])
	})

	t.Run("cache unhealthy", func(t *testing.T) {
		storeCalled := false
		store := &database.FakeStore{PingFn: func(context.Context) error { storeCalled = true; return nil }}
		cch := &cache.FakeCache{SetFn: func(ctx context.Context, key string, val any, exp time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("set"))
		}}
		rec, body := serve(HealthDeps{Store: store, Cache: cch})
		require.True(t, storeCalled)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Equal(t, "unhealthy", body.Checks["cache"])
	})

	t.Run("ok", func(t *testing.T) {
		cacheCalled := false
		store := &database.FakeStore{PingFn: func(context.Context) error { return nil }}
		cch := &cache.FakeCache{SetFn: func(ctx context.Context, key string, val any, exp time.Duration) *redis.StatusCmd {
			cacheCalled = true
			return redis.NewStatusResult("OK", nil)
		}}
		rec, body := serve(HealthDeps{Store: store, Cache: cch})
		require.True(t, cacheCalled)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "OK", body.Status)
		require.Equal(t, "test", body.Environment)
		require.Equal(t, "1.2.3", body.Version)
		require.Equal(t, fixed, body.Timestamp)
	})

	t.Run("no dependencies", func(t *testing.T) {
		rec, body := serve(HealthDeps{})
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, body.Checks)
	})
}

func TestErrorJSON(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, ErrorJSON(ctx, errors.New("pq: secret detail")))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"message":"internal server error"}`, rec.Body.String())
}
