// File: internal/handler/health.go
package handler

import (
	"context"
	"net/http"
	"time"

	"dashboard-api/internal/cache"
	"dashboard-api/internal/dto"

	"github.com/labstack/echo/v4"
)

// Pinger 是可做健康檢查的 storage
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthDeps 是健康檢查需要的依賴，Cache 可為 nil
type HealthDeps struct {
	Store       Pinger
	Cache       cache.Cache
	Environment string
	Version     string
	Now         func() time.Time
}

// HealthHandler 健康檢查（不需認證）
// @Summary     Health Check
// @Description 回傳服務狀態，並檢查 storage 與快取是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.HealthResponse
// @Failure     503 {object} dto.HealthResponse
// @Router      /health [get]
func HealthHandler(deps HealthDeps) echo.HandlerFunc {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		resp := dto.HealthResponse{
			Status:      "OK",
			Timestamp:   now().UTC(),
			Environment: deps.Environment,
			Version:     deps.Version,
			Checks:      map[string]string{},
		}
		status := http.StatusOK

		if deps.Store != nil {
			if err := deps.Store.Ping(ctx); err != nil {
				resp.Checks["storage"] = "unhealthy"
				status = http.StatusServiceUnavailable
			} else {
				resp.Checks["storage"] = "ok"
			}
		}
		if deps.Cache != nil {
			if err := deps.Cache.Set(ctx, "health:ping", "pong", time.Second).Err(); err != nil {
				resp.Checks["cache"] = "unhealthy"
				status = http.StatusServiceUnavailable
			} else {
				resp.Checks["cache"] = "ok"
			}
		}

		if status != http.StatusOK {
			resp.Status = "ERROR"
		}
		return c.JSON(status, resp)
	}
}
