package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"dashboard-api/internal/audit"
	"dashboard-api/internal/cache"
	"dashboard-api/internal/config"
	"dashboard-api/internal/database"
	"dashboard-api/internal/dto"
	"dashboard-api/internal/handler"
	"dashboard-api/internal/logger"
	appmw "dashboard-api/internal/middleware"
	"dashboard-api/internal/router"
	"dashboard-api/internal/service"
	"dashboard-api/internal/store"
	"dashboard-api/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	_ "dashboard-api/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

const (
	shutdownTimeout = 10 * time.Second
	bodyLimit       = "10M"
	rateLimitMsg    = "Too many requests from this IP, please try again later."
	notFoundMsg     = "Route not found"
)

var (
	loadConfig     = config.Load
	openStore      = database.Open
	newRedisClient = cache.NewRedisClient
	newWorkerPool  = worker.NewPool
	logOutput      io.Writer = os.Stdout
	notifyContext  = signal.NotifyContext
	startServer    = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	exitFunc       = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, logOutput)
	if err != nil {
		return fmt.Errorf("無效的 log 設定: %w", err)
	}

	ctx, stop := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := openStore(ctx, cfg.StorageOptions())
	if err != nil {
		return fmt.Errorf("Storage 開啟失敗: %w", err)
	}
	defer db.Close()

	// Redis 只用於 stats 快取，連不上就不快取
	var statsCache cache.Cache
	if cfg.RedisAddr != "" {
		c, err := newRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Warn("redis unavailable, stats cache disabled", "addr", cfg.RedisAddr, "error", err)
		} else {
			statsCache = c
			defer c.Close()
		}
	}

	wp := newWorkerPool(cfg.WorkerCount, cfg.AuditQueueSize)
	auditLog := audit.NewAsyncLogger(wp, log)
	defer func() {
		wp.Stop()
		if n := auditLog.Dropped(); n > 0 {
			log.Warn("audit records dropped", "count", n)
		}
	}()

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET is not set, token operations will fail")
	}

	tokens := service.NewTokenService(service.TokenConfig{
		Secret: cfg.JWTSecret,
		TTL:    cfg.TokenTTL(),
		Issuer: cfg.JWTIssuer,
	})
	authSvc := service.NewAuthService(store.NewUserStore(db, cfg.BcryptCost), tokens, auditLog)
	statsSvc := service.NewStatsService(store.NewStatsStore(db), statsCache, cfg.StatsCacheDuration(), log)

	e := newEcho(cfg, log)
	router.Setup(e, router.Dependencies{
		Auth:   authSvc,
		Stats:  statsSvc,
		Tokens: tokens,
		Health: healthDeps(cfg, db, statsCache),
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := ":" + strconv.Itoa(cfg.Port)
	log.Info("server starting", "addr", addr, "env", cfg.Env, "storage", cfg.StorageDriver)

	errCh := make(chan error, 1)
	go func() { errCh <- startServer(e, addr) }()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("Server 啟動失敗: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shutdownServer(sctx, e); err != nil {
		return fmt.Errorf("Server 關閉失敗: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func healthDeps(cfg *config.Config, db database.Store, c cache.Cache) handler.HealthDeps {
	return handler.HealthDeps{
		Store:       db,
		Cache:       c,
		Environment: cfg.Env,
		Version:     cfg.AppVersion,
	}
}

// newEcho 建立 Echo 實例並掛上全域中介層
func newEcho(cfg *config.Config, log *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = httpErrorHandler(log)

	e.Use(middleware.Recover())
	e.Use(appmw.RequestLogger(log))
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Requested-With"},
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(rateLimiter(cfg.RateLimitMaxRequests, cfg.RateLimitWindow()))
	return e
}

// rateLimiter 每個 IP 在 window 內最多 limit 次請求
func rateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	limiterStore := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(limit) / window.Seconds()),
		Burst:     limit,
		ExpiresIn: window,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: limiterStore,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "unable to identify client").SetInternal(err)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, rateLimitMsg)
		},
	})
}

// httpErrorHandler 把所有錯誤統一成 dto.HTTPError
func httpErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := "internal server error"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(status)
			}
			if status == http.StatusNotFound && errors.Is(err, echo.ErrNotFound) {
				msg = notFoundMsg
			}
		} else {
			status = service.StatusOf(err)
			msg = service.PublicMessage(err)
		}

		if status >= http.StatusInternalServerError {
			log.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method, "uri", c.Request().RequestURI, "error", err)
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, dto.HTTPError{Message: msg})
		}
		if werr != nil {
			log.Warn("write error response failed", "error", werr)
		}
	}
}
