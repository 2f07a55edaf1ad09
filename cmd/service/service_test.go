package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"os/signal"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"dashboard-api/internal/cache"
	"dashboard-api/internal/config"
	"dashboard-api/internal/database"
	"dashboard-api/internal/service"
	"dashboard-api/internal/worker"
)

func restoreGlobals() {
	loadConfig = config.Load
	openStore = database.Open
	newRedisClient = cache.NewRedisClient
	newWorkerPool = worker.NewPool
	logOutput = os.Stdout
	notifyContext = signal.NotifyContext
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	shutdownServer = func(ctx context.Context, e *echo.Echo) error { return e.Shutdown(ctx) }
	exitFunc = func(code int) {}
}

func testConfig() *config.Config {
	return &config.Config{
		Port:                 4000,
		Env:                  "test",
		AppVersion:           "1.0.0",
		JWTSecret:            "secret",
		JWTIssuer:            "dashboard-api",
		BcryptCost:           4,
		StorageDriver:        database.DriverFile,
		DataFile:             "data.json",
		RedisAddr:            "127.0.0.1:6379",
		CORSOrigin:           "http://localhost:3000",
		RateLimitWindowMS:    60000,
		RateLimitMaxRequests: 100,
		LogLevel:             "info",
		LogFormat:            "text",
		WorkerCount:          1,
		AuditQueueSize:       8,
	}
}

// stubRun 讓 run() 不碰任何外部資源
func stubRun(t *testing.T, cfg *config.Config) *bytes.Buffer {
	t.Helper()
	t.Cleanup(restoreGlobals)

	var buf bytes.Buffer
	logOutput = &buf
	loadConfig = func() (*config.Config, error) { return cfg, nil }
	openStore = func(context.Context, database.Options) (database.Store, error) {
		return &database.FakeStore{}, nil
	}
	newRedisClient = func(context.Context, string, string, int) (cache.Cache, error) {
		return &cache.FakeCache{}, nil
	}
	notifyContext = func(parent context.Context, _ ...os.Signal) (context.Context, context.CancelFunc) {
		return context.WithCancel(parent)
	}
	startServer = func(*echo.Echo, string) error { return nil }
	return &buf
}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestRunSuccess(t *testing.T) {
	stubRun(t, testConfig())
	called := make(map[string]bool)

	openStore = func(ctx context.Context, opts database.Options) (database.Store, error) {
		called["store"] = true
		require.Equal(t, database.DriverFile, opts.Driver)
		require.Equal(t, "data.json", opts.FilePath)
		return &database.FakeStore{CloseFn: func() error { called["storeClose"] = true; return nil }}, nil
	}
	newRedisClient = func(ctx context.Context, addr, pwd string, db int) (cache.Cache, error) {
		called["redis"] = true
		require.Equal(t, "127.0.0.1:6379", addr)
		return &cache.FakeCache{CloseFn: func() error { called["redisClose"] = true; return nil }}, nil
	}
	newWorkerPool = func(n, queue int) worker.Pool {
		called["pool"] = true
		require.Equal(t, 1, n)
		require.Equal(t, 8, queue)
		return worker.NewPool(n, queue)
	}
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":4000", addr)
		return nil
	}

	require.NoError(t, run())
	for _, k := range []string{"store", "redis", "pool", "start", "storeClose", "redisClose"} {
		require.True(t, called[k], k)
	}
}

func TestRunWithoutRedis(t *testing.T) {
	cfg := testConfig()
	cfg.RedisAddr = ""
	stubRun(t, cfg)
	newRedisClient = func(context.Context, string, string, int) (cache.Cache, error) {
		t.Fatal("redis should not be dialed")
		return nil, nil
	}
	require.NoError(t, run())
}

func TestRunRedisUnavailable(t *testing.T) {
	buf := stubRun(t, testConfig())
	newRedisClient = func(context.Context, string, string, int) (cache.Cache, error) {
		return nil, errors.New("dial tcp: refused")
	}
	require.NoError(t, run())
	require.Contains(t, buf.String(), "stats cache disabled")
}

func TestRunWarnsOnEmptySecret(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = ""
	buf := stubRun(t, cfg)
	require.NoError(t, run())
	require.Contains(t, buf.String(), "JWT_SECRET is not set")
}

func TestRunErrors(t *testing.T) {
	stubRun(t, testConfig())

	loadConfig = func() (*config.Config, error) { return nil, errors.New("config") }
	require.ErrorContains(t, run(), "設定載入失敗")

	bad := testConfig()
	bad.LogFormat = "xml"
	loadConfig = func() (*config.Config, error) { return bad, nil }
	require.ErrorContains(t, run(), "無效的 log 設定")

	loadConfig = func() (*config.Config, error) { return testConfig(), nil }
	openStore = func(context.Context, database.Options) (database.Store, error) {
		return nil, errors.New("open")
	}
	require.ErrorContains(t, run(), "Storage 開啟失敗")

	openStore = func(context.Context, database.Options) (database.Store, error) {
		return &database.FakeStore{}, nil
	}
	startServer = func(*echo.Echo, string) error { return errors.New("bind") }
	require.ErrorContains(t, run(), "Server 啟動失敗")

	startServer = func(*echo.Echo, string) error { return http.ErrServerClosed }
	require.NoError(t, run())
}

func TestRunGracefulShutdown(t *testing.T) {
	buf := stubRun(t, testConfig())
	notifyContext = func(parent context.Context, _ ...os.Signal) (context.Context, context.CancelFunc) {
		ctx, cancel := context.WithCancel(parent)
		cancel()
		return ctx, func() {}
	}
	released := make(chan struct{})
	startServer = func(*echo.Echo, string) error {
		<-released
		return http.ErrServerClosed
	}
	shutdownServer = func(ctx context.Context, e *echo.Echo) error {
		_, ok := ctx.Deadline()
		require.True(t, ok)
		close(released)
		return nil
	}

	require.NoError(t, run())
	require.Contains(t, buf.String(), "shutting down")
}

func TestRunShutdownError(t *testing.T) {
	stubRun(t, testConfig())
	notifyContext = func(parent context.Context, _ ...os.Signal) (context.Context, context.CancelFunc) {
		ctx, cancel := context.WithCancel(parent)
		cancel()
		return ctx, func() {}
	}
	released := make(chan struct{})
	t.Cleanup(func() { close(released) })
	startServer = func(*echo.Echo, string) error {
		<-released
		return nil
	}
	shutdownServer = func(context.Context, *echo.Echo) error { return errors.New("timeout") }

	require.ErrorContains(t, run(), "Server 關閉失敗")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewEchoNotFound(t *testing.T) {
	e := newEcho(testConfig(), discardLogger())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"message":"Route not found"}`, rec.Body.String())
}

func TestNewEchoSecurityHeadersAndCORS(t *testing.T) {
	e := newEcho(testConfig(), discardLogger())
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "http://localhost:3000", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	require.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	require.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
}

func TestNewEchoBodyLimit(t *testing.T) {
	e := newEcho(testConfig(), discardLogger())
	e.POST("/echo", func(c echo.Context) error {
		_, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})

	body := strings.Repeat("a", 11*1024*1024)
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = httpErrorHandler(discardLogger())
	e.Use(rateLimiter(2, time.Hour))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	do := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		return rec
	}
	require.Equal(t, http.StatusOK, do().Code)
	require.Equal(t, http.StatusOK, do().Code)

	rec := do()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.JSONEq(t, `{"message":"Too many requests from this IP, please try again later."}`, rec.Body.String())
}

func TestHTTPErrorHandler(t *testing.T) {
	h := httpErrorHandler(discardLogger())

	cases := []struct {
		name   string
		method string
		err    error
		status int
		body   string
	}{
		{"echo error", http.MethodGet, echo.NewHTTPError(http.StatusUnauthorized, "invalid token"), 401, `{"message":"invalid token"}`},
		{"echo error non-string", http.MethodGet, echo.NewHTTPError(http.StatusBadRequest, map[string]string{"a": "b"}), 400, `{"message":"Bad Request"}`},
		{"service error", http.MethodGet, service.ErrDuplicateEmail, 409, `{"message":"email already registered"}`},
		{"configuration", http.MethodGet, service.ErrConfiguration, 500, `{"message":"internal server error"}`},
		{"unknown", http.MethodGet, errors.New("boom"), 500, `{"message":"internal server error"}`},
		{"head", http.MethodHead, errors.New("boom"), 500, ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(tc.method, "/", nil), rec)

			h(tc.err, c)

			require.Equal(t, tc.status, rec.Code)
			if tc.body == "" {
				require.Empty(t, rec.Body.String())
			} else {
				require.JSONEq(t, tc.body, rec.Body.String())
			}
		})
	}
}

func TestHTTPErrorHandlerCommitted(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	httpErrorHandler(discardLogger())(errors.New("late"), c)
	require.Equal(t, "done", rec.Body.String())
}

func TestMainFunction(t *testing.T) {
	stubRun(t, testConfig())
	main()
}

func TestMainExit(t *testing.T) {
	stubRun(t, testConfig())
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	loadConfig = func() (*config.Config, error) { return nil, errors.New("fail") }
	main()
	require.Equal(t, 1, exitCode)
}
