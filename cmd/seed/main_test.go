package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"dashboard-api/internal/cache"
	"dashboard-api/internal/config"
	"dashboard-api/internal/database"
	"dashboard-api/internal/model"
	"dashboard-api/internal/store"
)

var t0 = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

func restoreGlobals() {
	loadConfig = config.Load
	openStore = database.Open
	newRedisClient = cache.NewRedisClient
	hashPassword = store.HashPassword
	newID = uuid.NewString
	now = time.Now
	logOutput = os.Stdout
	exitFunc = os.Exit
}

const seedJSON = `{
  "users": [
    {"email": "Admin@Example.com", "name": "Admin", "password": "admin-pass-1", "role": "admin"},
    {"id": "u-2", "email": "bob@example.com", "name": "Bob", "password": "bob-pass-12"}
  ],
  "monthlyData": [{"month": "Jan", "income": 100, "expenses": 50}],
  "normalsChart": [{"month": "Jan", "expected": 10, "actual": 12}]
}`

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func setup(t *testing.T, existing *model.Dataset) (*database.MemoryStore, *bytes.Buffer) {
	t.Helper()
	t.Cleanup(restoreGlobals)

	mem, err := database.NewMemoryStore(existing)
	require.NoError(t, err)

	var buf bytes.Buffer
	logOutput = &buf
	now = func() time.Time { return t0 }
	newID = func() string { return "generated-id" }
	loadConfig = func() (*config.Config, error) {
		return &config.Config{BcryptCost: 4, LogLevel: "info", LogFormat: "text", StorageDriver: database.DriverFile}, nil
	}
	openStore = func(context.Context, database.Options) (database.Store, error) { return mem, nil }
	return mem, &buf
}

func TestRunSeedsEmptyStore(t *testing.T) {
	mem, buf := setup(t, nil)
	path := writeSeed(t, seedJSON)

	require.NoError(t, run([]string{"-file", path}))

	d, err := mem.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, d.Users, 2)
	require.Len(t, d.MonthlyData, 1)
	require.Len(t, d.NormalsChart, 1)

	admin := d.Users[0]
	require.Equal(t, "admin@example.com", admin.Email)
	require.Equal(t, model.RoleAdmin, admin.Role)
	require.Equal(t, "generated-id", admin.ID)
	require.True(t, admin.CreatedAt.Equal(t0))
	require.True(t, admin.UpdatedAt.Equal(t0))
	require.NoError(t, store.ComparePassword(admin.PasswordHash, "admin-pass-1"))

	bob := d.Users[1]
	require.Equal(t, "u-2", bob.ID)
	require.Equal(t, model.RoleUser, bob.Role)
	require.NotEqual(t, "bob-pass-12", bob.PasswordHash)

	require.Contains(t, buf.String(), "seed complete")
	require.NotContains(t, buf.String(), "admin-pass-1")
}

func TestRunSkipsWhenUsersExist(t *testing.T) {
	existing := &model.Dataset{Users: []model.User{{ID: "x", Email: "old@example.com"}}}
	mem, buf := setup(t, existing)
	path := writeSeed(t, seedJSON)

	require.NoError(t, run([]string{"-file", path}))

	d, err := mem.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, d.Users, 1)
	require.Contains(t, buf.String(), "seed already applied")
}

func TestRunForceOverwrites(t *testing.T) {
	existing := &model.Dataset{Users: []model.User{{ID: "x", Email: "old@example.com"}}}
	mem, _ := setup(t, existing)
	path := writeSeed(t, seedJSON)

	require.NoError(t, run([]string{"-file", path, "-force"}))

	d, err := mem.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, d.Users, 2)
}

func TestRunDryRun(t *testing.T) {
	mem, buf := setup(t, nil)
	path := writeSeed(t, seedJSON)

	require.NoError(t, run([]string{"-file", path, "-dry-run"}))

	d, err := mem.ReadAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, d.Users)
	require.Contains(t, buf.String(), "seed complete")
}

func TestRunInvalidatesStatsCache(t *testing.T) {
	_, buf := setup(t, nil)
	path := writeSeed(t, seedJSON)
	loadConfig = func() (*config.Config, error) {
		return &config.Config{BcryptCost: 4, LogLevel: "info", LogFormat: "text", RedisAddr: "127.0.0.1:6379"}, nil
	}

	var deleted []string
	closed := false
	newRedisClient = func(_ context.Context, addr, _ string, _ int) (cache.Cache, error) {
		require.Equal(t, "127.0.0.1:6379", addr)
		return &cache.FakeCache{
			DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
				deleted = keys
				return redis.NewIntResult(int64(len(keys)), nil)
			},
			CloseFn: func() error { closed = true; return nil },
		}, nil
	}

	require.NoError(t, run([]string{"-file", path}))
	require.Len(t, deleted, 6)
	require.Contains(t, deleted, "stats:monthly-data")
	require.True(t, closed)
	require.Contains(t, buf.String(), "stats cache invalidated")
}

func TestRunCacheInvalidationFailuresOnlyWarn(t *testing.T) {
	_, buf := setup(t, nil)
	path := writeSeed(t, seedJSON)
	loadConfig = func() (*config.Config, error) {
		return &config.Config{BcryptCost: 4, LogLevel: "info", LogFormat: "text", RedisAddr: "127.0.0.1:6379"}, nil
	}

	newRedisClient = func(context.Context, string, string, int) (cache.Cache, error) {
		return nil, errors.New("refused")
	}
	require.NoError(t, run([]string{"-file", path, "-force"}))
	require.Contains(t, buf.String(), "stats cache not invalidated")

	newRedisClient = func(context.Context, string, string, int) (cache.Cache, error) {
		return &cache.FakeCache{DelFn: func(context.Context, ...string) *redis.IntCmd {
			return redis.NewIntResult(0, errors.New("READONLY"))
		}}, nil
	}
	require.NoError(t, run([]string{"-file", path, "-force"}))
	require.Contains(t, buf.String(), "stats cache invalidation failed")
}

func TestRunDryRunSkipsCache(t *testing.T) {
	setup(t, nil)
	path := writeSeed(t, seedJSON)
	loadConfig = func() (*config.Config, error) {
		return &config.Config{BcryptCost: 4, LogLevel: "info", LogFormat: "text", RedisAddr: "127.0.0.1:6379"}, nil
	}
	newRedisClient = func(context.Context, string, string, int) (cache.Cache, error) {
		t.Fatal("dry run should not touch redis")
		return nil, nil
	}
	require.NoError(t, run([]string{"-file", path, "-dry-run"}))
}

func TestRunKeepsExistingHash(t *testing.T) {
	setup(t, nil)
	hash, err := store.HashPassword("already-hashed", 4)
	require.NoError(t, err)
	hashPassword = func(string, int) (string, error) {
		t.Fatal("should not rehash")
		return "", nil
	}
	users := []model.User{{Email: "a@example.com", PasswordHash: hash}}
	require.NoError(t, prepareUsers(users, 4))
	require.Equal(t, hash, users[0].PasswordHash)
}

func TestPrepareUsersErrors(t *testing.T) {
	setup(t, nil)

	cases := []struct {
		name  string
		users []model.User
		msg   string
	}{
		{"missing email", []model.User{{PasswordHash: "pw"}}, "email is required"},
		{"missing password", []model.User{{Email: "a@example.com"}}, "password is required"},
		{"duplicate", []model.User{
			{Email: "a@example.com", PasswordHash: "pw"},
			{Email: "A@example.com", PasswordHash: "pw"},
		}, "duplicate email"},
		{"bad role", []model.User{{Email: "a@example.com", PasswordHash: "pw", Role: "root"}}, "unknown role"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorContains(t, prepareUsers(tc.users, 4), tc.msg)
		})
	}

	hashPassword = func(string, int) (string, error) { return "", errors.New("cost") }
	require.ErrorContains(t, prepareUsers([]model.User{{Email: "a@example.com", PasswordHash: "pw"}}, 4), "hash password")
}

func TestRunErrors(t *testing.T) {
	setup(t, nil)
	good := writeSeed(t, seedJSON)

	require.Error(t, run([]string{"-unknown"}))
	require.ErrorContains(t, run([]string{"-file", filepath.Join(t.TempDir(), "missing.json")}), "讀取 seed 檔失敗")
	require.ErrorContains(t, run([]string{"-file", writeSeed(t, "{")}), "解析 seed 檔失敗")

	openStore = func(context.Context, database.Options) (database.Store, error) { return nil, errors.New("open") }
	require.ErrorContains(t, run([]string{"-file", good}), "Storage 開啟失敗")

	openStore = func(context.Context, database.Options) (database.Store, error) {
		return &database.FakeStore{
			ReadAllFn: func(context.Context) (*model.Dataset, error) { return nil, errors.New("read") },
		}, nil
	}
	require.ErrorContains(t, run([]string{"-file", good}), "讀取現有資料失敗")

	openStore = func(context.Context, database.Options) (database.Store, error) {
		return &database.FakeStore{
			WriteAllFn: func(context.Context, *model.Dataset) error { return errors.New("write") },
		}, nil
	}
	require.ErrorContains(t, run([]string{"-file", good, "-force"}), "寫入 seed 失敗")

	loadConfig = func() (*config.Config, error) { return nil, errors.New("cfg") }
	require.ErrorContains(t, run([]string{"-file", good}), "設定載入失敗")
}

func TestMainExit(t *testing.T) {
	setup(t, nil)
	code := 0
	exitFunc = func(c int) { code = c }
	loadConfig = func() (*config.Config, error) { return nil, errors.New("cfg") }
	main()
	require.Equal(t, 1, code)
}
