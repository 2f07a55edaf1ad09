// seed 把 seed JSON（使用者密碼為明文）寫入設定的 storage。
// 已有使用者時略過，除非加上 -force。
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"dashboard-api/internal/cache"
	"dashboard-api/internal/config"
	"dashboard-api/internal/database"
	"dashboard-api/internal/logger"
	"dashboard-api/internal/model"
	"dashboard-api/internal/service"
	"dashboard-api/internal/store"

	"github.com/google/uuid"
)

const defaultSeedFile = "data/seed.json"

var (
	loadConfig     = config.Load
	openStore      = database.Open
	newRedisClient = cache.NewRedisClient
	hashPassword   = store.HashPassword
	newID          = uuid.NewString
	now            = time.Now
	logOutput      io.Writer = os.Stdout
	exitFunc       = os.Exit
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	file := fs.String("file", defaultSeedFile, "seed JSON 路徑")
	force := fs.Bool("force", false, "已有資料時仍覆寫")
	dryRun := fs.Bool("dry-run", false, "只驗證與哈希，不寫入設定的 storage")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	lg, err := logger.New(cfg.LogLevel, cfg.LogFormat, logOutput)
	if err != nil {
		return fmt.Errorf("無效的 log 設定: %w", err)
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("讀取 seed 檔失敗: %w", err)
	}
	var d model.Dataset
	if err := json.Unmarshal(raw, &d); err != nil {
		return fmt.Errorf("解析 seed 檔失敗: %w", err)
	}
	if err := prepareUsers(d.Users, cfg.BcryptCost); err != nil {
		return err
	}

	ctx := context.Background()
	open := openStore
	if *dryRun {
		open = func(context.Context, database.Options) (database.Store, error) {
			return database.NewMemoryStore(nil)
		}
	}
	db, err := open(ctx, cfg.StorageOptions())
	if err != nil {
		return fmt.Errorf("Storage 開啟失敗: %w", err)
	}
	defer db.Close()

	if !*force {
		cur, err := db.ReadAll(ctx)
		if err != nil {
			return fmt.Errorf("讀取現有資料失敗: %w", err)
		}
		if len(cur.Users) > 0 {
			lg.Info("seed already applied, skipping", "users", len(cur.Users))
			return nil
		}
	}

	if err := db.WriteAll(ctx, &d); err != nil {
		return fmt.Errorf("寫入 seed 失敗: %w", err)
	}
	logSeeded(lg, &d)

	if !*dryRun && cfg.RedisAddr != "" {
		invalidateStatsCache(ctx, lg, cfg)
	}
	return nil
}

// invalidateStatsCache 清掉舊的 stats 快取；失敗只警告，seed 本身已完成
func invalidateStatsCache(ctx context.Context, lg *slog.Logger, cfg *config.Config) {
	c, err := newRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		lg.Warn("redis unavailable, stats cache not invalidated", "error", err)
		return
	}
	defer c.Close()

	n, err := service.InvalidateStats(ctx, c)
	if err != nil {
		lg.Warn("stats cache invalidation failed", "error", err)
		return
	}
	lg.Info("stats cache invalidated", "keys", n)
}

// prepareUsers 補上 id、時間戳記與預設角色，並把明文密碼換成 bcrypt 哈希
func prepareUsers(users []model.User, cost int) error {
	ts := now().UTC()
	seen := make(map[string]bool, len(users))
	for i := range users {
		u := &users[i]
		u.Email = strings.ToLower(strings.TrimSpace(u.Email))
		if u.Email == "" {
			return fmt.Errorf("user #%d: email is required", i)
		}
		if seen[u.Email] {
			return fmt.Errorf("user %s: duplicate email", u.Email)
		}
		seen[u.Email] = true

		if u.PasswordHash == "" {
			return fmt.Errorf("user %s: password is required", u.Email)
		}
		if !store.IsHash(u.PasswordHash) {
			h, err := hashPassword(u.PasswordHash, cost)
			if err != nil {
				return fmt.Errorf("user %s: hash password: %w", u.Email, err)
			}
			u.PasswordHash = h
		}

		if u.Role == "" {
			u.Role = model.RoleUser
		}
		if !u.Role.Valid() {
			return fmt.Errorf("user %s: unknown role %q", u.Email, u.Role)
		}
		if u.ID == "" {
			u.ID = newID()
		}
		u.CreatedAt = ts
		u.UpdatedAt = ts
	}
	return nil
}

func logSeeded(lg *slog.Logger, d *model.Dataset) {
	for _, u := range d.Users {
		lg.Info("seeded user", "email", u.Email, "role", u.Role)
	}
	lg.Info("seed complete",
		"users", len(d.Users),
		"monthlyData", len(d.MonthlyData),
		"companyStats", len(d.CompanyStats),
		"developerTrends", len(d.DeveloperTrends),
		"employeeDistribution", len(d.EmployeeDistribution),
		"productPerformance", len(d.ProductPerformance),
		"normalsChart", len(d.NormalsChart),
	)
}
