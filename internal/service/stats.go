package service

import (
	"context"
	"log/slog"
	"time"

	"dashboard-api/internal/cache"
	"dashboard-api/internal/model"

	"golang.org/x/sync/errgroup"
)

// StatsReader 是 stats 的資料來源（store.StatsStore）
type StatsReader interface {
	MonthlyData(ctx context.Context) ([]model.MonthlyData, error)
	CompanyStats(ctx context.Context) ([]model.CompanyStats, error)
	DeveloperTrends(ctx context.Context) ([]model.DeveloperTrends, error)
	EmployeeDistribution(ctx context.Context) ([]model.EmployeeDistribution, error)
	ProductPerformance(ctx context.Context) ([]model.ProductPerformance, error)
	NormalsChart(ctx context.Context) ([]model.NormalsChart, error)
}

// AllStats 是 /api/stats/all 的五個集合
type AllStats struct {
	MonthlyData          []model.MonthlyData          `json:"monthlyData"`
	CompanyStats         []model.CompanyStats         `json:"companyStats"`
	DeveloperTrends      []model.DeveloperTrends      `json:"developerTrends"`
	EmployeeDistribution []model.EmployeeDistribution `json:"employeeDistribution"`
	ProductPerformance   []model.ProductPerformance   `json:"productPerformance"`
}

const statsKeyPrefix = "stats:"

// statsCollections 是所有快取的集合名稱
var statsCollections = []string{
	"monthly-data",
	"company-stats",
	"developer-trends",
	"employee-distribution",
	"product-performance",
	"normals-chart",
}

// InvalidateStats 刪除所有 stats 快取，資料文件被整份改寫後呼叫
func InvalidateStats(ctx context.Context, c cache.Cache) (int64, error) {
	keys := make([]string, len(statsCollections))
	for i, name := range statsCollections {
		keys[i] = statsKeyPrefix + name
	}
	return c.Del(ctx, keys...).Result()
}

// StatsService 讀取統計資料；設定 cache 時以 Redis 做 read-through 快取。
// 快取失敗只記 log，改讀 store。
type StatsService struct {
	reader StatsReader
	cache  cache.Cache
	ttl    time.Duration
	log    *slog.Logger
}

// NewStatsService 建立 StatsService，c 可為 nil
func NewStatsService(reader StatsReader, c cache.Cache, ttl time.Duration, log *slog.Logger) *StatsService {
	if log == nil {
		log = slog.Default()
	}
	return &StatsService{reader: reader, cache: c, ttl: ttl, log: log}
}

func cached[T any](ctx context.Context, s *StatsService, name string, load func(context.Context) ([]T, error)) ([]T, error) {
	key := statsKeyPrefix + name
	if s.cache != nil {
		v, ok, err := cache.GetJSON[[]T](ctx, s.cache, key)
		if err != nil {
			s.log.WarnContext(ctx, "stats cache get failed", "key", key, "error", err)
		} else if ok {
			return v, nil
		}
	}

	v, err := load(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "stats load failed", "collection", name, "error", err)
		return nil, err
	}
	if v == nil {
		v = []T{}
	}

	if s.cache != nil {
		if err := cache.SetJSON(ctx, s.cache, key, v, s.ttl); err != nil {
			s.log.WarnContext(ctx, "stats cache set failed", "key", key, "error", err)
		}
	}
	return v, nil
}

func (s *StatsService) MonthlyData(ctx context.Context) ([]model.MonthlyData, error) {
	return cached(ctx, s, "monthly-data", s.reader.MonthlyData)
}

func (s *StatsService) CompanyStats(ctx context.Context) ([]model.CompanyStats, error) {
	return cached(ctx, s, "company-stats", s.reader.CompanyStats)
}

func (s *StatsService) DeveloperTrends(ctx context.Context) ([]model.DeveloperTrends, error) {
	return cached(ctx, s, "developer-trends", s.reader.DeveloperTrends)
}

func (s *StatsService) EmployeeDistribution(ctx context.Context) ([]model.EmployeeDistribution, error) {
	return cached(ctx, s, "employee-distribution", s.reader.EmployeeDistribution)
}

func (s *StatsService) ProductPerformance(ctx context.Context) ([]model.ProductPerformance, error) {
	return cached(ctx, s, "product-performance", s.reader.ProductPerformance)
}

func (s *StatsService) NormalsChart(ctx context.Context) ([]model.NormalsChart, error) {
	return cached(ctx, s, "normals-chart", s.reader.NormalsChart)
}

// All 並行讀取五個集合，任一失敗即回傳錯誤
func (s *StatsService) All(ctx context.Context) (*AllStats, error) {
	var out AllStats
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { out.MonthlyData, err = s.MonthlyData(ctx); return })
	g.Go(func() (err error) { out.CompanyStats, err = s.CompanyStats(ctx); return })
	g.Go(func() (err error) { out.DeveloperTrends, err = s.DeveloperTrends(ctx); return })
	g.Go(func() (err error) { out.EmployeeDistribution, err = s.EmployeeDistribution(ctx); return })
	g.Go(func() (err error) { out.ProductPerformance, err = s.ProductPerformance(ctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
