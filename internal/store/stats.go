package store

import (
	"context"
	"fmt"

	"dashboard-api/internal/database"
	"dashboard-api/internal/model"
)

// StatsStore 讀取資料文件中的統計集合，缺少的集合回傳空 slice
type StatsStore struct {
	db database.Store
}

func NewStatsStore(db database.Store) *StatsStore {
	return &StatsStore{db: db}
}

func (s *StatsStore) read(ctx context.Context, op string) (*model.Dataset, error) {
	d, err := s.db.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}

func orEmpty[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}

func (s *StatsStore) MonthlyData(ctx context.Context) ([]model.MonthlyData, error) {
	d, err := s.read(ctx, "MonthlyData")
	if err != nil {
		return nil, err
	}
	return orEmpty(d.MonthlyData), nil
}

func (s *StatsStore) CompanyStats(ctx context.Context) ([]model.CompanyStats, error) {
	d, err := s.read(ctx, "CompanyStats")
	if err != nil {
		return nil, err
	}
	return orEmpty(d.CompanyStats), nil
}

func (s *StatsStore) DeveloperTrends(ctx context.Context) ([]model.DeveloperTrends, error) {
	d, err := s.read(ctx, "DeveloperTrends")
	if err != nil {
		return nil, err
	}
	return orEmpty(d.DeveloperTrends), nil
}

func (s *StatsStore) EmployeeDistribution(ctx context.Context) ([]model.EmployeeDistribution, error) {
	d, err := s.read(ctx, "EmployeeDistribution")
	if err != nil {
		return nil, err
	}
	return orEmpty(d.EmployeeDistribution), nil
}

func (s *StatsStore) ProductPerformance(ctx context.Context) ([]model.ProductPerformance, error) {
	d, err := s.read(ctx, "ProductPerformance")
	if err != nil {
		return nil, err
	}
	return orEmpty(d.ProductPerformance), nil
}

func (s *StatsStore) NormalsChart(ctx context.Context) ([]model.NormalsChart, error) {
	d, err := s.read(ctx, "NormalsChart")
	if err != nil {
		return nil, err
	}
	return orEmpty(d.NormalsChart), nil
}
