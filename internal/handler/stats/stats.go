// File: internal/handler/stats/stats.go
package stats

import (
	"context"
	"net/http"

	"dashboard-api/internal/dto"
	"dashboard-api/internal/handler"
	"dashboard-api/internal/model"
	"dashboard-api/internal/service"

	"github.com/labstack/echo/v4"
)

// Service 是 stats 路由需要的 StatsService 操作
type Service interface {
	MonthlyData(ctx context.Context) ([]model.MonthlyData, error)
	CompanyStats(ctx context.Context) ([]model.CompanyStats, error)
	DeveloperTrends(ctx context.Context) ([]model.DeveloperTrends, error)
	EmployeeDistribution(ctx context.Context) ([]model.EmployeeDistribution, error)
	ProductPerformance(ctx context.Context) ([]model.ProductPerformance, error)
	NormalsChart(ctx context.Context) ([]model.NormalsChart, error)
	All(ctx context.Context) (*service.AllStats, error)
}

// list 讀取一個集合並包成 {"data": [...]}
func list[T any, R any](load func(context.Context) ([]T, error), wrap func([]T) R) echo.HandlerFunc {
	return func(c echo.Context) error {
		data, err := load(c.Request().Context())
		if err != nil {
			return handler.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, wrap(data))
	}
}

// MonthlyDataHandler 每月收入與支出
// @Summary  Monthly income / expenses
// @Tags     stats
// @Produce  json
// @Success  200 {object} dto.MonthlyDataResponse
// @Failure  401 {object} dto.HTTPError
// @Failure  500 {object} dto.HTTPError
// @Security BearerAuth
// @Router   /api/stats/monthly-data [get]
func MonthlyDataHandler(svc Service) echo.HandlerFunc {
	return list(svc.MonthlyData, func(d []model.MonthlyData) dto.MonthlyDataResponse {
		return dto.MonthlyDataResponse{Data: d}
	})
}

// CompanyStatsHandler 公司指標
// @Summary  Company statistics
// @Tags     stats
// @Produce  json
// @Success  200 {object} dto.CompanyStatsResponse
// @Failure  401 {object} dto.HTTPError
// @Failure  500 {object} dto.HTTPError
// @Security BearerAuth
// @Router   /api/stats/company-stats [get]
func CompanyStatsHandler(svc Service) echo.HandlerFunc {
	return list(svc.CompanyStats, func(d []model.CompanyStats) dto.CompanyStatsResponse {
		return dto.CompanyStatsResponse{Data: d}
	})
}

// DeveloperTrendsHandler 前端技術趨勢
// @Summary  Developer trends
// @Tags     stats
// @Produce  json
// @Success  200 {object} dto.DeveloperTrendsResponse
// @Failure  401 {object} dto.HTTPError
// @Failure  500 {object} dto.HTTPError
// @Security BearerAuth
// @Router   /api/stats/developer-trends [get]
func DeveloperTrendsHandler(svc Service) echo.HandlerFunc {
	return list(svc.DeveloperTrends, func(d []model.DeveloperTrends) dto.DeveloperTrendsResponse {
		return dto.DeveloperTrendsResponse{Data: d}
	})
}

// EmployeeDistributionHandler 各年度人員分布
// @Summary  Employee distribution
// @Tags     stats
// @Produce  json
// @Success  200 {object} dto.EmployeeDistributionResponse
// @Failure  401 {object} dto.HTTPError
// @Failure  500 {object} dto.HTTPError
// @Security BearerAuth
// @Router   /api/stats/employee-distribution [get]
func EmployeeDistributionHandler(svc Service) echo.HandlerFunc {
	return list(svc.EmployeeDistribution, func(d []model.EmployeeDistribution) dto.EmployeeDistributionResponse {
		return dto.EmployeeDistributionResponse{Data: d}
	})
}

// ProductPerformanceHandler 產品表現
// @Summary  Product performance
// @Tags     stats
// @Produce  json
// @Success  200 {object} dto.ProductPerformanceResponse
// @Failure  401 {object} dto.HTTPError
// @Failure  500 {object} dto.HTTPError
// @Security BearerAuth
// @Router   /api/stats/product-performance [get]
func ProductPerformanceHandler(svc Service) echo.HandlerFunc {
	return list(svc.ProductPerformance, func(d []model.ProductPerformance) dto.ProductPerformanceResponse {
		return dto.ProductPerformanceResponse{Data: d}
	})
}

// NormalsChartHandler 預期值與實際值
// @Summary  Normals chart
// @Tags     stats
// @Produce  json
// @Success  200 {object} dto.NormalsChartResponse
// @Failure  401 {object} dto.HTTPError
// @Failure  500 {object} dto.HTTPError
// @Security BearerAuth
// @Router   /api/stats/normals-chart [get]
func NormalsChartHandler(svc Service) echo.HandlerFunc {
	return list(svc.NormalsChart, func(d []model.NormalsChart) dto.NormalsChartResponse {
		return dto.NormalsChartResponse{Data: d}
	})
}

// AllHandler 一次回傳 dashboard 的五個集合
// @Summary  All dashboard statistics
// @Tags     stats
// @Produce  json
// @Success  200 {object} dto.AllStatsResponse
// @Failure  401 {object} dto.HTTPError
// @Failure  500 {object} dto.HTTPError
// @Security BearerAuth
// @Router   /api/stats/all [get]
func AllHandler(svc Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		all, err := svc.All(c.Request().Context())
		if err != nil {
			return handler.ErrorJSON(c, err)
		}
		return c.JSON(http.StatusOK, dto.AllStatsResponse{
			MonthlyData:          all.MonthlyData,
			CompanyStats:         all.CompanyStats,
			DeveloperTrends:      all.DeveloperTrends,
			EmployeeDistribution: all.EmployeeDistribution,
			ProductPerformance:   all.ProductPerformance,
		})
	}
}
