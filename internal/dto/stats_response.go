// File: internal/dto/stats_response.go
package dto

import "dashboard-api/internal/model"

// swagger:model dto.MonthlyDataResponse
type MonthlyDataResponse struct {
	Data []model.MonthlyData `json:"data"`
}

// swagger:model dto.CompanyStatsResponse
type CompanyStatsResponse struct {
	Data []model.CompanyStats `json:"data"`
}

// swagger:model dto.DeveloperTrendsResponse
type DeveloperTrendsResponse struct {
	Data []model.DeveloperTrends `json:"data"`
}

// swagger:model dto.EmployeeDistributionResponse
type EmployeeDistributionResponse struct {
	Data []model.EmployeeDistribution `json:"data"`
}

// swagger:model dto.ProductPerformanceResponse
type ProductPerformanceResponse struct {
	Data []model.ProductPerformance `json:"data"`
}

// swagger:model dto.NormalsChartResponse
type NormalsChartResponse struct {
	Data []model.NormalsChart `json:"data"`
}

// swagger:model dto.AllStatsResponse
type AllStatsResponse struct {
	MonthlyData          []model.MonthlyData          `json:"monthlyData"`
	CompanyStats         []model.CompanyStats         `json:"companyStats"`
	DeveloperTrends      []model.DeveloperTrends      `json:"developerTrends"`
	EmployeeDistribution []model.EmployeeDistribution `json:"employeeDistribution"`
	ProductPerformance   []model.ProductPerformance   `json:"productPerformance"`
}
