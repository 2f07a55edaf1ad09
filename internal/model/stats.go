// File: internal/model/stats.go
package model

type MonthlyData struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

type CompanyStats struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Value         float64 `json:"value"`
	MonthlyChange float64 `json:"monthlyChange"`
}

type DeveloperTrends struct {
	Month      string  `json:"month"`
	React      float64 `json:"react"`
	JavaScript float64 `json:"javascript"`
}

type EmployeeDistribution struct {
	Year      int `json:"year"`
	Coders    int `json:"coders"`
	Designers int `json:"designers"`
}

type ProductPerformance struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Period     string  `json:"period"`
}

type NormalsChart struct {
	Month    string  `json:"month"`
	Expected float64 `json:"expected"`
	Actual   float64 `json:"actual"`
}
