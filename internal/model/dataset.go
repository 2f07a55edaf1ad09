// File: internal/model/dataset.go
package model

// Dataset 是整份 JSON 資料文件，storage 以整份讀寫
type Dataset struct {
	Users                []User                 `json:"users"`
	MonthlyData          []MonthlyData          `json:"monthlyData"`
	CompanyStats         []CompanyStats         `json:"companyStats"`
	DeveloperTrends      []DeveloperTrends      `json:"developerTrends"`
	EmployeeDistribution []EmployeeDistribution `json:"employeeDistribution"`
	ProductPerformance   []ProductPerformance   `json:"productPerformance"`
	NormalsChart         []NormalsChart         `json:"normalsChart"`
}
