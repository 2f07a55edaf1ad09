// File: internal/dto/health_response.go
package dto

import "time"

// swagger:model dto.HealthResponse
type HealthResponse struct {
	Status      string            `json:"status" example:"OK"`
	Timestamp   time.Time         `json:"timestamp" example:"2025-05-01T15:04:05Z"`
	Environment string            `json:"environment" example:"development"`
	Version     string            `json:"version" example:"1.0.0"`
	Checks      map[string]string `json:"checks,omitempty"`
}
