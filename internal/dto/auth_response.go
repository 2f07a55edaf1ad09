// File: internal/dto/auth_response.go
package dto

import "time"

// login 與 refresh 共用
// swagger:model dto.AuthResponse
type AuthResponse struct {
	Token     string       `json:"token" example:"eyJhbGciOi..."`
	ExpiresAt time.Time    `json:"expiresAt" example:"2025-05-09T15:04:05Z"`
	User      UserResponse `json:"user"`
}
