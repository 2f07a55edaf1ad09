// File: internal/dto/user_response.go
package dto

import (
	"time"

	"dashboard-api/internal/model"
)

// swagger:model dto.UserResponse
type UserResponse struct {
	ID             string    `json:"id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Email          string    `json:"email" example:"alice@example.com"`
	Name           string    `json:"name" example:"Alice"`
	Role           string    `json:"role" example:"user"`
	OrganizationID string    `json:"organizationId,omitempty" example:"org-1"`
	CreatedAt      time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
	UpdatedAt      time.Time `json:"updatedAt" example:"2025-05-01T15:04:05Z"`
}

func NewUserResponse(v model.UserView) UserResponse {
	return UserResponse{
		ID:             v.ID,
		Email:          v.Email,
		Name:           v.Name,
		Role:           string(v.Role),
		OrganizationID: v.OrganizationID,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

// swagger:model dto.RegisterResponse
type RegisterResponse struct {
	User UserResponse `json:"user"`
}
