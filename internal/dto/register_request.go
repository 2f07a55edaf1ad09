// File: internal/dto/register_request.go
package dto

// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Email          string `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Name           string `json:"name" form:"name" validate:"required,min=2" example:"Alice"`
	Password       string `json:"password" form:"password" validate:"required,min=8" example:"Secret123!"`
	Role           string `json:"role" form:"role" validate:"omitempty,oneof=admin user" example:"user"`
	OrganizationID string `json:"organizationId" form:"organizationId" example:"org-1"`
}
