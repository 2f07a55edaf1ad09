// File: internal/dto/update_user_request.go
package dto

// 欄位省略代表不修改
// swagger:model dto.UpdateUserRequest
type UpdateUserRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=2" example:"Alice"`
	Role           *string `json:"role" validate:"omitempty,oneof=admin user" example:"admin"`
	OrganizationID *string `json:"organizationId" example:"org-1"`
}
